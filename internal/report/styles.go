package report

import "github.com/charmbracelet/lipgloss"

// styles holds every style a Printer uses, bound to its renderer.
type styles struct {
	rule    lipgloss.Style
	subrule lipgloss.Style
	heading lipgloss.Style
	changed lipgloss.Style
	winning lipgloss.Style
	pass    lipgloss.Style
	problem lipgloss.Style
	faint   lipgloss.Style
	gold    lipgloss.Style
	silver  lipgloss.Style
	bronze  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		rule:    r.NewStyle().Foreground(lipgloss.Color("2")),
		subrule: r.NewStyle().Foreground(lipgloss.Color("4")),
		heading: r.NewStyle().Bold(true),
		changed: r.NewStyle().Foreground(lipgloss.Color("2")),
		winning: r.NewStyle().Bold(true),
		pass:    r.NewStyle().Foreground(lipgloss.Color("2")),
		problem: r.NewStyle().Foreground(lipgloss.Color("1")),
		faint:   r.NewStyle().Faint(true),
		gold:    r.NewStyle().Foreground(lipgloss.Color("3")),
		silver:  r.NewStyle().Foreground(lipgloss.Color("7")),
		bronze:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
