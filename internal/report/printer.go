package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/diagnostics"
	"github.com/specialistvlad/burstarena/internal/game"
	"github.com/specialistvlad/burstarena/internal/registry"
	"github.com/specialistvlad/burstarena/internal/tournament"
)

// ruleWidth is the width of horizontal rules.
const ruleWidth = 79

// Printer writes report sections to an output stream.
type Printer struct {
	w io.Writer
	r *lipgloss.Renderer
	s styles
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{w: w, r: r, s: newStyles(r)}
}

func (p *Printer) println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Rule prints a full-width line of '='.
func (p *Printer) Rule() {
	p.println(p.s.rule.Render(strings.Repeat("=", ruleWidth)))
}

// SubRule prints a full-width line of '-'.
func (p *Printer) SubRule() {
	p.println(p.s.subrule.Render(strings.Repeat("-", ruleWidth)))
}

// Heading prints a rule followed by title.
func (p *Printer) Heading(title string) {
	p.Rule()
	p.println(p.s.heading.Render(title))
}

// Participants lists the strategies taking part.
func (p *Printer) Participants(strategies []*registry.Strategy) {
	p.Heading("Participants:")
	for _, s := range strategies {
		line := "    " + s.Name()
		if s.Description() != "" {
			line += p.s.faint.Render(" - " + s.Description())
		}
		if s.Disqualified() {
			line += p.s.problem.Render(" (DQ)")
		}
		p.println(line)
	}
}

// Diagnostics prints the probe legend, the strategy by probe grid and one
// line per non-passing probe.
func (p *Printer) Diagnostics(rep *diagnostics.Report) {
	p.Heading("Diagnostics:")
	for i, probe := range rep.Probes {
		p.printf("    %d: %s\n", i, probe.Description)
	}
	p.println()

	header := make([]string, len(rep.Probes))
	for i := range rep.Probes {
		header[i] = strconv.Itoa(i)
	}
	p.printf("%20s %s\n", "", strings.Join(header, " "))
	for si, s := range rep.Strategies {
		cells := make([]string, len(rep.Grid[si]))
		for i, v := range rep.Grid[si] {
			mark := v.Mark()
			// Probe indexes above 9 widen their column.
			mark = fmt.Sprintf("%-*s", len(header[i]), mark)
			if v == diagnostics.Pass {
				cells[i] = p.s.pass.Render(mark)
			} else {
				cells[i] = p.s.problem.Render(mark)
			}
		}
		p.printf("%20s %s\n", s.Name(), strings.Join(cells, " "))
	}

	if len(rep.Records) == 0 {
		return
	}
	p.SubRule()
	for _, rec := range rep.Records {
		line := fmt.Sprintf("%s[%d]: %s", rec.Strategy.Name(), rec.Probe, p.s.problem.Render(rec.Kind))
		if rec.Message != "" {
			line += ": " + rec.Message
		}
		p.println(line)
	}
}

// Game prints the ply-by-ply history of g and its result.
func (p *Printer) Game(g tournament.Game) {
	first, second := g.First.Name(), g.Second.Name()
	p.println()
	p.printf("%s (x) vs. %s (o)\n", first, second)

	res := g.Result
	prev := res.History[0]
	for ply, b := range res.History {
		p.printf("    %4d %s\n", ply, p.highlight(prev, b))
		prev = b
	}

	o := res.Outcome
	switch o.Kind {
	case game.WinnerA:
		p.printf("    %s won; +1 point\n", first)
	case game.WinnerB:
		p.printf("    %s won; +1 point\n", second)
	case game.Drawn:
		p.println("    Draw; half a point each")
	case game.Faulted:
		faulty, other := first, second
		if o.Faulty == game.Second {
			faulty, other = second, first
		}
		msg := ""
		if o.Fault != nil {
			msg = p.s.problem.Render(o.Fault.Kind.String()) + ": " + o.Fault.Message
		}
		p.printf("    %s\n", msg)
		p.printf("    %s won; +1 point\n", other)
		p.printf("    %s faulted; -1 point\n", faulty)
	}
}

// highlight renders after with the cells that differ from before marked
// as changed and the winning run, if any, in bold.
func (p *Printer) highlight(before, after board.Board) string {
	run := after.WinningRun()
	var sb strings.Builder
	for i := 0; i < after.Len(); i++ {
		cell := after.At(i).String()
		changed := i < before.Len() && before.At(i) != after.At(i)
		winning := run >= 0 && i >= run && i < run+board.WinLength
		switch {
		case changed && winning:
			cell = p.s.changed.Bold(true).Render(cell)
		case changed:
			cell = p.s.changed.Render(cell)
		case winning:
			cell = p.s.winning.Render(cell)
		}
		sb.WriteString(cell)
	}
	return sb.String()
}

// Standings prints the cumulative score table after round r, with totals
// and places. Disqualified strategies show DQ instead of a place.
func (p *Printer) Standings(r tournament.Round, strategies []*registry.Strategy) {
	p.println()
	p.printf("Standings after round %d\n", r.Number)

	headers := []string{""}
	for _, s := range strategies {
		headers = append(headers, s.Name())
	}
	headers = append(headers, "Total", "Place")

	rows := make([][]string, 0, len(strategies))
	for _, a := range strategies {
		row := []string{a.Name()}
		for _, b := range strategies {
			row = append(row, formatScore(r.Table.Get(a.Index(), b.Index())))
		}
		row = append(row, formatScore(r.Table.Total(a.Index())), p.place(r.Ranking.PlaceOf(a)))
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := p.r.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			if col > 0 {
				return s.Align(lipgloss.Right)
			}
			return s
		})
	p.println(t.Render())
}

func (p *Printer) place(n int) string {
	switch n {
	case 0:
		return p.s.problem.Render("DQ")
	case 1:
		return p.s.gold.Render("1.")
	case 2:
		return p.s.silver.Render("2.")
	case 3:
		return p.s.bronze.Render("3.")
	default:
		return strconv.Itoa(n) + "."
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
