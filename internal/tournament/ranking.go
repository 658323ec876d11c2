package tournament

import (
	"sort"

	"github.com/specialistvlad/burstarena/internal/registry"
)

// Standing is one line of a Ranking.
type Standing struct {
	Strategy *registry.Strategy
	Total    float64
	// Place is 1-based.
	Place int
}

// Ranking lists non-disqualified strategies by total score, best first.
type Ranking []Standing

// Rank computes the ranking of strategies from table. Disqualified
// strategies are left out entirely. Ties are broken by discovery index.
func Rank(table *ScoreTable, strategies []*registry.Strategy) Ranking {
	out := make(Ranking, 0, len(strategies))
	for _, s := range strategies {
		if s.Disqualified() {
			continue
		}
		out = append(out, Standing{Strategy: s, Total: table.Total(s.Index())})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Strategy.Index() < out[j].Strategy.Index()
	})
	for i := range out {
		out[i].Place = i + 1
	}
	return out
}

// PlaceOf returns the 1-based place of s, or 0 when s is not ranked.
func (r Ranking) PlaceOf(s *registry.Strategy) int {
	for _, st := range r {
		if st.Strategy == s {
			return st.Place
		}
	}
	return 0
}

// Names returns the ranked strategy names, best first.
func (r Ranking) Names() []string {
	out := make([]string, len(r))
	for i, st := range r {
		out[i] = st.Strategy.Name()
	}
	return out
}
