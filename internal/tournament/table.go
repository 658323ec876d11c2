package tournament

import (
	"github.com/specialistvlad/burstarena/internal/game"
)

// Pair addresses one ScoreTable cell by strategy index.
type Pair struct {
	Row    int
	Column int
}

// ScoreTable accumulates points per ordered pair of strategies. Entry
// (a, b) holds the points a earned against b; (a, b) and (b, a) are
// independent. Missing entries read as 0.
type ScoreTable struct {
	scores map[Pair]float64
}

// NewScoreTable returns an empty table.
func NewScoreTable() *ScoreTable {
	return &ScoreTable{scores: make(map[Pair]float64)}
}

// Get returns the points row earned against column.
func (t *ScoreTable) Get(row, column int) float64 {
	return t.scores[Pair{Row: row, Column: column}]
}

// Add appends a delta to one entry.
func (t *ScoreTable) Add(row, column int, delta float64) {
	t.scores[Pair{Row: row, Column: column}] += delta
}

// Total sums every entry of row.
func (t *ScoreTable) Total(row int) float64 {
	var total float64
	for p, v := range t.scores {
		if p.Row == row {
			total += v
		}
	}
	return total
}

// Snapshot returns an independent copy of the table.
func (t *ScoreTable) Snapshot() *ScoreTable {
	c := NewScoreTable()
	for p, v := range t.scores {
		c.scores[p] = v
	}
	return c
}

// Entries returns a copy of all recorded entries.
func (t *ScoreTable) Entries() map[Pair]float64 {
	return t.Snapshot().scores
}

// Apply folds the outcome of a game between a (first) and b (second) into
// the table:
//
//   - a wins: (a, b) += 1
//   - b wins: (b, a) += 1
//   - draw: (a, b) += 0.5 and (b, a) += 0.5
//   - fault: the other side earns the win, (other, faulty) += 1, and the
//     faulty side is penalised, (faulty, other) -= 1
func (t *ScoreTable) Apply(a, b int, o game.Outcome) {
	switch o.Kind {
	case game.WinnerA:
		t.Add(a, b, 1)
	case game.WinnerB:
		t.Add(b, a, 1)
	case game.Drawn:
		t.Add(a, b, 0.5)
		t.Add(b, a, 0.5)
	case game.Faulted:
		faulty, other := a, b
		if o.Faulty == game.Second {
			faulty, other = b, a
		}
		t.Add(other, faulty, 1)
		t.Add(faulty, other, -1)
	}
}
