package game

import (
	"fmt"

	"github.com/specialistvlad/burstarena/internal/board"
	"github.com/specialistvlad/burstarena/internal/fault"
)

// OutcomeKind tags how a game ended.
type OutcomeKind int

const (
	WinnerA OutcomeKind = iota + 1
	WinnerB
	Drawn
	Faulted
)

func (k OutcomeKind) String() string {
	switch k {
	case WinnerA:
		return "WinnerA"
	case WinnerB:
		return "WinnerB"
	case Drawn:
		return "Draw"
	case Faulted:
		return "Fault"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Side identifies a seat at the board.
type Side int

const (
	// First moves with X.
	First Side = iota
	// Second moves with O.
	Second
)

// Other returns the opposite seat.
func (s Side) Other() Side {
	if s == First {
		return Second
	}
	return First
}

func (s Side) String() string {
	if s == First {
		return "first"
	}
	return "second"
}

// Symbol returns the symbol played from this seat.
func (s Side) Symbol() board.Cell {
	if s == First {
		return board.X
	}
	return board.O
}

// Outcome is the tagged result of a finished game.
type Outcome struct {
	Kind OutcomeKind
	// Faulty and Fault are set when Kind is Faulted. Fault.Strategy holds
	// the index of the strategy that was to move.
	Faulty Side
	Fault  *fault.Fault
}

// Winner returns the winning seat, if any. A faulted game is won by the
// seat that did not fault.
func (o Outcome) Winner() (Side, bool) {
	switch o.Kind {
	case WinnerA:
		return First, true
	case WinnerB:
		return Second, true
	case Faulted:
		return o.Faulty.Other(), true
	default:
		return First, false
	}
}

func (o Outcome) String() string {
	if o.Kind == Faulted && o.Fault != nil {
		return fmt.Sprintf("Fault(%d, %s, %s)", o.Fault.Strategy, o.Fault.Kind, o.Fault.Message)
	}
	return o.Kind.String()
}
