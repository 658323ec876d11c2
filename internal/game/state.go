// Package game implements the two-player turn state machine.
//
// A game starts InProgress on a given board (normally all Empty). Before
// every ply, and once up front, the board is evaluated: a winning run ends
// the game Won, a full board ends it as a Draw. Otherwise the player to move
// (X on even plies, O on odd plies) is invoked through the validator and the
// watchdog. A fault of any kind ends the game at once and is blamed on the
// player who was to move.
package game

import "github.com/specialistvlad/burstarena/internal/board"

// Status is the state of a game.
type Status int

const (
	InProgress Status = iota
	Won
	Draw
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Won:
		return "Won"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Evaluate classifies b. For Won it also returns the winning symbol.
func Evaluate(b board.Board) (Status, board.Cell) {
	if winner, ok := b.Winner(); ok {
		return Won, winner
	}
	if b.IsFull() {
		return Draw, board.Empty
	}
	return InProgress, board.Empty
}

// SymbolFor returns the symbol that moves at the given ply.
func SymbolFor(ply int) board.Cell {
	if ply%2 == 0 {
		return board.X
	}
	return board.O
}
