// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Cell alphabet and the Board value type.
//
// A Board is a string under the hood. Strings are immutable, so every move
// produces a new Board and earlier positions stay valid for history display.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Cell is a single board position.
type Cell byte

const (
	// Empty marks a free position.
	Empty Cell = '-'
	// X is the symbol of the player who moves first.
	X Cell = 'x'
	// O is the symbol of the player who moves second.
	O Cell = 'o'
)

// DefaultLength is the board length used when none is configured.
const DefaultLength = 20

// WinLength is the number of identical symbols in a row that wins.
const WinLength = 3

var (
	// ErrFull is returned by strategies asked to move on a board with no
	// Empty cell.
	ErrFull = errors.New("board is full")
	// ErrOccupied is returned by Place when the target cell is not Empty.
	ErrOccupied = errors.New("cell is occupied")
)

// MoveFunc computes a move: given the current board and the symbol to play,
// it returns the board after placing exactly one symbol.
type MoveFunc func(ctx context.Context, b Board, symbol Cell) (Board, error)

// Valid reports whether c belongs to the board alphabet.
func (c Cell) Valid() bool {
	return c == Empty || c == X || c == O
}

// IsSymbol reports whether c is a player symbol.
func (c Cell) IsSymbol() bool {
	return c == X || c == O
}

// Opponent returns the other player's symbol. Empty maps to Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (c Cell) String() string {
	return string(rune(c))
}

// Board is an immutable, fixed-length sequence of cells.
type Board string

// New returns an all-Empty board of length n.
func New(n int) Board {
	if n <= 0 {
		return ""
	}
	return Board(strings.Repeat(Empty.String(), n))
}

// Parse converts its text form into a Board, rejecting characters outside
// the alphabet.
func Parse(s string) (Board, error) {
	for i := 0; i < len(s); i++ {
		if !Cell(s[i]).Valid() {
			return "", fmt.Errorf("invalid cell %q at position %d", s[i], i)
		}
	}
	return Board(s), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// fixed tables.
func MustParse(s string) Board {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) String() string {
	return string(b)
}

// Len returns the number of cells.
func (b Board) Len() int {
	return len(b)
}

// At returns the cell at index i.
func (b Board) At(i int) Cell {
	return Cell(b[i])
}

// Count returns how many cells hold c.
func (b Board) Count(c Cell) int {
	return strings.Count(string(b), c.String())
}

// IsFull reports whether no Empty cell remains.
func (b Board) IsFull() bool {
	return b.Count(Empty) == 0
}

// Empties returns the indexes of all Empty cells in ascending order.
func (b Board) Empties() []int {
	var out []int
	for i := 0; i < len(b); i++ {
		if Cell(b[i]) == Empty {
			out = append(out, i)
		}
	}
	return out
}

// Place returns a copy of b with symbol written at index i.
func (b Board) Place(i int, symbol Cell) (Board, error) {
	if i < 0 || i >= len(b) {
		return "", fmt.Errorf("position %d out of range [0, %d)", i, len(b))
	}
	if !symbol.IsSymbol() {
		return "", fmt.Errorf("%q is not a player symbol", symbol)
	}
	if Cell(b[i]) != Empty {
		return "", fmt.Errorf("position %d: %w", i, ErrOccupied)
	}
	return b[:i] + Board(symbol.String()) + b[i+1:], nil
}

// Winner returns the symbol that has a winning run. X is checked before O,
// so a pre-filled board holding both runs is scored for X.
func (b Board) Winner() (Cell, bool) {
	for _, c := range []Cell{X, O} {
		if strings.Contains(string(b), strings.Repeat(c.String(), WinLength)) {
			return c, true
		}
	}
	return Empty, false
}

// WinningRun returns the start index of the first winning run, or -1.
func (b Board) WinningRun() int {
	for i := 0; i+WinLength <= len(b); i++ {
		c := Cell(b[i])
		if !c.IsSymbol() {
			continue
		}
		run := true
		for j := 1; j < WinLength; j++ {
			if Cell(b[i+j]) != c {
				run = false
				break
			}
		}
		if run {
			return i
		}
	}
	return -1
}
