// Package board defines the one-dimensional game board shared by every
// layer of the arena: the cell alphabet, the immutable Board value, its text
// codec and the win/draw predicates.
//
// A Board is rendered as a string over '-', 'x' and 'o'. Three identical
// non-empty symbols in a contiguous run anywhere in the sequence win the
// game; there is no notion of rows, so a run may cross what a renderer
// would draw as a line break.
package board
