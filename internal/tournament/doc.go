// Package tournament runs round-robin tournaments between strategies.
//
// # How It Works
//
// Each round plays one game for every ordered pair (a, b) of participants,
// self-pairs included, with a moving first. Outcomes are folded into one
// ScoreTable that accumulates across rounds; after each round the table is
// snapshotted and a fresh Ranking is computed from the cumulative scores,
// leaving disqualified strategies out.
//
// # Concurrency
//
// With Workers <= 1 the games of a round are played one at a time in pair
// order. With more workers the games of a round run on a pool of
// goroutines, each with its own engine and watchdog. The pool never
// exceeds GOMAXPROCS, so concurrent games do not eat into each other's
// wall-clock budget. Results are collected
// per pair and folded into the table by the scheduler goroutine in pair
// order, so the table has one writer and the scores are identical to a
// sequential run for deterministic strategies.
//
// A fault in one game becomes a scoring penalty and never stops the
// tournament. Only cancellation of the context does, between games.
package tournament
