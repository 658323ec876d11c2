// Package diagnostics runs a fixed battery of structural probes against each
// strategy before a tournament.
//
// A probe calls the strategy's move function directly on crafted boards and
// asserts on the shape of the result. Each probe runs under the watchdog as
// a whole, so a probe that calls the strategy twice shares one budget
// between both calls. Probe outcomes are classified as Pass, Failure (an
// assertion did not hold), Timeout, or Error (the strategy failed or
// panicked where a move was expected). A failing probe never prevents the
// remaining probes or strategies from running.
package diagnostics
