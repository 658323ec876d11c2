// Package registry provides the central "glue" for the strategy system.
//
// Strategies are compiled into the binary as modules. At startup every
// module registers its strategies (a unique name and a constructor for the
// move function) with a Registry. Discover then resolves the set of
// participants for one tournament run: it keeps registration order, assigns
// each strategy its stable index, applies decoded per-strategy options, and
// rejects requested names that nothing registered.
//
// The Strategy descriptor returned by Discover owns the disqualification
// flag. Only the strategy itself or an external policy flips it; schedulers
// read it when ranking.
package registry
