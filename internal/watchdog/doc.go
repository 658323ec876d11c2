// Package watchdog bounds the wall-clock time of a single opaque call.
//
// # How It Works
//
// Execute runs the call in its own goroutine under a context whose deadline
// is the executor's budget, and waits for whichever comes first: the result
// or the deadline. On the deadline it cancels the context, stops waiting and
// returns a fault.Timeout carrying the elapsed time and the number of steps
// the call reported through Step.
//
// # Cooperative Interruption
//
// Go cannot stop a goroutine from the outside. A call that checks Step (or
// its context) at each unit of work unwinds as soon as the budget passes; a
// call stuck in one long operation keeps running in the background after
// Execute has already reported the timeout. The bound on the caller is hard,
// the bound on the callee is best-effort.
//
// # Scope
//
// An Executor watches at most one call at a time; the watch is installed
// right before the call starts and released on every exit path. Code that
// needs several calls in flight uses one Executor per call site.
package watchdog
