// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package fault defines the error taxonomy of the arena. Every abnormal
// outcome of a strategy call, and every setup error that names strategies,
// is a *Fault tagged with a Kind. Faults carry enough context (strategy
// index, elapsed time and steps, structural reason) to be reported verbatim.
package fault

import (
	"errors"
	"fmt"
	"time"
)

// Kind tags a Fault.
type Kind int

const (
	// Timeout means the watchdog budget was exceeded.
	Timeout Kind = iota + 1
	// Validation means the returned board broke a structural rule.
	Validation
	// Strategy means the strategy returned an error or panicked.
	Strategy
	// Configuration means a requested strategy does not exist.
	Configuration
)

func (k Kind) String() string {
	switch k {
	case Timeout:
		return "Timeout"
	case Validation:
		return "ValidationFault"
	case Strategy:
		return "StrategyFault"
	case Configuration:
		return "ConfigurationFault"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Unattributed is the strategy index of a fault not yet blamed on anyone.
const Unattributed = -1

// Fault is a tagged error value.
type Fault struct {
	Kind Kind
	// Strategy is the index of the strategy at fault, or Unattributed.
	Strategy int
	Message  string

	// Elapsed and Steps are set for Timeout faults.
	Elapsed time.Duration
	Steps   int64

	// Err is the underlying cause, if any.
	Err error
}

func (f *Fault) Error() string {
	return f.Kind.String() + ": " + f.Message
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Attribute returns a copy of f blamed on the strategy with the given index.
func (f *Fault) Attribute(index int) *Fault {
	c := *f
	c.Strategy = index
	return &c
}

// NewTimeout builds a Timeout fault.
func NewTimeout(elapsed time.Duration, steps int64) *Fault {
	return &Fault{
		Kind:     Timeout,
		Strategy: Unattributed,
		Message:  fmt.Sprintf("call took too long (%.3f s, %d steps)", elapsed.Seconds(), steps),
		Elapsed:  elapsed,
		Steps:    steps,
	}
}

// Invalid builds a Validation fault.
func Invalid(format string, args ...any) *Fault {
	return &Fault{
		Kind:     Validation,
		Strategy: Unattributed,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Panic builds a Strategy fault from a recovered panic value.
func Panic(v any) *Fault {
	f := &Fault{
		Kind:     Strategy,
		Strategy: Unattributed,
		Message:  fmt.Sprintf("panic: %v", v),
	}
	if err, ok := v.(error); ok {
		f.Err = err
	}
	return f
}

// NewConfiguration builds a Configuration fault.
func NewConfiguration(format string, args ...any) *Fault {
	return &Fault{
		Kind:     Configuration,
		Strategy: Unattributed,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError converts err into a Fault. Faults found anywhere in the chain
// are returned as they are; any other error becomes a Strategy fault that
// wraps it. FromError(nil) returns nil.
func FromError(err error) *Fault {
	if err == nil {
		return nil
	}
	if f, ok := As(err); ok {
		return f
	}
	return &Fault{
		Kind:     Strategy,
		Strategy: Unattributed,
		Message:  err.Error(),
		Err:      err,
	}
}

// As finds the first Fault in err's chain.
func As(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// Is reports whether err's chain holds a Fault of the given kind.
func Is(err error, kind Kind) bool {
	f, ok := As(err)
	return ok && f.Kind == kind
}
