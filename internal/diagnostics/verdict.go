package diagnostics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/burstarena/internal/fault"
)

// Verdict classifies one probe run.
type Verdict int

const (
	Pass Verdict = iota
	Failure
	Timeout
	Error
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case Failure:
		return "failure"
	case Timeout:
		return "timeout"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Mark is the one-character grid symbol of v.
func (v Verdict) Mark() string {
	switch v {
	case Pass:
		return "."
	case Failure:
		return "F"
	case Timeout:
		return "T"
	default:
		return "E"
	}
}

// AssertionError reports a probe expectation that did not hold.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

func failf(format string, args ...any) error {
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

// classify maps the error returned by a watched probe to a verdict, the
// name of the error kind and a one-line message.
func classify(err error) (Verdict, string, string) {
	if err == nil {
		return Pass, "", ""
	}
	msg := firstLine(err.Error())

	var assertion *AssertionError
	if errors.As(err, &assertion) {
		return Failure, "AssertionError", firstLine(assertion.Message)
	}
	if f, ok := fault.As(err); ok {
		if f.Kind == fault.Timeout {
			return Timeout, f.Kind.String(), firstLine(f.Message)
		}
		return Error, f.Kind.String(), firstLine(f.Message)
	}
	return Error, "StrategyFault", msg
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	line, _, _ := strings.Cut(s, "\n")
	return line
}
