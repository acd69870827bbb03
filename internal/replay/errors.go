package replay

import (
	"fmt"
)

// ErrorReason is the category of a script problem
type ErrorReason int

const (
	// ReasonUnknownStep indicates a token that names no step
	ReasonUnknownStep ErrorReason = iota
	// ReasonBadCount indicates a hold step whose repeat count is not a non-negative integer
	ReasonBadCount
	// ReasonMissingArgument indicates a step that needs ":ARG" but has none
	ReasonMissingArgument
	// ReasonUnexpectedArgument indicates a step that takes no argument but got one
	ReasonUnexpectedArgument
)

// String returns a human-readable name for the reason
func (r ErrorReason) String() string {
	switch r {
	case ReasonUnknownStep:
		return "unknown step"
	case ReasonBadCount:
		return "bad repeat count"
	case ReasonMissingArgument:
		return "missing argument"
	case ReasonUnexpectedArgument:
		return "unexpected argument"
	default:
		return fmt.Sprintf("ErrorReason(%d)", r)
	}
}

// ScriptError reports a step that could not be parsed
type ScriptError struct {
	Line   int         // 1-based line of the token
	Token  string      // Offending token as written
	Reason ErrorReason // What is wrong with it
	Err    error       // Underlying error (if any)
}

// Error implements the error interface
func (e *ScriptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s %q (caused by: %v)", e.Line, e.Reason, e.Token, e.Err)
	}
	return fmt.Sprintf("line %d: %s %q", e.Line, e.Reason, e.Token)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ScriptError) Unwrap() error {
	return e.Err
}
