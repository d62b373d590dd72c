package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOption indicates input that matches no catalog entry
	ErrUnknownOption = errors.New("no matching option")
	// ErrAmbiguousOption indicates input that matches several catalog entries equally well
	ErrAmbiguousOption = errors.New("ambiguous option")
	// ErrInvalidRange indicates a malformed or out-of-bounds range
	ErrInvalidRange = errors.New("invalid range")
)

// Error types for refine expressions
type (
	// CompilationError indicates an expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates an expression could not be evaluated for a title
	EvaluationError struct {
		Expression string
		Title      string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error for '%s' on '%s': %v", e.Expression, e.Title, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
