// Package core holds the ambient concerns shared by every component of the
// kernel: the error taxonomy from the spec's error-handling design, the
// default logger, and the tunable configuration.
package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure the way the spec's error-handling table does.
type Kind int

const (
	// KindContractViolation is an invariant break the caller must not
	// continue past: re-adding a relation, breaking the last-literal
	// convention, using a dealloc'd arena handle. Always fatal.
	KindContractViolation Kind = iota
	// KindRefutation marks that unit propagation derived the empty clause;
	// the formula is unsatisfiable relative to the frozen set.
	KindRefutation
	// KindInputSyntax is a DIMACS (or frontend expression) parse failure.
	KindInputSyntax
)

func (k Kind) String() string {
	switch k {
	case KindContractViolation:
		return "contract violation"
	case KindRefutation:
		return "refutation"
	case KindInputSyntax:
		return "input syntax"
	default:
		return "unknown"
	}
}

// LogicError is the error type the collaborator-facing surfaces (dimacs,
// frontend) return. The core itself never returns a LogicError for
// KindContractViolation — those are raised with Violate, which panics.
type LogicError struct {
	Kind    Kind
	Op      string
	Message string
	cause   error
}

func (e *LogicError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Kind, e.Op, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Message)
}

func (e *LogicError) Unwrap() error { return e.cause }

// NewError builds a LogicError of the given kind.
func NewError(kind Kind, op, message string) *LogicError {
	return &LogicError{Kind: kind, Op: op, Message: message}
}

// Wrap builds a LogicError that wraps an underlying cause, preserving its
// stack via pkg/errors so callers can still errors.Cause() down to it.
func Wrap(cause error, kind Kind, op, message string) *LogicError {
	return &LogicError{Kind: kind, Op: op, Message: message, cause: errors.Wrap(cause, message)}
}

// Violation is the panic value raised by Violate. Recovering it and
// inspecting Op/Message is meant for tests, not for production control
// flow: contract violations are never meant to be handled.
type Violation struct {
	Op      string
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", v.Op, v.Message)
}

// Violate panics with a *Violation carrying a stack trace, for the
// "Contract violation -> Abort" row of the error-handling table: re-adding
// a relation already defined, breaking the last-literal invariant, or
// reusing a dealloc'd arena handle.
func Violate(op, message string) {
	panic(errors.WithStack(&Violation{Op: op, Message: message}))
}

// Assert panics via Violate when cond is false. It is the core's sole
// contract-enforcement primitive; it is not a substitute for validating
// untrusted input, which belongs at a collaborator boundary (dimacs,
// frontend) and returns a *LogicError instead.
func Assert(cond bool, op, message string) {
	if !cond {
		Violate(op, message)
	}
}
