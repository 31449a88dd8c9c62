// Package result provides the explicit success/failure outcome type used by
// every service and repository operation instead of error returns, so expected
// failures (not found, validation, referential violations) carry a
// user-presentable message and a machine-checkable kind.
package result

import (
	"context"
	"errors"
)

// Kind classifies a failure.
type Kind int

const (
	// KindNone is the zero value carried by successful results.
	KindNone Kind = iota
	// KindValidation indicates one or more request fields violate a rule.
	KindValidation
	// KindNotFound indicates a referenced id does not exist.
	KindNotFound
	// KindReferential indicates a dependent entity references a nonexistent parent.
	KindReferential
	// KindStore indicates the underlying store rejected the operation.
	KindStore
	// KindCanceled indicates the operation was aborted via its context.
	KindCanceled
	// KindUnexpected is the catch-all for anything else.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindReferential:
		return "referential"
	case KindStore:
		return "store"
	case KindCanceled:
		return "canceled"
	default:
		return "unexpected"
	}
}

// Unit is the value type for results that carry no payload.
type Unit struct{}

// Result is a success/failure outcome carrying either a value or a failure
// kind plus message. The zero value is a failed result with no message.
type Result[T any] struct {
	value   T
	ok      bool
	kind    Kind
	message string
}

// Ok returns a successful result wrapping value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Done returns a successful valueless result.
func Done() Result[Unit] {
	return Ok(Unit{})
}

// Fail returns a failed result with the given kind and message.
func Fail[T any](kind Kind, message string) Result[T] {
	return Result[T]{kind: kind, message: message}
}

// IsOk reports whether the operation succeeded. Callers must check it before
// using Value.
func (r Result[T]) IsOk() bool { return r.ok }

// Value returns the payload. On a failed result it is the zero value of T.
func (r Result[T]) Value() T { return r.value }

// Kind returns the failure classification, KindNone on success.
func (r Result[T]) Kind() Kind { return r.kind }

// Message returns the failure message, empty on success.
func (r Result[T]) Message() string { return r.message }

// Forward re-types a failed result, preserving its kind and message verbatim.
// It is used by services to propagate repository failures without inventing
// new text.
func Forward[T, U any](r Result[T]) Result[U] {
	return Fail[U](r.kind, r.message)
}

// ClassifyError maps an error to a failure kind, recognising context
// cancellation; every other error maps to fallback.
func ClassifyError(err error, fallback Kind) Kind {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCanceled
	}
	return fallback
}
