package provider

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrorKind classifies provider failures.
type ErrorKind int

const (
	// KindOther is any failure not covered by a more specific kind,
	// including network and server errors.
	KindOther ErrorKind = iota
	// KindNotFound means the addressed object does not exist.
	KindNotFound
	// KindPermissionDenied means the backend refused access.
	KindPermissionDenied
	// KindAborted means the operation was cancelled, timed out or the
	// provider was disconnected.
	KindAborted
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindAborted:
		return "aborted"
	default:
		return "other"
	}
}

// ErrDisconnected is wrapped by errors from a provider after Disconnect.
var ErrDisconnected = errors.New("provider disconnected")

// ErrAccountExists is wrapped by [HTTPProvider.Register] when the account is
// already registered on the server.
var ErrAccountExists = errors.New("account already exists")

// Error is the error type returned by every provider operation.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("provider %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("provider %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf classifies any error. Errors that are not (and do not wrap) an
// [*Error] are classified by their cause.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return classify(err)
}

// IsNotFound reports whether err is a [KindNotFound] failure.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

func newError(op string, kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// wrapError builds an *Error classifying err by its cause. A nil err
// yields nil.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return err
	}
	return newError(op, classify(err), err)
}

func classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, ErrDisconnected):
		return KindAborted
	case errors.Is(err, os.ErrNotExist):
		return KindNotFound
	case errors.Is(err, os.ErrPermission):
		return KindPermissionDenied
	default:
		return KindOther
	}
}
