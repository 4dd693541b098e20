package core

import "fmt"

type ErrorKind int

const (
	ErrArgument ErrorKind = iota + 1
	ErrNotFound
	ErrTransport
	ErrMalformed
	ErrUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case ErrArgument:
		return "argument"
	case ErrNotFound:
		return "not_found"
	case ErrTransport:
		return "transport"
	case ErrMalformed:
		return "malformed"
	case ErrUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ProviderError describes why a provider call failed.
type ProviderError struct {
	Kind    ErrorKind
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Result is the outcome of a single provider call: a value or a *ProviderError.
type Result[T any] struct {
	value T
	err   *ProviderError
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Fail[T any](kind ErrorKind, format string, args ...any) Result[T] {
	return Result[T]{err: &ProviderError{Kind: kind, Message: fmt.Sprintf(format, args...)}}
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) Value() T {
	return r.value
}

// Err returns nil on success.
func (r Result[T]) Err() *ProviderError {
	return r.err
}
