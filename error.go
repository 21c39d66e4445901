// Copyright (c) 2024-2025 The Ottery developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ottery

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrEntropyFailure indicates the entropy source is unable to supply
	// random bytes.  This is always fatal and is never downgraded to a
	// weaker randomness fallback.
	ErrEntropyFailure = ErrorKind("ErrEntropyFailure")

	// ErrInvalidArgument indicates an out-of-domain parameter, such as a
	// non-positive upper bound for a limited-range integer or a negative
	// byte count.
	ErrInvalidArgument = ErrorKind("ErrInvalidArgument")

	// ErrUnsupported indicates a requested operation is not supported by
	// this generator, such as capturing the internal generator state.
	ErrUnsupported = ErrorKind("ErrUnsupported")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a randomness-related error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
