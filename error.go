// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hwrand

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidRange indicates the bounds of a range request are invalid.
	// This is the case when the minimum exceeds the maximum or when either
	// floating point bound is not a finite number.
	ErrInvalidRange = ErrorKind("ErrInvalidRange")

	// ErrRetryExhausted indicates a hardware instruction failed for the
	// maximum number of consecutive attempts permitted by the generator
	// configuration.
	ErrRetryExhausted = ErrorKind("ErrRetryExhausted")

	// ErrUnsupportedWidth indicates a requested width is unknown or is not
	// supported by the current target.
	ErrUnsupportedWidth = ErrorKind("ErrUnsupportedWidth")

	// ErrInvalidTier indicates a requested quality tier is unknown.
	ErrInvalidTier = ErrorKind("ErrInvalidTier")

	// ErrSeedSource indicates the operating system entropy source failed
	// while seeding the software engine.
	ErrSeedSource = ErrorKind("ErrSeedSource")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to generating a random value.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
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
