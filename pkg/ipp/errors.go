package ipp

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrUnsupportedDelimiter indicates a byte that is not one of the four
	// recognized delimiter tags.
	ErrUnsupportedDelimiter = errors.New("ipp: unsupported delimiter tag")

	// ErrUnsupportedValueTag indicates a byte that is not one of the
	// recognized value tags.
	ErrUnsupportedValueTag = errors.New("ipp: unsupported value tag")

	// ErrOutOfBounds indicates a length field that promises more bytes than
	// the message holds.
	ErrOutOfBounds = errors.New("ipp: read past end of message")

	// ErrInvalidFixedLength indicates a declared value length that does not
	// match the fixed size the value type requires.
	ErrInvalidFixedLength = errors.New("ipp: invalid length for fixed-size value")

	// ErrValueBeforeGroup indicates a value tag before any group delimiter.
	ErrValueBeforeGroup = errors.New("ipp: value tag before any group delimiter")

	// ErrUnterminatedMessage indicates a message that ends before the
	// end-of-attributes tag.
	ErrUnterminatedMessage = errors.New("ipp: message not terminated")
)

// DecodeError provides detailed information about a decoding failure.
//
// Use errors.Is against the sentinel errors to distinguish failure kinds.
type DecodeError struct {
	Offset int    // Byte offset in the message where decoding failed
	Kind   error  // One of the package sentinel errors
	Reason string // Human-readable explanation
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ipp: decode error at offset %d: %s", e.Offset, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Kind
}
