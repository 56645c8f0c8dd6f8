package der

import (
	"errors"
	"fmt"
)

// Decoder errors
var (
	// ErrTruncated is returned when a read requests more bytes than
	// remain in the buffer.
	ErrTruncated = errors.New("der: unexpected end of data")

	// ErrLengthOverflow is returned when a long-form length does not fit
	// in the platform int.
	ErrLengthOverflow = errors.New("der: length overflow")

	// ErrIndefiniteLength is returned when the reserved indefinite
	// length marker (long form, zero size octets) is encountered. DER
	// forbids it and this decoder does not guess a value.
	ErrIndefiniteLength = errors.New("der: indefinite length not supported")

	// ErrMalformedNesting is returned when a constructed value's
	// children do not end exactly at the declared content boundary.
	ErrMalformedNesting = errors.New("der: constructed content boundary mismatch")

	// ErrInvalidNull is returned when a NULL value has non-zero length.
	ErrInvalidNull = errors.New("der: invalid null encoding")
)

// DecodeError provides detailed information about a decoding failure.
type DecodeError struct {
	Offset  int    // Byte offset where the error occurred
	Message string // Human-readable error description
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("der: decode error at offset %d: %s: %v", e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("der: decode error at offset %d: %s", e.Offset, e.Message)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(offset int, message string, err error) *DecodeError {
	return &DecodeError{
		Offset:  offset,
		Message: message,
		Err:     err,
	}
}
