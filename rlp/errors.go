package rlp

import (
	"github.com/pkg/errors"
)

var (
	// ErrTypeMismatch is returned by the strict conversion methods when a
	// node's category or integer width does not match the requested type.
	ErrTypeMismatch = errors.New("rlp: type mismatch")

	// ErrTruncated is returned when an encoded length claims more bytes
	// than the underlying buffer holds.
	ErrTruncated = errors.New("rlp: value extends past end of input")

	// ErrTooDeep is returned when list nesting exceeds the depth bound.
	ErrTooDeep = errors.New("rlp: list nesting too deep")

	// ErrInvalidTag is returned when a tag byte falls outside the
	// grammar.
	ErrInvalidTag = errors.New("rlp: invalid tag byte")

	// ErrTrailingBytes is returned by Validate when a well-formed value
	// is followed by extra bytes.
	ErrTrailingBytes = errors.New("rlp: trailing bytes after value")
)
