package jsoncodec

import (
	"errors"

	"github.com/jsoncodec/jsoncodec/internal/jsonscan"
)

// ErrTooShort is returned by a decoder when it cannot make progress on
// its input: the bytes end early, are malformed, hold a number out of
// range for the target width, or name an unknown field while
// skipMissingProperties is false. Per spec.md §7, it is the one error
// kind the core decoders return; decoders never retry. The two hard
// failures named in spec.md §6 — an invalid hex digit inside a \uXXXX
// escape, or an unrecognized short-escape letter reaching DecodeString
// directly — panic with a *ScanError instead of being returned as err.
var ErrTooShort = errors.New("jsoncodec: value is incomplete")

// ScanError is the value the string scanner panics with for the two
// hard failures named in spec.md §6 (internal/jsonscan/string.go's
// String and DecodeString). It is a type alias for jsonscan.ScanError
// so a caller that wraps a decode call in recover() can type-assert
// against the same type this package's own internals panic with.
type ScanError = jsonscan.ScanError

// FailedAt reports the byte offset within original at which scanning
// stopped, given the remaining unconsumed suffix rest. rest must be a
// subslice of original's backing array, as every scanner in this
// package guarantees by construction. Exposed so a caller integrating
// this library can locate an ErrTooShort failure region from the
// (result, rest) pair spec.md §7 hands back, without reimplementing
// the pointer-arithmetic diff by hand.
func FailedAt(original, rest []byte) int {
	return jsonscan.FailedAt(original, rest)
}
