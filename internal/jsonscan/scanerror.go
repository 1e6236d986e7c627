package jsonscan

import "fmt"

// ScanError reports a hard scan failure: input that is syntactically
// malformed in a way no amount of additional bytes could fix, as
// opposed to the ordinary "not enough bytes yet" case every scanner
// surfaces by returning ok=false. Per spec.md §6, three call sites in
// string.go panic with a *ScanError instead of reporting through a
// return value: an invalid hex digit inside a \uXXXX escape, found
// either while framing the string token (String) or while decoding
// its interior (parseHex4, via DecodeString), and an unrecognized
// short-escape letter reaching DecodeString directly. All three carry
// the same offset-bearing type, so a caller that wraps a decode call
// in recover() doesn't need to distinguish which one fired.
type ScanError struct {
	// Offset is the byte offset, relative to the slice handed to the
	// scanner call that panicked, at which the scan failed, as
	// produced by FailedAt.
	Offset int
	msg    string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("jsonscan: at offset %d: %s", e.Offset, e.msg)
}

// FailedAt reports the byte offset within original at which scanning
// stopped, given the remaining unconsumed suffix rest. rest must be a
// subslice of original's backing array, as every scanner in this
// package guarantees by construction; callers assembling a ScanError
// from two independently obtained slices should not use this helper.
func FailedAt(original, rest []byte) int {
	if len(rest) == 0 {
		return len(original)
	}
	return len(original) - len(rest)
}

// newScanError builds a *ScanError positioned at FailedAt(original,
// rest), for the hard-failure panic sites in string.go.
func newScanError(original, rest []byte, f string, a ...interface{}) *ScanError {
	return &ScanError{Offset: FailedAt(original, rest), msg: fmt.Sprintf(f, a...)}
}
