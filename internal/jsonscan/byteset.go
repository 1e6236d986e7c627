// Package jsonscan implements the byte-level state machines that drive
// the JSON codec: scanners for numbers, strings, array/object framing,
// and the skip-value scanner that lets unknown fields be discarded
// without invoking a value decoder.
package jsonscan

// byteSet is a set of byte values represented as a 256-bit bitmask.
type byteSet [4]uint64

// newByteSet returns a set containing every byte in s.
func newByteSet(s string) *byteSet {
	var set byteSet
	for i := 0; i < len(s); i++ {
		set.set(s[i])
	}
	return &set
}

// get reports whether b holds the byte x.
func (b *byteSet) get(x byte) bool {
	return b[x>>6]&(1<<(x&63)) != 0
}

// set ensures that x is in the set.
func (b *byteSet) set(x byte) {
	b[x>>6] |= 1 << (x & 63)
}

// whitespace holds the four RFC 8259 insignificant-whitespace bytes.
var whitespace = newByteSet(" \t\n\r")

// numberTerminators holds the bytes that may legally follow a JSON
// number without being part of it (spec.md §4.1).
var numberTerminators = newByteSet(",] \n\r\t}")

// SkipWhitespace returns the suffix of data with any leading run of
// insignificant whitespace removed.
func SkipWhitespace(data []byte) []byte {
	i := 0
	for i < len(data) && whitespace.get(data[i]) {
		i++
	}
	return data[i:]
}
