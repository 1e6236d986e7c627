package jsoncodec

// Decoder parses a value of type T from the head of data, returning
// the decoded value and the unconsumed suffix. A decoder never
// advances past bytes it failed to consume: on failure, rest equals
// data and err is ErrTooShort, or, for DecodeRecord and DecodeTuple,
// the error the caller's finalizer returned (spec.md §3, §7). The hard failures
// spec.md §6 calls out — a malformed \uXXXX escape or an unrecognized
// short-escape letter reaching the string scanner — panic with a
// *ScanError instead of returning one; see ErrTooShort's doc comment
// in errors.go.
type Decoder[T any] func(data []byte, cfg *Config) (value T, rest []byte, err error)

// Encoder appends the JSON encoding of value to buf and returns the
// extended buffer. Encoding is total: it never fails (spec.md §3).
type Encoder[T any] func(buf []byte, value T, cfg *Config) []byte

// NewDecoder adapts a plain decode function into a Decoder. It exists
// so host code can hand this package a closure without needing to
// name the Decoder type explicitly (spec.md §6's custom-decoder
// collaborator).
func NewDecoder[T any](fn func(data []byte, cfg *Config) (T, []byte, error)) Decoder[T] {
	return Decoder[T](fn)
}

// NewEncoder adapts a plain encode function into an Encoder (spec.md
// §6's custom-encoder collaborator).
func NewEncoder[T any](fn func(buf []byte, value T, cfg *Config) []byte) Encoder[T] {
	return Encoder[T](fn)
}

// Step is the outcome of a stepping function querying whether a
// record or tuple decoder should consume or discard the value at the
// current field name or index (spec.md §4.4, §4.5, §9).
type Step[S any] struct {
	decode func(state S, data []byte, cfg *Config) (S, []byte, error)
	skip   bool
}

// Keep builds a Step that invokes decoder to consume the value and
// fold its result into the accumulated state via apply.
func Keep[S, T any](decoder Decoder[T], apply func(state S, value T) S) Step[S] {
	return Step[S]{decode: func(state S, data []byte, cfg *Config) (S, []byte, error) {
		value, rest, err := decodeWithNullAsEmpty(decoder, data, cfg)
		if err != nil {
			return state, data, err
		}
		return apply(state, value), rest, nil
	}}
}

// Skip builds a Step that discards the value at the current position,
// either via the skip-value scanner (when the configuration allows
// unknown fields) or by reporting ErrTooShort.
func Skip[S any]() Step[S] {
	return Step[S]{skip: true}
}

// TooLong is the tuple analogue of Skip: the stepping function
// returns it once the supplied index exceeds the tuple's arity.
func TooLong[S any]() Step[S] { return Skip[S]() }
