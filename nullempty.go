package jsoncodec

var nullLiteral = []byte("null")

// decodeWithNullAsEmpty implements the null-as-empty rewriting policy
// of spec.md §4.7: when cfg.nullDecodeAsEmpty is set and data begins
// with the literal `null`, decoder is invoked on an empty slice
// instead, and the tail returned is the one immediately following the
// four consumed bytes, regardless of what decoder itself reports as
// its rest.
func decodeWithNullAsEmpty[T any](decoder Decoder[T], data []byte, cfg *Config) (T, []byte, error) {
	if cfg.nullDecodeAsEmpty && hasNullPrefix(data) {
		value, _, err := decoder(nil, cfg)
		if err != nil {
			var zero T
			return zero, data, err
		}
		return value, data[len(nullLiteral):], nil
	}
	return decoder(data, cfg)
}

func hasNullPrefix(data []byte) bool {
	if len(data) < len(nullLiteral) {
		return false
	}
	for i, b := range nullLiteral {
		if data[i] != b {
			return false
		}
	}
	return true
}

// emptyToNull implements the symmetric encode-side policy of spec.md
// §4.7. buf is the full output buffer after an element/field was
// encoded starting at byte offset start; if the element produced zero
// bytes, emptyToNull either rewrites it to the literal `null` (when
// enabled) or leaves buf truncated back to start, reporting omitted
// so the caller skips the preceding separator.
func emptyToNull(buf []byte, start int, enabled bool) (out []byte, omitted bool) {
	if len(buf) > start {
		return buf, false
	}
	if enabled {
		return append(buf, nullLiteral...), false
	}
	return buf[:start], true
}
