package jsonscan

// SkipValue consumes exactly one JSON value from the start of data —
// scalar, string, array, or object — without invoking any value
// decoder, so the object scanner can resume at the next ',' or '}'
// (spec.md §4.6). It stops without consuming the terminating ',' or
// '}' that follows a scalar value, but does consume the closing
// bracket/brace of an array or object value that constitutes the
// whole of data[0].
//
// This is written as a single loop over a small tagged state (nesting
// depth, whether we're inside a string, whether the previous string
// byte was a backslash) rather than recursive descent, per spec.md
// §9: nesting depth here is bounded only by the input, and the native
// call stack shouldn't be asked to absorb that.
//
// It correctly treats '{', '}', '[', ']' as ordinary bytes while
// inside a string, including pathological values like "a}}}}b" or
// "a]]]]b", and honors '\' escapes inside those strings regardless of
// which character follows the backslash.
func SkipValue(data []byte) (skipped, rest []byte, ok bool) {
	depth := 0
	inString := false
	escaped := false
	i := 0
	for i < len(data) {
		c := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			i++
			continue
		}
		switch {
		case c == '"':
			inString = true
			i++
		case c == '[' || c == '{':
			depth++
			i++
		case c == ']' || c == '}':
			if depth == 0 {
				// FieldValueEnd: the enclosing structure is ending;
				// stop here without consuming the byte.
				return data[:i], data[i:], true
			}
			depth--
			i++
			if depth == 0 {
				// We just closed the bracket that is this value.
				return data[:i], data[i:], true
			}
		case c == ',':
			if depth == 0 {
				return data[:i], data[i:], true
			}
			i++
		default:
			i++
		}
	}
	return nil, data, false
}

// SkipValueStats reports whether skipping this value required
// descending past the top level at least once, i.e. the skipped value
// was itself an array or object containing further arrays or objects.
func SkipValueStats(skipped []byte) Stats {
	depth := 0
	inString := false
	escaped := false
	var stats Stats
	for _, c := range skipped {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[', '{':
			depth++
			if depth > 1 {
				stats = stats.add(StatSkipValueNested)
			}
		case ']', '}':
			depth--
		}
	}
	return stats
}
