package jsonscan

// OpenArray consumes leading whitespace then a '[' token (spec.md §4.3
// phase 1). ok is false, and rest equals data, if no '[' is found.
func OpenArray(data []byte) (rest []byte, ok bool) {
	trimmed := SkipWhitespace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return data, false
	}
	return trimmed[1:], true
}

// CloseArray consumes leading whitespace then a ']' token. ok is
// false, and rest equals data, if no ']' is found at this position.
func CloseArray(data []byte) (rest []byte, ok bool) {
	trimmed := SkipWhitespace(data)
	if len(trimmed) == 0 || trimmed[0] != ']' {
		return data, false
	}
	return trimmed[1:], true
}

// ArrayComma consumes leading whitespace then a ',' token, reporting
// whether one was found. If not found, data is returned unchanged so
// the caller can try CloseArray next.
func ArrayComma(data []byte) (rest []byte, found bool) {
	trimmed := SkipWhitespace(data)
	if len(trimmed) > 0 && trimmed[0] == ',' {
		return trimmed[1:], true
	}
	return data, false
}
