package jsonscan

// Object framing follows the state names from spec.md §4.5:
// BeforeOpeningBrace, AfterOpeningBrace, ObjectFieldNameStart,
// BeforeColon, AfterColon, AfterObjectValue, AfterComma,
// AfterClosingBrace, InvalidObject. Each transition below is a small
// composable helper (in the style of the teacher's take/ensure
// cursor helpers) rather than an explicit state enum, since framing
// here needs no nesting counter — that's reserved for the skip-value
// scanner (skip.go), which can't get away with anything simpler.

// OpenObject is the BeforeOpeningBrace -> AfterOpeningBrace transition:
// it consumes leading whitespace then a '{' token.
func OpenObject(data []byte) (rest []byte, ok bool) {
	trimmed := SkipWhitespace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return data, false
	}
	return trimmed[1:], true
}

// CloseObject is the AfterObjectValue/AfterOpeningBrace ->
// AfterClosingBrace transition: it consumes leading whitespace then a
// '}' token.
func CloseObject(data []byte) (rest []byte, ok bool) {
	trimmed := SkipWhitespace(data)
	if len(trimmed) == 0 || trimmed[0] != '}' {
		return data, false
	}
	return trimmed[1:], true
}

// ObjectComma is the AfterObjectValue -> AfterComma transition.
func ObjectComma(data []byte) (rest []byte, found bool) {
	trimmed := SkipWhitespace(data)
	if len(trimmed) > 0 && trimmed[0] == ',' {
		return trimmed[1:], true
	}
	return data, false
}

// ObjectColon is the BeforeColon -> AfterColon transition.
func ObjectColon(data []byte) (rest []byte, ok bool) {
	trimmed := SkipWhitespace(data)
	if len(trimmed) == 0 || trimmed[0] != ':' {
		return data, false
	}
	return trimmed[1:], true
}

// ObjectKey is the ObjectFieldNameStart -> BeforeColon transition: it
// consumes leading whitespace, scans a JSON string key (spec.md §4.2),
// and returns its decoded (unescaped, UTF-8 validated) content.
func ObjectKey(data []byte) (key []byte, rest []byte, ok bool) {
	trimmed := SkipWhitespace(data)
	token, after, scanned := String(trimmed)
	if !scanned {
		return nil, data, false
	}
	decoded, valid := DecodeString(token[1 : len(token)-1])
	if !valid {
		return nil, data, false
	}
	return decoded, after, true
}
