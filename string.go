package jsoncodec

import (
	"github.com/jsoncodec/jsoncodec/internal/jsonscan"
)

// DecodeString parses a JSON string literal, unescaping its interior
// per spec.md §4.2. UTF-8 validity of the decoded content is enforced
// by the scanner; failure is reported as ErrTooShort.
func DecodeString(data []byte, cfg *Config) (string, []byte, error) {
	token, rest, ok := jsonscan.String(data)
	if !ok {
		return "", data, ErrTooShort
	}
	decoded, valid := jsonscan.DecodeString(token[1 : len(token)-1])
	if !valid {
		return "", data, ErrTooShort
	}
	return string(decoded), rest, nil
}

// EncodeString escape-encodes value as a JSON string literal
// (spec.md §4.2).
func EncodeString(buf []byte, value string, cfg *Config) []byte {
	return append(buf, jsonscan.EncodeString([]byte(value))...)
}
