package jsoncodec

import "github.com/jsoncodec/jsoncodec/internal/jsonscan"

// EncodeTag encodes a discriminated tag as `{"name":[arg1,arg2,...]}`
// (spec.md §4.9). No case mapping is applied to name. Decoding of
// tags is not part of the core: no inverse is specified.
func EncodeTag(buf []byte, name string, args []func(buf []byte) []byte) []byte {
	buf = append(buf, '{')
	buf = append(buf, jsonscan.EncodeString([]byte(name))...)
	buf = append(buf, ':', '[')
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = arg(buf)
	}
	buf = append(buf, ']')
	return append(buf, '}')
}
