package jsoncodec

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEncodeTag(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig()
	args := []func(buf []byte) []byte{
		func(buf []byte) []byte { return EncodeInt32(buf, 1, cfg) },
		func(buf []byte) []byte { return EncodeString(buf, "two", cfg) },
	}
	encoded := EncodeTag(nil, "Move", args)
	c.Assert(string(encoded), qt.Equals, `{"Move":[1,"two"]}`)
}

func TestEncodeTagNoArgs(t *testing.T) {
	c := qt.New(t)
	encoded := EncodeTag(nil, "Stop", nil)
	c.Assert(string(encoded), qt.Equals, `{"Stop":[]}`)
}
