package jsoncodec

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDecodeWithNullAsEmptyRewritesNull(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig(WithNullDecodeAsEmpty(true))
	decoder := Decoder[string](func(data []byte, cfg *Config) (string, []byte, error) {
		c.Assert(data, qt.HasLen, 0)
		return "", nil, nil
	})
	v, rest, err := decodeWithNullAsEmpty(decoder, []byte("null,rest"), cfg)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, "")
	c.Assert(string(rest), qt.Equals, ",rest")
}

func TestDecodeWithNullAsEmptyDisabledPassesThrough(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig(WithNullDecodeAsEmpty(false))
	called := false
	decoder := Decoder[string](func(data []byte, cfg *Config) (string, []byte, error) {
		called = true
		c.Assert(string(data), qt.Equals, "null,rest")
		return "", data, ErrTooShort
	})
	_, _, err := decodeWithNullAsEmpty(decoder, []byte("null,rest"), cfg)
	c.Assert(called, qt.IsTrue)
	c.Assert(err, qt.Equals, ErrTooShort)
}

func TestStringDecodeNullFailsWhenNotTreatedAsEmpty(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig(WithNullDecodeAsEmpty(false))
	_, rest, err := DecodeString([]byte("null"), cfg)
	c.Assert(err, qt.Equals, ErrTooShort)
	c.Assert(string(rest), qt.Equals, "null")
}

func TestEmptyToNullRewritesOrOmits(t *testing.T) {
	c := qt.New(t)
	buf, omitted := emptyToNull([]byte("prefix"), len("prefix"), true)
	c.Assert(string(buf), qt.Equals, "prefixnull")
	c.Assert(omitted, qt.IsFalse)

	buf, omitted = emptyToNull([]byte("prefix"), len("prefix"), false)
	c.Assert(string(buf), qt.Equals, "prefix")
	c.Assert(omitted, qt.IsTrue)

	buf, omitted = emptyToNull([]byte("prefixVALUE"), len("prefix"), false)
	c.Assert(string(buf), qt.Equals, "prefixVALUE")
	c.Assert(omitted, qt.IsFalse)
}
