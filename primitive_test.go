package jsoncodec

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestIntegerRoundTrip(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig()

	v, rest, err := DecodeInt32([]byte("-12345,"), cfg)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, int32(-12345))
	c.Assert(string(rest), qt.Equals, ",")
	c.Assert(string(EncodeInt32(nil, v, cfg)), qt.Equals, "-12345")

	u, rest, err := DecodeUint64([]byte("18446744073709551615}"), cfg)
	c.Assert(err, qt.IsNil)
	c.Assert(u, qt.Equals, uint64(18446744073709551615))
	c.Assert(string(rest), qt.Equals, "}")
	c.Assert(string(EncodeUint64(nil, u, cfg)), qt.Equals, "18446744073709551615")
}

func TestIntegerDecodeRejectsOutOfRange(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig()
	_, rest, err := DecodeInt8([]byte("200,"), cfg)
	c.Assert(err, qt.Equals, ErrTooShort)
	c.Assert(string(rest), qt.Equals, "200,")
}

func TestFloatDecode(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig()
	f, rest, err := DecodeFloat64([]byte("12.34e-5]"), cfg)
	c.Assert(err, qt.IsNil)
	c.Assert(f, qt.Equals, 12.34e-5)
	c.Assert(string(rest), qt.Equals, "]")
}

func TestBoolRoundTrip(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig()

	v, rest, err := DecodeBool([]byte("true,"), cfg)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.IsTrue)
	c.Assert(string(rest), qt.Equals, ",")
	c.Assert(string(EncodeBool(nil, true, cfg)), qt.Equals, "true")

	v, rest, err = DecodeBool([]byte("false}"), cfg)
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.IsFalse)
	c.Assert(string(rest), qt.Equals, "}")
	c.Assert(string(EncodeBool(nil, false, cfg)), qt.Equals, "false")
}

func TestDecodeAnythingAlwaysTooShort(t *testing.T) {
	c := qt.New(t)
	_, rest, err := DecodeAnything([]byte("123"), NewConfig())
	c.Assert(err, qt.Equals, ErrTooShort)
	c.Assert(string(rest), qt.Equals, "123")
}
