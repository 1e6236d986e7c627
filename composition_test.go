package jsoncodec

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestNewDecoderAdaptsPlainFunc(t *testing.T) {
	c := qt.New(t)
	decoder := NewDecoder(func(data []byte, cfg *Config) (int, []byte, error) {
		return 42, data, nil
	})
	v, _, err := decoder(nil, NewConfig())
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, 42)
}

func TestNewEncoderAdaptsPlainFunc(t *testing.T) {
	c := qt.New(t)
	encoder := NewEncoder(func(buf []byte, v int, cfg *Config) []byte {
		return append(buf, byte(v))
	})
	out := encoder(nil, 7, NewConfig())
	c.Assert(out, qt.DeepEquals, []byte{7})
}
