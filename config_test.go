package jsoncodec

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestNewConfigDefaults(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig()
	c.Assert(cfg.skipMissingProperties, qt.IsTrue)
	c.Assert(cfg.nullDecodeAsEmpty, qt.IsTrue)
	c.Assert(cfg.emptyEncodeAsNull, qt.Equals, EmptyEncodeAsNull{List: false, Tuple: true, Record: true})
	c.Assert(cfg.fieldNameMapping.kind, qt.Equals, mappingDefault)
}

func TestNewConfigOptionsOverrideDefaults(t *testing.T) {
	c := qt.New(t)
	cfg := NewConfig(
		WithFieldNameMapping(PascalCase()),
		WithSkipMissingProperties(false),
		WithNullDecodeAsEmpty(false),
		WithEmptyEncodeAsNull(EmptyEncodeAsNull{List: true, Tuple: false, Record: false}),
	)
	c.Assert(cfg.fieldNameMapping.kind, qt.Equals, mappingPascalCase)
	c.Assert(cfg.skipMissingProperties, qt.IsFalse)
	c.Assert(cfg.nullDecodeAsEmpty, qt.IsFalse)
	c.Assert(cfg.emptyEncodeAsNull, qt.Equals, EmptyEncodeAsNull{List: true, Tuple: false, Record: false})
}
