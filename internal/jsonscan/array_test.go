package jsonscan

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestArrayFraming(t *testing.T) {
	c := qt.New(t)

	rest, ok := OpenArray([]byte(`  [1,2]`))
	c.Assert(ok, qt.IsTrue)
	c.Assert(string(rest), qt.Equals, "1,2]")

	rest = rest[1:] // consume the scalar element "1" (not array.go's job)

	rest, found := ArrayComma(rest)
	c.Assert(found, qt.IsTrue)
	c.Assert(string(rest), qt.Equals, "2]")

	rest = rest[1:] // consume the scalar element "2"

	rest, found = ArrayComma(rest)
	c.Assert(found, qt.IsFalse)

	rest, ok = CloseArray(rest)
	c.Assert(ok, qt.IsTrue)
	c.Assert(string(rest), qt.Equals, "")
}

func TestArrayFramingRejectsMissingBracket(t *testing.T) {
	c := qt.New(t)
	rest, ok := OpenArray([]byte(`{"not":"an array"}`))
	c.Assert(ok, qt.IsFalse)
	c.Assert(string(rest), qt.Equals, `{"not":"an array"}`)
}

func TestArrayFramingAllowsWhitespaceBetweenTokens(t *testing.T) {
	c := qt.New(t)
	rest, ok := CloseArray([]byte("  \t]rest"))
	c.Assert(ok, qt.IsTrue)
	c.Assert(string(rest), qt.Equals, "rest")

	rest, found := ArrayComma([]byte("\n, next"))
	c.Assert(found, qt.IsTrue)
	c.Assert(string(rest), qt.Equals, " next")
}
