// Package jsoncodec implements a configurable JSON codec: a pair of
// cooperating subsystems that serialize structured values to bytes
// conforming to RFC 8259 and parse such bytes back into structured
// values, driven by a schema the caller supplies through the
// composition protocol in composition.go.
package jsoncodec

// FieldNameMapping selects how external JSON object keys are rewritten
// to and from a record's internal (camelCase) field names (spec.md
// §3, §4.8).
type FieldNameMapping struct {
	kind      mappingKind
	transform func(internalName string) string
	reverse   func(externalName string) string
}

type mappingKind int

const (
	mappingDefault mappingKind = iota
	mappingSnakeCase
	mappingPascalCase
	mappingKebabCase
	mappingCamelCase
	mappingCustom
)

// Default leaves field names unchanged in both directions.
func Default() FieldNameMapping { return FieldNameMapping{kind: mappingDefault} }

// SnakeCase maps internal camelCase names to snake_case and back.
func SnakeCase() FieldNameMapping { return FieldNameMapping{kind: mappingSnakeCase} }

// PascalCase maps internal camelCase names to PascalCase and back.
func PascalCase() FieldNameMapping { return FieldNameMapping{kind: mappingPascalCase} }

// KebabCase maps internal camelCase names to kebab-case and back.
func KebabCase() FieldNameMapping { return FieldNameMapping{kind: mappingKebabCase} }

// CamelCase is an explicit alias for Default: internal names are
// already assumed to be camelCase (spec.md §3).
func CamelCase() FieldNameMapping { return FieldNameMapping{kind: mappingCamelCase} }

// Custom maps field names with a caller-supplied pair of transforms:
// toExternal converts an internal field name for encoding, and
// toInternal converts an external key back for decoding.
func Custom(toExternal, toInternal func(string) string) FieldNameMapping {
	return FieldNameMapping{kind: mappingCustom, transform: toExternal, reverse: toInternal}
}

// EmptyEncodeAsNull controls, per spec.md §3/§4.7, whether an empty
// sub-encoder result is rewritten to the literal `null` (true) or the
// element/field is omitted entirely (false), independently for lists,
// tuples, and records.
type EmptyEncodeAsNull struct {
	List   bool
	Tuple  bool
	Record bool
}

// Config is the immutable configuration handle threaded through every
// encode and decode call (spec.md §3). Build one with NewConfig;
// Config itself carries no exported mutable state, so the same value
// may be shared freely across goroutines (spec.md §5).
type Config struct {
	fieldNameMapping      FieldNameMapping
	skipMissingProperties bool
	nullDecodeAsEmpty     bool
	emptyEncodeAsNull     EmptyEncodeAsNull
}

// Option configures a Config produced by NewConfig.
type Option func(*Config)

// WithFieldNameMapping sets the field-name mapping strategy.
func WithFieldNameMapping(m FieldNameMapping) Option {
	return func(c *Config) { c.fieldNameMapping = m }
}

// WithSkipMissingProperties sets whether unknown object fields are
// scanned and discarded (true) or cause a decode failure (false).
func WithSkipMissingProperties(skip bool) Option {
	return func(c *Config) { c.skipMissingProperties = skip }
}

// WithNullDecodeAsEmpty sets whether a literal `null` is rewritten to
// an empty byte sequence before being handed to a sub-decoder.
func WithNullDecodeAsEmpty(asEmpty bool) Option {
	return func(c *Config) { c.nullDecodeAsEmpty = asEmpty }
}

// WithEmptyEncodeAsNull sets the empty-to-null policy per container
// kind.
func WithEmptyEncodeAsNull(e EmptyEncodeAsNull) Option {
	return func(c *Config) { c.emptyEncodeAsNull = e }
}

// NewConfig builds a Config handle. Unspecified options take the
// defaults named in spec.md §6: Default field-name mapping,
// skipMissingProperties and nullDecodeAsEmpty both true, and
// emptyEncodeAsNull of {list:false, tuple:true, record:true}.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		fieldNameMapping:      Default(),
		skipMissingProperties: true,
		nullDecodeAsEmpty:     true,
		emptyEncodeAsNull:     EmptyEncodeAsNull{List: false, Tuple: true, Record: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Config) mapping() FieldNameMapping { return c.fieldNameMapping }
