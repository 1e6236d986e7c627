package jsoncodec

import "github.com/jsoncodec/jsoncodec/internal/jsonscan"

// DecodeRecord builds a record decoder from an initial state, a
// stepping function that maps the current state and an internal
// (case-unmapped) field name to Keep or Skip, and a finalizer that
// assembles the accumulated state into the record value (spec.md
// §4.5). Unknown fields are discarded with the skip-value scanner
// when cfg.skipMissingProperties is true; otherwise they fail the
// decode.
func DecodeRecord[S any](initial S, step func(state S, internalName string) Step[S], finalize func(state S, cfg *Config) (S, error)) Decoder[S] {
	return func(data []byte, cfg *Config) (S, []byte, error) {
		rest, ok := jsonscan.OpenObject(data)
		if !ok {
			return initial, data, ErrTooShort
		}
		state := initial
		if closed, ok := jsonscan.CloseObject(rest); ok {
			final, err := finalize(state, cfg)
			if err != nil {
				return initial, data, err
			}
			return final, closed, nil
		}
		for {
			key, next, ok := jsonscan.ObjectKey(rest)
			if !ok {
				return initial, data, ErrTooShort
			}
			rest, ok = jsonscan.ObjectColon(next)
			if !ok {
				return initial, data, ErrTooShort
			}
			internalName := cfg.fieldNameMapping.internalName(string(key))
			s := step(state, internalName)
			trimmed := jsonscan.SkipWhitespace(rest)
			if s.skip {
				if !cfg.skipMissingProperties {
					return initial, data, ErrTooShort
				}
				_, skippedRest, ok := jsonscan.SkipValue(trimmed)
				if !ok {
					return initial, data, ErrTooShort
				}
				rest = skippedRest
			} else {
				newState, valRest, err := s.decode(state, trimmed, cfg)
				if err != nil {
					return initial, data, ErrTooShort
				}
				state = newState
				rest = valRest
			}
			if afterComma, found := jsonscan.ObjectComma(rest); found {
				rest = afterComma
				continue
			}
			closed, ok := jsonscan.CloseObject(rest)
			if !ok {
				return initial, data, ErrTooShort
			}
			final, err := finalize(state, cfg)
			if err != nil {
				return initial, data, err
			}
			return final, closed, nil
		}
	}
}

// RecordField describes one field's contribution to a record encoder:
// its internal (camelCase) name, which EncodeRecord rewrites through
// the configured field-name mapping, and the function that encodes its
// value, whose output EncodeRecord uses to apply the empty-to-null and
// field-omission policy (spec.md §4.5).
type RecordField[S any] struct {
	InternalName string
	Encode       func(buf []byte, state S, cfg *Config) []byte
}

// EncodeRecord builds a record encoder from an ordered list of
// fields. Field order in the output follows the order fields appear
// in, per spec.md §4.5.
func EncodeRecord[S any](fields []RecordField[S]) Encoder[S] {
	return func(buf []byte, state S, cfg *Config) []byte {
		buf = append(buf, '{')
		wroteAny := false
		var scratch []byte
		for _, f := range fields {
			scratch = scratch[:0]
			scratch = f.Encode(scratch, state, cfg)
			scratch, omitted := emptyToNull(scratch, 0, cfg.emptyEncodeAsNull.Record)
			if omitted {
				continue
			}
			if wroteAny {
				buf = append(buf, ',')
			}
			externalName := cfg.fieldNameMapping.externalName(f.InternalName)
			buf = append(buf, jsonscan.EncodeString([]byte(externalName))...)
			buf = append(buf, ':')
			buf = append(buf, scratch...)
			wroteAny = true
		}
		return append(buf, '}')
	}
}
