package jsoncodec

import "github.com/jsoncodec/jsoncodec/internal/jsonscan"

// DecodeTuple builds a tuple decoder from an initial state, a
// stepping function that maps a position index to Keep or TooLong,
// and a finalizer that assembles the accumulated state into the
// tuple value (spec.md §4.4, §9).
//
// TooLong positions are scanned with the skip-value scanner and then
// reported as ErrTooShort: extra array elements beyond the tuple's
// declared arity fail the whole decode rather than being silently
// discarded, matching the "terminate gracefully" wording of the
// source design rather than record's lenient skipMissingProperties
// behavior.
func DecodeTuple[S any](initial S, step func(index int) Step[S], finalize func(state S, cfg *Config) (S, error)) Decoder[S] {
	return func(data []byte, cfg *Config) (S, []byte, error) {
		rest, ok := jsonscan.OpenArray(data)
		if !ok {
			return initial, data, ErrTooShort
		}
		if closed, ok := jsonscan.CloseArray(rest); ok {
			final, err := finalize(initial, cfg)
			if err != nil {
				return initial, data, err
			}
			return final, closed, nil
		}
		state := initial
		index := 0
		for {
			trimmed := jsonscan.SkipWhitespace(rest)
			s := step(index)
			if s.skip {
				if _, _, ok := jsonscan.SkipValue(trimmed); !ok {
					return initial, data, ErrTooShort
				}
				return initial, data, ErrTooShort
			}
			newState, next, err := s.decode(state, trimmed, cfg)
			if err != nil {
				return initial, data, ErrTooShort
			}
			state = newState
			rest = next
			index++
			if afterComma, found := jsonscan.ArrayComma(rest); found {
				rest = afterComma
				continue
			}
			closed, ok := jsonscan.CloseArray(rest)
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

// EncodeTuple builds a tuple encoder from per-position encode
// callbacks, applying the empty-to-null and element-omission policy
// shared with list encoding (spec.md §4.4).
func EncodeTuple[S any](elements []func(buf []byte, state S, cfg *Config) []byte) Encoder[S] {
	return func(buf []byte, state S, cfg *Config) []byte {
		buf = append(buf, '[')
		wroteAny := false
		var scratch []byte
		for _, enc := range elements {
			scratch = scratch[:0]
			scratch = enc(scratch, state, cfg)
			scratch, omitted := emptyToNull(scratch, 0, cfg.emptyEncodeAsNull.Tuple)
			if omitted {
				continue
			}
			if wroteAny {
				buf = append(buf, ',')
			}
			buf = append(buf, scratch...)
			wroteAny = true
		}
		return append(buf, ']')
	}
}
