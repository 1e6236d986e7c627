package jsoncodec

import "github.com/jsoncodec/jsoncodec/internal/jsonscan"

// DecodeList builds a list decoder from an element decoder, following
// the two-phase scanner of spec.md §4.3: an opening `[`, then
// repeated whitespace/element/separator cycles until a `]` is seen.
func DecodeList[T any](element Decoder[T]) Decoder[[]T] {
	return func(data []byte, cfg *Config) ([]T, []byte, error) {
		rest, ok := jsonscan.OpenArray(data)
		if !ok {
			return nil, data, ErrTooShort
		}
		if closed, ok := jsonscan.CloseArray(rest); ok {
			return []T{}, closed, nil
		}
		var values []T
		for {
			trimmed := jsonscan.SkipWhitespace(rest)
			value, next, err := decodeWithNullAsEmpty(element, trimmed, cfg)
			if err != nil {
				return nil, data, ErrTooShort
			}
			values = append(values, value)
			rest = next
			if afterComma, found := jsonscan.ArrayComma(rest); found {
				rest = afterComma
				continue
			}
			closed, ok := jsonscan.CloseArray(rest)
			if !ok {
				return nil, data, ErrTooShort
			}
			return values, closed, nil
		}
	}
}

// EncodeList builds a list encoder from an element encoder, applying
// the empty-to-null and element-omission policy of spec.md §4.3.
func EncodeList[T any](element Encoder[T]) Encoder[[]T] {
	return func(buf []byte, values []T, cfg *Config) []byte {
		buf = append(buf, '[')
		wroteAny := false
		var scratch []byte
		for _, v := range values {
			scratch = scratch[:0]
			scratch = element(scratch, v, cfg)
			scratch, omitted := emptyToNull(scratch, 0, cfg.emptyEncodeAsNull.List)
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
