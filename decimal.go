package jsoncodec

import (
	"github.com/shopspring/decimal"

	"github.com/jsoncodec/jsoncodec/internal/jsonscan"
)

// DecodeDecimal parses a fixed-point decimal number using
// shopspring/decimal, the ecosystem's standard arbitrary-precision
// decimal type, in place of a float64 whenever exact base-10
// arithmetic matters (spec.md §4.1's fixed-point decimal primitive).
func DecodeDecimal(data []byte, cfg *Config) (decimal.Decimal, []byte, error) {
	token, rest, ok := jsonscan.Number(data)
	if !ok {
		return decimal.Decimal{}, data, ErrTooShort
	}
	d, err := decimal.NewFromString(string(jsonscan.NormalizeNumber(token)))
	if err != nil {
		return decimal.Decimal{}, data, ErrTooShort
	}
	return d, rest, nil
}

// EncodeDecimal emits the host's default decimal textual
// representation, matching the policy applied to every other numeric
// width (spec.md §4.1).
func EncodeDecimal(buf []byte, value decimal.Decimal, cfg *Config) []byte {
	return append(buf, value.String()...)
}
