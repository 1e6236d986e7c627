package jsoncodec

import (
	"strconv"

	"github.com/jsoncodec/jsoncodec/internal/jsonscan"
)

// signedInt and unsignedInt are local replacements for the generic
// integer constraints offered by golang.org/x/exp/constraints: the
// corpus this codec is grounded on never imports that module, so the
// primitive widths named in spec.md §4.1 are enumerated here instead.
type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func decodeSigned[T signedInt](bitSize int) Decoder[T] {
	return func(data []byte, cfg *Config) (T, []byte, error) {
		token, rest, ok := jsonscan.Number(data)
		if !ok {
			return 0, data, ErrTooShort
		}
		n, err := strconv.ParseInt(string(jsonscan.NormalizeNumber(token)), 10, bitSize)
		if err != nil {
			return 0, data, ErrTooShort
		}
		return T(n), rest, nil
	}
}

func encodeSigned[T signedInt](bitSize int) Encoder[T] {
	return func(buf []byte, value T, cfg *Config) []byte {
		return strconv.AppendInt(buf, int64(value), 10)
	}
}

func decodeUnsigned[T unsignedInt](bitSize int) Decoder[T] {
	return func(data []byte, cfg *Config) (T, []byte, error) {
		token, rest, ok := jsonscan.Number(data)
		if !ok {
			return 0, data, ErrTooShort
		}
		n, err := strconv.ParseUint(string(jsonscan.NormalizeNumber(token)), 10, bitSize)
		if err != nil {
			return 0, data, ErrTooShort
		}
		return T(n), rest, nil
	}
}

func encodeUnsigned[T unsignedInt](bitSize int) Encoder[T] {
	return func(buf []byte, value T, cfg *Config) []byte {
		return strconv.AppendUint(buf, uint64(value), 10)
	}
}

var (
	DecodeInt8  = decodeSigned[int8](8)
	DecodeInt16 = decodeSigned[int16](16)
	DecodeInt32 = decodeSigned[int32](32)
	DecodeInt64 = decodeSigned[int64](64)

	EncodeInt8  = encodeSigned[int8](8)
	EncodeInt16 = encodeSigned[int16](16)
	EncodeInt32 = encodeSigned[int32](32)
	EncodeInt64 = encodeSigned[int64](64)

	DecodeUint8  = decodeUnsigned[uint8](8)
	DecodeUint16 = decodeUnsigned[uint16](16)
	DecodeUint32 = decodeUnsigned[uint32](32)
	DecodeUint64 = decodeUnsigned[uint64](64)

	EncodeUint8  = encodeUnsigned[uint8](8)
	EncodeUint16 = encodeUnsigned[uint16](16)
	EncodeUint32 = encodeUnsigned[uint32](32)
	EncodeUint64 = encodeUnsigned[uint64](64)
)

// DecodeFloat32 and DecodeFloat64 parse the number scanner's token
// with the host's string→float primitive (spec.md §6).
func DecodeFloat32(data []byte, cfg *Config) (float32, []byte, error) {
	token, rest, ok := jsonscan.Number(data)
	if !ok {
		return 0, data, ErrTooShort
	}
	f, err := strconv.ParseFloat(string(jsonscan.NormalizeNumber(token)), 32)
	if err != nil {
		return 0, data, ErrTooShort
	}
	return float32(f), rest, nil
}

func EncodeFloat32(buf []byte, value float32, cfg *Config) []byte {
	return strconv.AppendFloat(buf, float64(value), 'g', -1, 32)
}

func DecodeFloat64(data []byte, cfg *Config) (float64, []byte, error) {
	token, rest, ok := jsonscan.Number(data)
	if !ok {
		return 0, data, ErrTooShort
	}
	f, err := strconv.ParseFloat(string(jsonscan.NormalizeNumber(token)), 64)
	if err != nil {
		return 0, data, ErrTooShort
	}
	return f, rest, nil
}

func EncodeFloat64(buf []byte, value float64, cfg *Config) []byte {
	return strconv.AppendFloat(buf, value, 'g', -1, 64)
}

var trueLiteral = []byte("true")
var falseLiteral = []byte("false")

// DecodeBool recognizes the literals `true` and `false`.
func DecodeBool(data []byte, cfg *Config) (bool, []byte, error) {
	if hasLiteralPrefix(data, trueLiteral) {
		return true, data[len(trueLiteral):], nil
	}
	if hasLiteralPrefix(data, falseLiteral) {
		return false, data[len(falseLiteral):], nil
	}
	return false, data, ErrTooShort
}

func EncodeBool(buf []byte, value bool, cfg *Config) []byte {
	if value {
		return append(buf, trueLiteral...)
	}
	return append(buf, falseLiteral...)
}

func hasLiteralPrefix(data, literal []byte) bool {
	if len(data) < len(literal) {
		return false
	}
	for i, b := range literal {
		if data[i] != b {
			return false
		}
	}
	return true
}

// DecodeAnything is an "anything" placeholder decoder (spec.md §4.4):
// it always reports ErrTooShort and returns data unchanged. DecodeTuple
// does not call it; a TooLong position there is scanned with the
// skip-value scanner and the tuple decode then fails with ErrTooShort.
func DecodeAnything(data []byte, cfg *Config) (struct{}, []byte, error) {
	return struct{}{}, data, ErrTooShort
}
