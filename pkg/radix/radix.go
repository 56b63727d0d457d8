// Package radix converts digit strings between number bases.
//
// Supported bases are 2, 10 and 16 (digit strings) and 256 (raw bytes held
// in a string). Results are left-padded with zero digits to a requested
// width, which is how the mnemonic codecs move between hex, bit strings and
// byte slices without losing leading zeros.
package radix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FactomProject/basen"
)

// Bytes is the pseudo-base for raw byte strings.
const Bytes = 256

var (
	// ErrUnsupportedBase is returned for bases other than 2, 10, 16 and 256.
	ErrUnsupportedBase = errors.New("unsupported base")
	// ErrInvalidDigit is returned when the input holds a digit outside its base.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrOverflow is returned when a value needs more digits than the width allows.
	ErrOverflow = errors.New("value exceeds output width")
)

var encodings = map[int]*basen.Encoding{
	2:  basen.NewEncoding("01"),
	10: basen.NewEncoding("0123456789"),
	16: basen.NewEncoding("0123456789abcdef"),
}

// Convert reinterprets digits written in base from as a number in base to,
// zero-padded on the left to width digits (bytes for base 256). A width of
// zero disables padding.
func Convert(digits string, from, to, width int) (string, error) {
	raw, err := decode(digits, from)
	if err != nil {
		return "", err
	}
	return encode(raw, to, width)
}

// EncodeBytes writes b as digits in base to, padded to width.
func EncodeBytes(b []byte, to, width int) (string, error) {
	return encode(b, to, width)
}

// DecodeBytes reads digits in base from and returns exactly n bytes.
func DecodeBytes(digits string, from, n int) ([]byte, error) {
	s, err := Convert(digits, from, Bytes, n)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func decode(digits string, base int) ([]byte, error) {
	if base == Bytes {
		return []byte(digits), nil
	}
	enc, ok := encodings[base]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBase, base)
	}
	raw, err := enc.DecodeString(strings.ToLower(digits))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDigit, err)
	}
	return raw, nil
}

func encode(raw []byte, base, width int) (string, error) {
	if base == Bytes {
		raw = trimLeadingZeros(raw)
		if width > 0 && len(raw) > width {
			return "", fmt.Errorf("%w: %d bytes into %d", ErrOverflow, len(raw), width)
		}
		if len(raw) < width {
			padded := make([]byte, width-len(raw), width)
			raw = append(padded, raw...)
		}
		return string(raw), nil
	}
	enc, ok := encodings[base]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedBase, base)
	}
	s := enc.EncodeToString(raw)
	if width > 0 && len(s) > width {
		return "", fmt.Errorf("%w: %d digits into %d", ErrOverflow, len(s), width)
	}
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s, nil
}

func trimLeadingZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	return b
}
