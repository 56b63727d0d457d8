package radix

import (
	"bytes"
	"errors"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		digits   string
		from, to int
		width    int
		want     string
	}{
		{"hex to binary", "0f", 16, 2, 8, "00001111"},
		{"hex to binary upper", "A5", 16, 2, 8, "10100101"},
		{"binary to hex", "00000001", 2, 16, 4, "0001"},
		{"zero pads fully", "0000", 16, 2, 16, "0000000000000000"},
		{"empty is zero", "", 2, 16, 2, "00"},
		{"decimal to binary", "1626", 10, 2, 11, "11001011010"},
		{"binary to decimal", "11111111111", 2, 10, 0, "2047"},
		{"no padding", "ff", 16, 10, 0, "255"},
		{"same base pads", "1", 16, 16, 3, "001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.digits, tt.from, tt.to, tt.width)
			if err != nil {
				t.Fatalf("Convert() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q, %d, %d, %d) = %q, want %q",
					tt.digits, tt.from, tt.to, tt.width, got, tt.want)
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	if _, err := Convert("12", 2, 16, 0); !errors.Is(err, ErrInvalidDigit) {
		t.Errorf("invalid binary digit: err = %v, want ErrInvalidDigit", err)
	}
	if _, err := Convert("zz", 16, 2, 0); !errors.Is(err, ErrInvalidDigit) {
		t.Errorf("invalid hex digit: err = %v, want ErrInvalidDigit", err)
	}
	if _, err := Convert("10", 7, 2, 0); !errors.Is(err, ErrUnsupportedBase) {
		t.Errorf("base 7: err = %v, want ErrUnsupportedBase", err)
	}
	if _, err := Convert("ffff", 16, 2, 8); !errors.Is(err, ErrOverflow) {
		t.Errorf("overflow: err = %v, want ErrOverflow", err)
	}
	if _, err := DecodeBytes("ffffff", 16, 2); !errors.Is(err, ErrOverflow) {
		t.Errorf("byte overflow: err = %v, want ErrOverflow", err)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{0x00, 0x00, 0x00, 0x00},
		{0x00, 0x01, 0x02, 0x03},
		{0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88},
	}
	for _, in := range inputs {
		bits, err := EncodeBytes(in, 2, len(in)*8)
		if err != nil {
			t.Fatalf("EncodeBytes() error: %v", err)
		}
		if len(bits) != len(in)*8 {
			t.Errorf("bit string length = %d, want %d", len(bits), len(in)*8)
		}
		out, err := DecodeBytes(bits, 2, len(in))
		if err != nil {
			t.Fatalf("DecodeBytes() error: %v", err)
		}
		if !bytes.Equal(in, out) {
			t.Errorf("round trip = %x, want %x", out, in)
		}
	}
}
