package electrum

import (
	"errors"
	"strings"
	"testing"

	"github.com/Klingon-tech/seedphrase/internal/phrase"
	"github.com/Klingon-tech/seedphrase/internal/wordlist"
	"github.com/Klingon-tech/seedphrase/internal/wordlist/wordlisttest"
)

func newV1(t *testing.T) *V1 {
	t.Helper()
	c, err := NewV1(wordlisttest.Electrum1(t))
	if err != nil {
		t.Fatalf("NewV1() error: %v", err)
	}
	return c
}

func TestNewV1_WrongSize(t *testing.T) {
	l, err := wordlist.New("short", wordlisttest.Words(100), 100)
	if err != nil {
		t.Fatalf("wordlist.New() error: %v", err)
	}
	if _, err := NewV1(l); !errors.Is(err, wordlist.ErrWordListSize) {
		t.Errorf("NewV1(100 words) error = %v, want ErrWordListSize", err)
	}
	if _, err := NewV1(nil); !errors.Is(err, wordlist.ErrWordListSize) {
		t.Errorf("NewV1(nil) error = %v, want ErrWordListSize", err)
	}
}

func TestV1_Encode(t *testing.T) {
	c := newV1(t)
	tests := []struct {
		hex  string
		want string
	}{
		{"", ""},
		{"00000000", "w0000 w0000 w0000"},
		{"ffffffff", "w0489 w1296 w1294"},
		{"FFFFFFFF", "w0489 w1296 w1294"},
		{"deadbeef", "w0065 w0146 w1559"},
		{"0123456789abcdef", "w1129 w1486 w1493 w0089 w1094 w0341"},
	}
	for _, tt := range tests {
		got, err := c.Encode(tt.hex)
		if err != nil {
			t.Fatalf("Encode(%q) error: %v", tt.hex, err)
		}
		if got.String() != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestV1_EncodeErrors(t *testing.T) {
	c := newV1(t)
	tests := []struct {
		hex  string
		want error
	}{
		{"0000000", ErrInvalidLength},
		{"000000000000", ErrInvalidLength},
		{"0000000g", phrase.ErrInvalidHex},
		{"zz", phrase.ErrInvalidHex},
		{"0000 000", phrase.ErrInvalidHex},
	}
	for _, tt := range tests {
		if _, err := c.Encode(tt.hex); !errors.Is(err, tt.want) {
			t.Errorf("Encode(%q) error = %v, want %v", tt.hex, err, tt.want)
		}
	}
}

func TestV1_RoundTrip(t *testing.T) {
	c := newV1(t)
	inputs := []string{
		"00000000",
		"ffffffff",
		"00000001",
		"0000065a",
		"80000000",
		"0123456789abcdef0123456789abcdef",
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	}
	for _, in := range inputs {
		p, err := c.Encode(in)
		if err != nil {
			t.Fatalf("Encode(%q) error: %v", in, err)
		}
		if p.Len() != len(in)/8*3 {
			t.Errorf("Encode(%q) gave %d words, want %d", in, p.Len(), len(in)/8*3)
		}
		got, err := c.Decode(p)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", p, err)
		}
		if got != in {
			t.Errorf("Decode(Encode(%q)) = %q", in, got)
		}
	}
}

func TestV1_DecodeErrors(t *testing.T) {
	c := newV1(t)

	if _, err := c.DecodeText("w0000 w0000"); !errors.Is(err, phrase.ErrInvalidWordCount) {
		t.Errorf("DecodeText(2 words) error = %v, want ErrInvalidWordCount", err)
	}

	_, err := c.DecodeText("w0000 nope w0000")
	if !errors.Is(err, phrase.ErrUnknownWord) {
		t.Fatalf("DecodeText(unknown) error = %v, want ErrUnknownWord", err)
	}
	var uw *phrase.UnknownWordError
	if !errors.As(err, &uw) || uw.Word != "nope" || uw.Position != 1 {
		t.Errorf("DecodeText(unknown) error = %#v, want word %q at 1", err, "nope")
	}

	// 1626^2 * 1625 does not fit in 32 bits.
	if _, err := c.DecodeText("w0000 w0000 w1625"); !errors.Is(err, ErrWordOutOfRange) {
		t.Errorf("DecodeText(out of range) error = %v, want ErrWordOutOfRange", err)
	}
}

func TestV1_DecodeText_Case(t *testing.T) {
	c := newV1(t)
	got, err := c.DecodeText("  W0065 w0146\tW1559 ")
	if err != nil {
		t.Fatalf("DecodeText() error: %v", err)
	}
	if got != "deadbeef" {
		t.Errorf("DecodeText() = %q, want deadbeef", got)
	}
}

func TestV1_IsSeed(t *testing.T) {
	c := newV1(t)
	twelve := strings.Repeat("w0001 ", 12)
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"32 hex", strings.Repeat("ab", 16), true},
		{"64 hex", strings.Repeat("0f", 32), true},
		{"31 hex", strings.Repeat("a", 31), false},
		{"32 non-hex", strings.Repeat("zz", 16), false},
		{"12 v1 words", twelve, true},
		{"24 v1 words", twelve + twelve, true},
		{"15 v1 words", strings.Repeat("w0001 ", 15), false},
		{"12 foreign words", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", false},
		{"16 bip39 words", strings.Repeat("abandon ", 16), false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		if got := c.IsSeed(tt.in); got != tt.want {
			t.Errorf("IsSeed(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestV1_RoundTrip_LowerCases(t *testing.T) {
	c := newV1(t)
	for _, in := range []string{"ABCDEF01", "DeadBeef0123ABCD"} {
		p, err := c.Encode(in)
		if err != nil {
			t.Fatalf("Encode(%q) error: %v", in, err)
		}
		got, err := c.Decode(p)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", p, err)
		}
		if want := strings.ToLower(in); got != want {
			t.Errorf("Decode(Encode(%q)) = %q, want %q", in, got, want)
		}
	}
}
