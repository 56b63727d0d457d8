package wordlist

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("w%04d", i)
	}
	return out
}

func TestNew(t *testing.T) {
	l, err := New("test", words(Electrum1Size), Electrum1Size)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if l.Len() != Electrum1Size {
		t.Errorf("Len() = %d, want %d", l.Len(), Electrum1Size)
	}
	if l.Word(0) != "w0000" || l.Word(1625) != "w1625" {
		t.Errorf("Word() returned unexpected entries: %q %q", l.Word(0), l.Word(1625))
	}
	if i, ok := l.Index("w0042"); !ok || i != 42 {
		t.Errorf("Index(w0042) = %d, %v; want 42, true", i, ok)
	}
	if l.Contains("nope") {
		t.Error("Contains(nope) should be false")
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New("short", words(10), Electrum1Size); !errors.Is(err, ErrWordListSize) {
		t.Errorf("short list: err = %v, want ErrWordListSize", err)
	}

	dup := words(4)
	dup[3] = dup[1]
	if _, err := New("dup", dup, 4); !errors.Is(err, ErrDuplicateWord) {
		t.Errorf("duplicate: err = %v, want ErrDuplicateWord", err)
	}

	empty := words(4)
	empty[2] = ""
	if _, err := New("empty", empty, 4); !errors.Is(err, ErrEmptyWord) {
		t.Errorf("empty word: err = %v, want ErrEmptyWord", err)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := words(4)
	l, err := New("copy", in, 4)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	in[0] = "mutated"
	if l.Word(0) != "w0000" {
		t.Error("list should not alias caller's slice")
	}
	out := l.Words()
	out[1] = "mutated"
	if l.Word(1) != "w0001" {
		t.Error("Words() should return a copy")
	}
}

func TestBIP39English(t *testing.T) {
	l := BIP39English()
	if l.Len() != BIP39Size {
		t.Fatalf("Len() = %d, want %d", l.Len(), BIP39Size)
	}
	if l.Word(0) != "abandon" || l.Word(3) != "about" || l.Word(2047) != "zoo" {
		t.Errorf("unexpected words: %q %q %q", l.Word(0), l.Word(3), l.Word(2047))
	}
	if BIP39English() != l {
		t.Error("BIP39English() should return the shared instance")
	}
}

func TestFingerprint(t *testing.T) {
	a, _ := New("a", words(4), 4)
	b, _ := New("b", words(4), 4)
	other := words(4)
	other[0], other[1] = other[1], other[0]
	c, _ := New("c", other, 4)

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("same words should have the same fingerprint")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("reordered words should change the fingerprint")
	}
	if len(a.Fingerprint()) != 64 {
		t.Errorf("fingerprint length = %d, want 64", len(a.Fingerprint()))
	}
	if err := a.Verify(strings.ToUpper(a.Fingerprint())); err != nil {
		t.Errorf("Verify() error: %v", err)
	}
	if err := a.Verify(c.Fingerprint()); !errors.Is(err, ErrFingerprintMismatch) {
		t.Errorf("Verify() err = %v, want ErrFingerprintMismatch", err)
	}
	if err := a.Verify(""); err != nil {
		t.Errorf("empty pin should pass, got %v", err)
	}
}
