// Package wordlist holds the fixed word lists the mnemonic codecs index into.
//
// A List is immutable once constructed: a word's code is its zero-based
// position and the index lookup is built once. Lists are shared by pointer
// between codecs and are safe for concurrent readers.
package wordlist

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/Klingon-tech/seedphrase/pkg/crypto"
)

// Fixed list sizes.
const (
	Electrum1Size = 1626
	BIP39Size     = 2048
)

var (
	// ErrWordListSize is returned when a list does not have the expected length.
	ErrWordListSize = errors.New("word list has wrong size")
	// ErrDuplicateWord is returned when a word appears twice in a list.
	ErrDuplicateWord = errors.New("duplicate word in word list")
	// ErrEmptyWord is returned when a list contains an empty entry.
	ErrEmptyWord = errors.New("empty word in word list")
	// ErrFingerprintMismatch is returned when a loaded list does not match
	// its pinned fingerprint.
	ErrFingerprintMismatch = errors.New("word list fingerprint mismatch")
)

// List is an ordered sequence of unique words.
type List struct {
	name  string
	words []string
	index map[string]int
}

// New builds a list from words. size is the required length; a mismatch is
// an error since every codec depends on the exact list size.
func New(name string, words []string, size int) (*List, error) {
	if len(words) != size {
		return nil, fmt.Errorf("%s: %w: got %d, want %d", name, ErrWordListSize, len(words), size)
	}
	l := &List{
		name:  name,
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%s: %w at position %d", name, ErrEmptyWord, i)
		}
		if prev, ok := l.index[w]; ok {
			return nil, fmt.Errorf("%s: %w: %q at positions %d and %d", name, ErrDuplicateWord, w, prev, i)
		}
		l.words[i] = w
		l.index[w] = i
	}
	return l, nil
}

// Name returns the list's label, e.g. "bip39-english".
func (l *List) Name() string { return l.name }

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// Word returns the word with code i. It panics if i is out of range.
func (l *List) Word(i int) string { return l.words[i] }

// Index returns the code of word.
func (l *List) Index(word string) (int, bool) {
	i, ok := l.index[word]
	return i, ok
}

// Contains reports whether word is in the list.
func (l *List) Contains(word string) bool {
	_, ok := l.index[word]
	return ok
}

// Words returns a copy of the words in code order.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Fingerprint returns the hex BLAKE3-256 hash of the newline-joined words.
func (l *List) Fingerprint() string {
	h := crypto.Hash([]byte(strings.Join(l.words, "\n")))
	return hex.EncodeToString(h[:])
}

// Verify checks the list against a pinned fingerprint. An empty pin
// always passes.
func (l *List) Verify(fingerprint string) error {
	if fingerprint == "" {
		return nil
	}
	if got := l.Fingerprint(); !strings.EqualFold(got, fingerprint) {
		return fmt.Errorf("%s: %w: got %s, want %s", l.name, ErrFingerprintMismatch, got, fingerprint)
	}
	return nil
}
