// Package phrase defines the canonical word-sequence form shared by the
// mnemonic codecs and the errors they report.
//
// Codecs operate on Phrase values only. Free text enters through Parse,
// which lower-cases and splits on whitespace.
package phrase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Klingon-tech/seedphrase/internal/wordlist"
)

var (
	// ErrUnknownWord is returned when a word is absent from the relevant list.
	ErrUnknownWord = errors.New("unknown word")
	// ErrInvalidWordCount is returned when a phrase length does not fit the scheme.
	ErrInvalidWordCount = errors.New("invalid word count")
	// ErrInvalidHex is returned when hex input contains non-hex characters.
	ErrInvalidHex = errors.New("invalid hex input")
	// ErrChecksumMismatch is returned by operations that require a valid checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// UnknownWordError reports which word failed the lookup.
type UnknownWordError struct {
	Word     string
	Position int
	List     string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word %q at position %d (list %s)", e.Word, e.Position, e.List)
}

func (e *UnknownWordError) Is(target error) bool {
	return target == ErrUnknownWord
}

// Phrase is an ordered word sequence. Order is significant.
type Phrase []string

// Parse normalizes free text into a Phrase: lower-cased, split on any run
// of whitespace.
func Parse(text string) Phrase {
	return Phrase(strings.Fields(strings.ToLower(text)))
}

// String joins the words with single spaces. This is the exact form hashed
// by checksums and key stretching.
func (p Phrase) String() string {
	return strings.Join(p, " ")
}

// Len returns the word count.
func (p Phrase) Len() int { return len(p) }

// Indices maps every word to its code in l.
func (p Phrase) Indices(l *wordlist.List) ([]int, error) {
	out := make([]int, len(p))
	for i, w := range p {
		idx, ok := l.Index(w)
		if !ok {
			return nil, &UnknownWordError{Word: w, Position: i, List: l.Name()}
		}
		out[i] = idx
	}
	return out, nil
}

// FromIndices maps codes back to words.
func FromIndices(l *wordlist.List, idx []int) Phrase {
	p := make(Phrase, len(idx))
	for i, n := range idx {
		p[i] = l.Word(n)
	}
	return p
}

// InList reports whether every word is in l.
func (p Phrase) InList(l *wordlist.List) bool {
	for _, w := range p {
		if !l.Contains(w) {
			return false
		}
	}
	return true
}
