package electrum

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Klingon-tech/seedphrase/internal/phrase"
	"github.com/Klingon-tech/seedphrase/internal/wordlist"
)

// hexWordLen is the number of hex digits per 32-bit word.
const hexWordLen = 8

// V1 encodes and decodes Electrum 1.x mnemonics.
type V1 struct {
	list *wordlist.List
}

// NewV1 creates a v1 codec. The list must have exactly 1626 words.
func NewV1(list *wordlist.List) (*V1, error) {
	if list == nil || list.Len() != wordlist.Electrum1Size {
		return nil, fmt.Errorf("electrum1: %w", wordlist.ErrWordListSize)
	}
	return &V1{list: list}, nil
}

// List returns the codec's word list.
func (c *V1) List() *wordlist.List { return c.list }

// Encode turns hex into three words per 32-bit big-endian word:
//
//	w1 = x mod n
//	w2 = (x/n + w1) mod n
//	w3 = (x/n/n + w2) mod n
//
// Hex digits may be upper or lower case; Decode always returns lower case.
func (c *V1) Encode(s string) (phrase.Phrase, error) {
	if _, err := hex.DecodeString(evenHex(s)); err != nil {
		return nil, fmt.Errorf("%w: %v", phrase.ErrInvalidHex, err)
	}
	if len(s)%hexWordLen != 0 {
		return nil, fmt.Errorf("%w: %d digits", ErrInvalidLength, len(s))
	}

	n := uint64(c.list.Len())
	idx := make([]int, 0, len(s)/hexWordLen*3)
	for i := 0; i < len(s); i += hexWordLen {
		x, err := strconv.ParseUint(s[i:i+hexWordLen], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", phrase.ErrInvalidHex, err)
		}
		w1 := x % n
		w2 := (x/n + w1) % n
		w3 := (x/n/n + w2) % n
		idx = append(idx, int(w1), int(w2), int(w3))
	}
	return phrase.FromIndices(c.list, idx), nil
}

// Decode is the inverse of Encode. Each triple (w1, w2, w3) yields
//
//	x = w1 + n*((w2-w1) mod n) + n*n*((w3-w2) mod n)
//
// written as 8 lower-case hex digits. Decode(Encode(s)) equals
// strings.ToLower(s).
func (c *V1) Decode(p phrase.Phrase) (string, error) {
	if p.Len()%3 != 0 {
		return "", fmt.Errorf("%w: %d words (want a multiple of 3)", phrase.ErrInvalidWordCount, p.Len())
	}
	idx, err := p.Indices(c.list)
	if err != nil {
		return "", err
	}

	n := int64(c.list.Len())
	var b strings.Builder
	b.Grow(len(idx) / 3 * hexWordLen)
	for i := 0; i < len(idx); i += 3 {
		w1, w2, w3 := int64(idx[i]), int64(idx[i+1]), int64(idx[i+2])
		x := w1 + n*mod(w2-w1, n) + n*n*mod(w3-w2, n)
		if x > math.MaxUint32 {
			return "", fmt.Errorf("%w: words %d-%d", ErrWordOutOfRange, i, i+2)
		}
		fmt.Fprintf(&b, "%08x", x)
	}
	return b.String(), nil
}

// DecodeText parses text and calls Decode.
func (c *V1) DecodeText(text string) (string, error) {
	return c.Decode(phrase.Parse(text))
}

// IsSeed reports whether s looks like an Electrum 1.x seed: either 32 or
// 64 hex digits, or 12 or 24 words all drawn from the v1 list.
func (c *V1) IsSeed(s string) bool {
	if len(s) == 32 || len(s) == 64 {
		if _, err := hex.DecodeString(s); err == nil {
			return true
		}
	}
	p := phrase.Parse(s)
	if p.Len() != 12 && p.Len() != 24 {
		return false
	}
	return p.InList(c.list)
}

func mod(a, n int64) int64 {
	return ((a % n) + n) % n
}

// evenHex pads odd-length input so hex.DecodeString reports bad digits
// rather than the length.
func evenHex(s string) string {
	if len(s)%2 != 0 {
		return s + "0"
	}
	return s
}
