// Package bip39 converts between entropy and BIP-39 mnemonics.
//
// Entropy bits are followed by len(entropy)*8/32 bits of its SHA-256 and
// the result is cut into 11-bit word codes. Validation recomputes the
// checksum from the payload; it is never stored separately.
package bip39

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/Klingon-tech/seedphrase/internal/log"
	"github.com/Klingon-tech/seedphrase/internal/phrase"
	"github.com/Klingon-tech/seedphrase/internal/wordlist"
	"github.com/Klingon-tech/seedphrase/pkg/crypto"
	"github.com/Klingon-tech/seedphrase/pkg/radix"
)

// Supported sizes. Entropy is 32..992 bits in steps of 32; the word
// counts are exactly the phrases that range produces.
const (
	MinEntropyBytes = 4
	MaxEntropyBytes = 124
	MinWords        = 3
	MaxWords        = 93

	bitsPerWord = 11
)

// ErrInvalidEntropyLength is returned for entropy outside the supported sizes.
var ErrInvalidEntropyLength = errors.New("invalid entropy length")

// Codec encodes and validates BIP-39 mnemonics over one word list.
type Codec struct {
	list *wordlist.List
}

// New creates a codec. The list must have exactly 2048 words.
func New(list *wordlist.List) (*Codec, error) {
	if list == nil || list.Len() != wordlist.BIP39Size {
		return nil, fmt.Errorf("bip39: %w", wordlist.ErrWordListSize)
	}
	return &Codec{list: list}, nil
}

// Default returns a codec over the bundled English list.
func Default() *Codec {
	return &Codec{list: wordlist.BIP39English()}
}

// List returns the codec's word list.
func (c *Codec) List() *wordlist.List { return c.list }

// ValidateEntropyLength checks that n bytes is a supported entropy size.
func ValidateEntropyLength(n int) error {
	if n%4 != 0 || n < MinEntropyBytes || n > MaxEntropyBytes {
		return fmt.Errorf("%w: %d bytes (want a multiple of 4 in [%d, %d])",
			ErrInvalidEntropyLength, n, MinEntropyBytes, MaxEntropyBytes)
	}
	return nil
}

// EntropyToMnemonic encodes entropy as len(entropy)*3/4 words.
func (c *Codec) EntropyToMnemonic(entropy []byte) (phrase.Phrase, error) {
	if err := ValidateEntropyLength(len(entropy)); err != nil {
		return nil, err
	}

	sum := crypto.SHA256(entropy)
	payload, err := radix.EncodeBytes(entropy, 2, len(entropy)*8)
	if err != nil {
		return nil, err
	}
	checksum, err := radix.EncodeBytes(sum[:], 2, len(sum)*8)
	if err != nil {
		return nil, err
	}
	bits := payload + checksum[:len(entropy)*8/32]

	idx := make([]int, 0, len(bits)/bitsPerWord)
	for i := 0; i < len(bits); i += bitsPerWord {
		n, err := strconv.ParseUint(bits[i:i+bitsPerWord], 2, bitsPerWord)
		if err != nil {
			return nil, err
		}
		idx = append(idx, int(n))
	}
	return phrase.FromIndices(c.list, idx), nil
}

// EntropyHexToMnemonic is EntropyToMnemonic for hex-encoded entropy.
func (c *Codec) EntropyHexToMnemonic(s string) (phrase.Phrase, error) {
	entropy, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return c.EntropyToMnemonic(entropy)
}

// CheckMnemonic reports whether p carries a valid checksum. The error is
// non-nil only for structural problems: a word count outside 3..93 or not
// a multiple of 3 (ErrInvalidWordCount), or a word missing from the list
// (ErrUnknownWord).
func (c *Codec) CheckMnemonic(p phrase.Phrase) (bool, error) {
	_, ok, err := c.split(p)
	return ok, err
}

// CheckMnemonicText parses text and calls CheckMnemonic.
func (c *Codec) CheckMnemonicText(text string) (bool, error) {
	return c.CheckMnemonic(phrase.Parse(text))
}

// MnemonicToEntropy recovers the entropy encoded by a valid phrase.
func (c *Codec) MnemonicToEntropy(p phrase.Phrase) ([]byte, error) {
	payload, ok, err := c.split(p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, phrase.ErrChecksumMismatch
	}
	return payload, nil
}

// MnemonicToSeed validates p and stretches it into a 64-byte seed with
// PBKDF2-HMAC-SHA512 (salt "mnemonic"+passphrase, 2048 rounds).
func (c *Codec) MnemonicToSeed(p phrase.Phrase, passphrase string) ([]byte, error) {
	ok, err := c.CheckMnemonic(p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, phrase.ErrChecksumMismatch
	}
	defer log.Benchmark("bip39 seed")()
	log.BIP39.Debug().Int("words", p.Len()).Bool("passphrase", passphrase != "").Msg("Deriving seed")

	password := norm.NFKD.String(p.String())
	salt := norm.NFKD.String("mnemonic" + passphrase)
	return crypto.PBKDF2SHA512([]byte(password), []byte(salt)), nil
}

// RandomPair draws bits of entropy from r (crypto/rand when nil) and
// returns it with its mnemonic.
func (c *Codec) RandomPair(r io.Reader, bits int) ([]byte, phrase.Phrase, error) {
	if bits%32 != 0 {
		return nil, nil, fmt.Errorf("%w: %d bits is not a multiple of 32", ErrInvalidEntropyLength, bits)
	}
	if err := ValidateEntropyLength(bits / 8); err != nil {
		return nil, nil, err
	}
	if r == nil {
		r = rand.Reader
	}
	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(r, entropy); err != nil {
		return nil, nil, fmt.Errorf("generate entropy: %w", err)
	}
	p, err := c.EntropyToMnemonic(entropy)
	if err != nil {
		return nil, nil, err
	}
	return entropy, p, nil
}

// split decodes p into its payload bytes and reports whether the trailing
// checksum bits match. For L total bits the payload is the first L/33*32
// bits and the checksum claim is the last L/33.
func (c *Codec) split(p phrase.Phrase) ([]byte, bool, error) {
	n := p.Len()
	if n%3 != 0 || n < MinWords || n > MaxWords {
		return nil, false, fmt.Errorf("%w: %d words (want a multiple of 3 in [%d, %d])",
			phrase.ErrInvalidWordCount, n, MinWords, MaxWords)
	}
	idx, err := p.Indices(c.list)
	if err != nil {
		return nil, false, err
	}

	bits := make([]byte, 0, n*bitsPerWord)
	for _, i := range idx {
		group, err := radix.Convert(strconv.Itoa(i), 10, 2, bitsPerWord)
		if err != nil {
			return nil, false, err
		}
		bits = append(bits, group...)
	}

	total := len(bits)
	payloadBits := total / 33 * 32
	checksumBits := total / 33
	payload, err := radix.DecodeBytes(string(bits[:payloadBits]), 2, payloadBits/8)
	if err != nil {
		return nil, false, err
	}

	sum := crypto.SHA256(payload)
	want, err := radix.EncodeBytes(sum[:], 2, len(sum)*8)
	if err != nil {
		return nil, false, err
	}
	return payload, string(bits[total-checksumBits:]) == want[:checksumBits], nil
}

func decodeHex(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return nil, fmt.Errorf("%w: %q at offset %d", phrase.ErrInvalidHex, s[i], i)
		}
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd hex length %d", ErrInvalidEntropyLength, len(s))
	}
	return hex.DecodeString(s)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
