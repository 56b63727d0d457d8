package electrum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Klingon-tech/seedphrase/internal/log"
	"github.com/Klingon-tech/seedphrase/internal/phrase"
	"github.com/Klingon-tech/seedphrase/internal/wordlist"
	"github.com/Klingon-tech/seedphrase/pkg/crypto"
)

var seedVersionKey = []byte("Seed version")

// V2 encodes Electrum 2.x seeds as integers over the BIP-39 list.
type V2 struct {
	list *wordlist.List
	v1   *V1
	base *big.Int
}

// NewV2 creates a v2 codec. list must be a 2048-word list. v1 may be nil;
// it is only needed to reject phrases that would also read as legacy
// seeds, so Mine and IsElectrum1Seed fail without it.
func NewV2(list *wordlist.List, v1 *V1) (*V2, error) {
	if list == nil || list.Len() != wordlist.BIP39Size {
		return nil, fmt.Errorf("electrum2: %w", wordlist.ErrWordListSize)
	}
	return &V2{
		list: list,
		v1:   v1,
		base: big.NewInt(int64(list.Len())),
	}, nil
}

// List returns the codec's word list.
func (c *V2) List() *wordlist.List { return c.list }

// MnemonicToInt folds the words from last to first: i = i*2048 + code.
// The first word is the least significant digit.
func (c *V2) MnemonicToInt(p phrase.Phrase) (*big.Int, error) {
	idx, err := p.Indices(c.list)
	if err != nil {
		return nil, err
	}
	i := new(big.Int)
	for k := len(idx) - 1; k >= 0; k-- {
		i.Mul(i, c.base)
		i.Add(i, big.NewInt(int64(idx[k])))
	}
	return i, nil
}

// IntToMnemonic emits i in base 2048, least significant word first.
// Zero encodes as the empty phrase.
func (c *V2) IntToMnemonic(i *big.Int) (phrase.Phrase, error) {
	if i.Sign() < 0 {
		return nil, ErrNegativeInteger
	}
	n := new(big.Int).Set(i)
	r := new(big.Int)
	var p phrase.Phrase
	for n.Sign() > 0 {
		n.DivMod(n, c.base, r)
		p = append(p, c.list.Word(int(r.Int64())))
	}
	return p, nil
}

// IsSeedVersion reports whether the hex HMAC-SHA512 of s under the key
// "Seed version" starts with prefix. s is hashed as given; phrases typed
// by a user should go through Normalize first.
func IsSeedVersion(s, prefix string) bool {
	return strings.HasPrefix(crypto.HMACSHA512Hex(seedVersionKey, []byte(s)), prefix)
}

// IsElectrum1Seed reports whether s would also be accepted as a legacy
// seed. It returns ErrNoLegacyList if the codec was built without one.
func (c *V2) IsElectrum1Seed(s string) (bool, error) {
	if c.v1 == nil {
		return false, ErrNoLegacyList
	}
	return c.v1.IsSeed(s), nil
}

// CheckSeed reports whether text, once normalized, carries the seed
// version prefix and decodes to a multiple of customEntropy. A nil
// customEntropy means 1.
func (c *V2) CheckSeed(text, prefix string, customEntropy *big.Int) (bool, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return false, err
	}
	s := Normalize(text)
	if !IsSeedVersion(s, prefix) {
		return false, nil
	}
	i, err := c.MnemonicToInt(phrase.Parse(s))
	if err != nil {
		return false, err
	}
	if customEntropy == nil || customEntropy.Cmp(big.NewInt(1)) <= 0 {
		return true, nil
	}
	return new(big.Int).Mod(i, customEntropy).Sign() == 0, nil
}

// SeedFromMnemonic stretches a v2 phrase into a 64-byte seed:
// PBKDF2-HMAC-SHA512(normalized phrase, "electrum"+normalized passphrase).
// The phrase must pass the seed version test for prefix.
func (c *V2) SeedFromMnemonic(text, passphrase, prefix string) ([]byte, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return nil, err
	}
	s := Normalize(text)
	if !IsSeedVersion(s, prefix) {
		return nil, fmt.Errorf("%w %q", ErrInvalidSeedVersion, prefix)
	}
	salt := "electrum" + Normalize(passphrase)
	defer log.Benchmark("electrum2 seed")()
	log.Electrum.Debug().Str("prefix", prefix).Bool("passphrase", passphrase != "").Msg("Deriving seed")
	return crypto.PBKDF2SHA512([]byte(s), []byte(salt)), nil
}
