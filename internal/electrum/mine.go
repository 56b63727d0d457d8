package electrum

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/Klingon-tech/seedphrase/internal/log"
	"github.com/Klingon-tech/seedphrase/internal/phrase"
)

// minExtraBits is the floor on random bits drawn for a mining run.
const minExtraBits = 16

// checkInterval is how often, in candidates, the miner polls its context.
const checkInterval = 256

// MineOptions controls seed mining.
//
// Each hex digit of Prefix fixes 4 bits of the HMAC, so a search takes
// about 16^len(Prefix) candidates on average (256 for "01").
type MineOptions struct {
	TargetBits    int      // entropy of the resulting seed, default 128
	Prefix        string   // seed version prefix, default "01"
	CustomEntropy *big.Int // the seed integer is a multiple of this, default 1
	MaxIterations uint64   // 0 means unlimited
	Rand          io.Reader
}

// DefaultMineOptions returns options for a standard 128-bit seed.
func DefaultMineOptions() MineOptions {
	return MineOptions{
		TargetBits:    128,
		Prefix:        PrefixStandard,
		CustomEntropy: big.NewInt(1),
	}
}

// MineResult is a mined seed.
type MineResult struct {
	Phrase     phrase.Phrase
	Value      *big.Int
	Iterations uint64
}

// ExtraBits returns how many random bits a run draws:
// max(16, 4*len(prefix) + targetBits - ceil(log2(customEntropy))).
func ExtraBits(targetBits int, prefix string, customEntropy *big.Int) int {
	lost := 4 * len(prefix)
	// ceil(log2(c)) == bitlen(c-1) for c >= 1.
	cofactor := new(big.Int).Sub(customEntropy, big.NewInt(1)).BitLen()
	return max(minExtraBits, lost+targetBits-cofactor)
}

// Mine searches for a seed phrase whose integer is a multiple of
// CustomEntropy, whose normalized text carries the Prefix seed version and
// which is not also a valid-looking Electrum 1.x seed. The codec must
// have been built with the legacy list.
//
// Starting from a random base, candidates CustomEntropy*(base+nonce) are
// tried for nonce = 1, 2, ... The search stops with ctx.Err() when ctx is
// done and with ErrMiningTimeout after MaxIterations candidates.
func (c *V2) Mine(ctx context.Context, opts MineOptions) (*MineResult, error) {
	if c.v1 == nil {
		return nil, ErrNoLegacyList
	}
	if opts.TargetBits <= 0 {
		return nil, fmt.Errorf("target bits must be positive, got %d", opts.TargetBits)
	}
	if err := ValidatePrefix(opts.Prefix); err != nil {
		return nil, fmt.Errorf("%w: %q", err, opts.Prefix)
	}
	custom := opts.CustomEntropy
	if custom == nil {
		custom = big.NewInt(1)
	}
	if custom.Sign() <= 0 {
		return nil, fmt.Errorf("custom entropy must be at least 1, got %s", custom)
	}
	r := opts.Rand
	if r == nil {
		r = rand.Reader
	}

	extra := ExtraBits(opts.TargetBits, opts.Prefix, custom)
	limit := new(big.Int).Lsh(big.NewInt(1), uint(extra))
	base, err := rand.Int(r, limit)
	if err != nil {
		return nil, fmt.Errorf("draw entropy: %w", err)
	}

	log.Miner.Debug().
		Int("extra_bits", extra).
		Str("prefix", opts.Prefix).
		Str("custom_entropy", custom.String()).
		Uint64("max_iterations", opts.MaxIterations).
		Msg("Seed mining started")
	start := time.Now()

	one := big.NewInt(1)
	nonce := new(big.Int)
	for iter := uint64(1); ; iter++ {
		if iter%checkInterval == 1 {
			select {
			case <-ctx.Done():
				log.Miner.Debug().Uint64("iterations", iter-1).Msg("Seed mining cancelled")
				return nil, ctx.Err()
			default:
			}
		}
		if opts.MaxIterations > 0 && iter > opts.MaxIterations {
			log.Miner.Warn().Uint64("iterations", opts.MaxIterations).Msg("Seed mining hit iteration limit")
			return nil, fmt.Errorf("%w (%d)", ErrMiningTimeout, opts.MaxIterations)
		}

		nonce.Add(nonce, one)
		value := new(big.Int).Add(base, nonce)
		value.Mul(value, custom)

		p, err := c.IntToMnemonic(value)
		if err != nil {
			return nil, err
		}
		back, err := c.MnemonicToInt(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRoundTrip, err)
		}
		if back.Cmp(value) != 0 {
			return nil, ErrRoundTrip
		}

		text := p.String()
		if c.v1.IsSeed(text) {
			continue
		}
		if IsSeedVersion(Normalize(text), opts.Prefix) {
			log.Miner.Info().
				Uint64("iterations", iter).
				Int("words", p.Len()).
				Dur("elapsed", time.Since(start)).
				Msg("Seed mined")
			return &MineResult{Phrase: p, Value: value, Iterations: iter}, nil
		}
	}
}
