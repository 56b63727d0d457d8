package config

import (
	"encoding/hex"
	"fmt"

	"github.com/Klingon-tech/seedphrase/internal/electrum"
)

// Validate checks config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	wl := &cfg.WordLists
	if wl.Electrum1Path == "" && wl.Electrum1URL == "" {
		return fmt.Errorf("wordlist.electrum1 or wordlist.electrum1_url must be set")
	}
	if wl.Electrum1Fingerprint != "" {
		b, err := hex.DecodeString(wl.Electrum1Fingerprint)
		if err != nil || len(b) != 32 {
			return fmt.Errorf("wordlist.electrum1_fingerprint must be 32-byte hex")
		}
	}
	if wl.FetchTimeout < 0 {
		return fmt.Errorf("wordlist.fetch_timeout must not be negative")
	}
	if wl.FetchAttempts < 1 {
		return fmt.Errorf("wordlist.fetch_attempts must be at least 1")
	}

	m := &cfg.Mining
	if m.TargetBits <= 0 {
		return fmt.Errorf("mining.target_bits must be positive")
	}
	if err := electrum.ValidatePrefix(m.Prefix); err != nil {
		return fmt.Errorf("mining.prefix %q: %w", m.Prefix, err)
	}
	ce, err := m.CustomEntropyInt()
	if err != nil {
		return err
	}
	if ce.Sign() <= 0 {
		return fmt.Errorf("mining.custom_entropy must be at least 1")
	}
	if m.Timeout < 0 {
		return fmt.Errorf("mining.timeout must not be negative")
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}

	return nil
}
