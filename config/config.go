// Package config handles seedphrase configuration.
//
// Settings come from three layers, later ones winning:
//   - Built-in defaults
//   - The config file (<datadir>/seedphrase.conf unless --config is given)
//   - Global command-line flags
package config

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Klingon-tech/seedphrase/internal/wordlist"
)

// Config holds runtime configuration for the seedphrase tool.
type Config struct {
	DataDir string `conf:"datadir"`

	// Word list sources
	WordLists WordListConfig

	// Electrum 2 seed mining
	Mining MiningConfig

	// Logging
	Log LogConfig
}

// WordListConfig says where word lists come from. The BIP-39 English list
// is built in; the Electrum 1.x list must be supplied.
type WordListConfig struct {
	Electrum1Path        string        `conf:"wordlist.electrum1"`
	Electrum1URL         string        `conf:"wordlist.electrum1_url"`         // Fallback when the file is missing
	Electrum1Fingerprint string        `conf:"wordlist.electrum1_fingerprint"` // Hex BLAKE3, empty skips the check
	BIP39Path            string        `conf:"wordlist.bip39"`                 // Overrides the built-in English list
	FetchTimeout         time.Duration `conf:"wordlist.fetch_timeout"`
	FetchAttempts        int           `conf:"wordlist.fetch_attempts"`
}

// MiningConfig holds defaults for "electrum2 new".
type MiningConfig struct {
	TargetBits    int           `conf:"mining.target_bits"`
	Prefix        string        `conf:"mining.prefix"`
	CustomEntropy string        `conf:"mining.custom_entropy"` // Decimal integer >= 1
	MaxIterations uint64        `conf:"mining.max_iterations"` // 0 = unlimited
	Timeout       time.Duration `conf:"mining.timeout"`        // 0 = none
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// CustomEntropyInt parses CustomEntropy. An empty value means 1.
func (m MiningConfig) CustomEntropyInt() (*big.Int, error) {
	if m.CustomEntropy == "" {
		return big.NewInt(1), nil
	}
	n, ok := new(big.Int).SetString(m.CustomEntropy, 10)
	if !ok {
		return nil, fmt.Errorf("mining.custom_entropy %q is not a decimal integer", m.CustomEntropy)
	}
	return n, nil
}

// Electrum1Source describes the configured Electrum 1.x word list.
func (c *Config) Electrum1Source() wordlist.Source {
	return wordlist.Source{
		Name:        "electrum1",
		Size:        wordlist.Electrum1Size,
		Path:        c.WordLists.Electrum1Path,
		URL:         c.WordLists.Electrum1URL,
		Fingerprint: c.WordLists.Electrum1Fingerprint,
		Timeout:     c.WordLists.FetchTimeout,
		Attempts:    c.WordLists.FetchAttempts,
	}
}

// =============================================================================
// Directory helpers
// =============================================================================

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.seedphrase
//	macOS:   ~/Library/Application Support/Seedphrase
//	Windows: %APPDATA%\Seedphrase
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seedphrase"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Seedphrase")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Seedphrase")
		}
		return filepath.Join(home, "AppData", "Roaming", "Seedphrase")
	default:
		return filepath.Join(home, ".seedphrase")
	}
}

// WordListDir returns the directory holding local word list files.
func (c *Config) WordListDir() string {
	return filepath.Join(c.DataDir, "wordlists")
}

// DefaultElectrum1Path is where the Electrum 1.x list is looked for when
// no path is configured.
func (c *Config) DefaultElectrum1Path() string {
	return filepath.Join(c.WordListDir(), "electrum1.txt")
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "seedphrase.conf")
}
