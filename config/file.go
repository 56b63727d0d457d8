package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadFile loads configuration values from a .conf file.
// Format: key = value (one per line, # for comments)
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse key = value
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a config value by key.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	// Core
	case "datadir":
		cfg.DataDir = value

	// Word lists
	case "wordlist.electrum1":
		cfg.WordLists.Electrum1Path = value
	case "wordlist.electrum1_url":
		cfg.WordLists.Electrum1URL = value
	case "wordlist.electrum1_fingerprint":
		cfg.WordLists.Electrum1Fingerprint = strings.ToLower(value)
	case "wordlist.bip39":
		cfg.WordLists.BIP39Path = value
	case "wordlist.fetch_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		cfg.WordLists.FetchTimeout = d
	case "wordlist.fetch_attempts":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.WordLists.FetchAttempts = n

	// Mining
	case "mining.target_bits":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Mining.TargetBits = n
	case "mining.prefix":
		cfg.Mining.Prefix = value
	case "mining.custom_entropy":
		cfg.Mining.CustomEntropy = value
	case "mining.max_iterations":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		cfg.Mining.MaxIterations = n
	case "mining.timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		cfg.Mining.Timeout = d

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a commented default configuration file.
func WriteDefaultConfig(path string) error {
	content := `# seedphrase configuration
#
# Global command-line flags override these values.

# Data directory (default: ~/.seedphrase)
# datadir = ~/.seedphrase

# ============================================================================
# Word Lists
# ============================================================================

# The BIP-39 English list is built in. Electrum 1.x phrases need the
# 1626-word legacy list, one word per line.
# wordlist.electrum1 = <datadir>/wordlists/electrum1.txt

# Fetched when the file above is missing. Set to empty to stay offline.
# wordlist.electrum1_url = https://gist.githubusercontent.com/anonymous/f58f57780245db3cafc4/raw/1b5a9e81c0a356373e9e13aa720baef89d8fa856/electrum1_english_words

# Hex BLAKE3 fingerprint the Electrum 1.x list must match
# (see "seedphrase wordlist info").
# wordlist.electrum1_fingerprint =

# Replace the built-in BIP-39 list with a local 2048-word file.
# wordlist.bip39 =

wordlist.fetch_timeout = 10s
wordlist.fetch_attempts = 3

# ============================================================================
# Electrum 2 Seed Mining
# ============================================================================

mining.target_bits = 128

# Seed version prefix: 01 standard, 100 segwit, 101 two-factor
mining.prefix = 01

# The mined seed integer is a multiple of this value.
mining.custom_entropy = 1

# Safety limits (0 disables)
mining.max_iterations = 16777216
mining.timeout = 2m

# ============================================================================
# Logging
# ============================================================================

log.level = warn
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0644)
}
