package config

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// Version is reported by --version.
const Version = "0.1.0"

// Flags holds parsed global command-line flags. Parsing stops at the first
// non-flag argument, which is the subcommand.
type Flags struct {
	// Commands
	Help    bool
	Version bool

	// Core
	DataDir string
	Config  string

	// Word lists
	Electrum1Path string
	Electrum1URL  string
	BIP39Path     string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Subcommand and its arguments
	Args []string

	// Explicitly-set bool flags (for true/false overrides).
	SetLogJSON bool
}

// ParseFlags parses the global flags in args (without the program name).
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("seedphrase", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")

	// Core
	fs.StringVar(&f.DataDir, "datadir", "", "Data directory path")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	// Word lists
	fs.StringVar(&f.Electrum1Path, "electrum1-wordlist", "", "Electrum 1.x word list file")
	fs.StringVar(&f.Electrum1URL, "electrum1-url", "", "URL to fetch the Electrum 1.x word list from")
	fs.StringVar(&f.BIP39Path, "bip39-wordlist", "", "BIP-39 word list file (default: built-in English)")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()
	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	// Core
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}

	// Word lists
	if f.Electrum1Path != "" {
		cfg.WordLists.Electrum1Path = f.Electrum1Path
	}
	if f.Electrum1URL != "" {
		cfg.WordLists.Electrum1URL = f.Electrum1URL
	}
	if f.BIP39Path != "" {
		cfg.WordLists.BIP39Path = f.BIP39Path
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// PrintUsage writes the global help text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, `seedphrase - BIP-39 and Electrum mnemonic seed tool

Usage:
  seedphrase [global flags] <command> [args]

Commands:
  bip39 new [--bits N]            Generate random entropy and its phrase
  bip39 encode <hex>              Entropy to phrase
  bip39 decode <phrase>           Phrase to entropy
  bip39 check <phrase>            Verify a phrase checksum
  bip39 seed [--passphrase] <phrase>
                                  Derive the 64-byte seed

  electrum1 encode <hex>          Legacy seed to phrase
  electrum1 decode <phrase>       Phrase to legacy seed
  electrum1 check <text>          Does the text look like a legacy seed

  electrum2 new [--prefix P] [--bits N] [--custom-entropy N]
                [--max-iterations N] [--timeout D]
                                  Mine a new versioned seed
  electrum2 encode <integer>      Integer to phrase
  electrum2 decode <phrase>       Phrase to integer
  electrum2 check [--prefix P] [--custom-entropy N] <phrase>
                                  Verify the seed version
  electrum2 seed [--prefix P] [--passphrase] <phrase>
                                  Derive the 64-byte seed

  normalize <text>                Print Electrum-normalized text
  wordlist info                   Show word list sizes and fingerprints

Global Flags:
  --help, -h              Show this help message
  --version, -v           Show version information
  --datadir               Data directory (default: ~/.seedphrase)
  --config, -c            Config file path (default: <datadir>/seedphrase.conf)
  --electrum1-wordlist    Electrum 1.x word list file
                          (default: <datadir>/wordlists/electrum1.txt)
  --electrum1-url         Fetch the Electrum 1.x word list from this URL
  --bip39-wordlist        BIP-39 word list file (default: built-in English)
  --log-level             Log level: debug, info, warn, error (default: warn)
  --log-file              Log file path (default: stderr only)
  --log-json              Output logs as JSON

Phrases may be given as several arguments or as one quoted argument; "-"
reads the phrase from standard input.
`)
}

// Load loads configuration with the following precedence:
// 1. Default values
// 2. Auto-create data dir + default config (idempotent)
// 3. Config file
// 4. Command-line flags
func Load(args []string) (*Config, *Flags, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, nil, err
	}

	// Start with defaults
	cfg := Default()

	// Override datadir if specified
	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}

	// Auto-create the data directory and default config on first start.
	if err := EnsureDataDirs(cfg); err != nil {
		return nil, nil, fmt.Errorf("ensuring data dirs: %w", err)
	}

	// Determine config file path
	configPath := flags.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}

	// Load config file
	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config file: %w", err)
	}

	// Apply file config
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, nil, fmt.Errorf("applying config file: %w", err)
	}

	// Apply flags (highest precedence)
	ApplyFlags(cfg, flags)

	if cfg.WordLists.Electrum1Path == "" {
		cfg.WordLists.Electrum1Path = cfg.DefaultElectrum1Path()
	}
	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, flags, nil
}

// EnsureDataDirs creates the data directory structure and a default config
// file if they don't already exist. Safe to call on every start.
func EnsureDataDirs(cfg *Config) error {
	dirs := []string{
		cfg.DataDir,
		cfg.WordListDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	// Create default config if it doesn't exist.
	configPath := cfg.ConfigFile()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := WriteDefaultConfig(configPath); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
	}

	return nil
}
