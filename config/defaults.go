package config

import "time"

// DefaultElectrum1URL serves the 1626-word Electrum 1.x list, one word per
// line. It is used when no local file is present.
const DefaultElectrum1URL = "https://gist.githubusercontent.com/anonymous/f58f57780245db3cafc4/raw/" +
	"1b5a9e81c0a356373e9e13aa720baef89d8fa856/electrum1_english_words"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		WordLists: WordListConfig{
			Electrum1URL:  DefaultElectrum1URL,
			FetchTimeout:  10 * time.Second,
			FetchAttempts: 3,
		},
		Mining: MiningConfig{
			TargetBits:    128,
			Prefix:        "01",
			CustomEntropy: "1",
			// The library has no cap; the CLI stops runaway searches.
			MaxIterations: 1 << 24,
			Timeout:       2 * time.Minute,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
