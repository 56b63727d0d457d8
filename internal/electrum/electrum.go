// Package electrum implements Electrum's legacy (v1) and current (v2)
// mnemonic seed formats.
//
// v1 phrases encode 32-bit words as word triples over a 1626-word list.
// v2 phrases encode an arbitrary non-negative integer over the BIP-39
// list; their type is carried by the prefix of HMAC-SHA512("Seed version",
// normalized phrase).
package electrum

import "errors"

// Seed version prefixes.
const (
	PrefixStandard = "01"
	PrefixSegwit   = "100"
	Prefix2FA      = "101"
)

var (
	// ErrInvalidLength is returned when v1 hex input is not a multiple of 8 digits.
	ErrInvalidLength = errors.New("hex length is not a multiple of 8")
	// ErrWordOutOfRange is returned when a v1 triple decodes above 32 bits.
	ErrWordOutOfRange = errors.New("word triple exceeds 32 bits")
	// ErrNegativeInteger is returned when encoding a negative v2 integer.
	ErrNegativeInteger = errors.New("negative integer")
	// ErrInvalidPrefix is returned for an empty or non-hex seed version prefix.
	ErrInvalidPrefix = errors.New("invalid seed version prefix")
	// ErrInvalidSeedVersion is returned when a phrase fails the seed version test.
	ErrInvalidSeedVersion = errors.New("phrase does not match seed version")
	// ErrMiningTimeout is returned when seed mining exceeds its iteration cap.
	ErrMiningTimeout = errors.New("seed mining exceeded iteration limit")
	// ErrNoLegacyList is returned by operations that need the Electrum 1.x
	// list when the codec was built without it.
	ErrNoLegacyList = errors.New("electrum 1.x word list not loaded")
	// ErrRoundTrip is returned if an encoded seed does not decode to its integer.
	ErrRoundTrip = errors.New("seed encoding round trip failed")
)

// ValidatePrefix checks that prefix is a non-empty lower-case hex string.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return ErrInvalidPrefix
	}
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if !('0' <= c && c <= '9') && !('a' <= c && c <= 'f') {
			return ErrInvalidPrefix
		}
	}
	return nil
}
