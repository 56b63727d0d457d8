// Package crypto provides the hash primitives used by the mnemonic codecs.
package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters fixed by BIP-39. Electrum-2 reuses them.
const (
	PBKDF2Iterations = 2048
	SeedSize         = 64
)

// Hash computes a BLAKE3-256 hash of the input data.
// Used for word list fingerprints, never for any mnemonic checksum.
func Hash(data []byte) [32]byte {
	return blake3.Sum256(data)
}

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// HMACSHA512 returns HMAC-SHA512(key, msg).
func HMACSHA512(key, msg []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// HMACSHA512Hex returns the lower-case hex encoding of HMAC-SHA512(key, msg).
func HMACSHA512Hex(key, msg []byte) string {
	return hex.EncodeToString(HMACSHA512(key, msg))
}

// PBKDF2SHA512 stretches password with salt using PBKDF2-HMAC-SHA512,
// 2048 iterations and a 64-byte output.
func PBKDF2SHA512(password, salt []byte) []byte {
	return pbkdf2.Key(password, salt, PBKDF2Iterations, SeedSize, sha512.New)
}
