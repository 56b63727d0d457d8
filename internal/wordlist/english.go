package wordlist

import (
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// BIP39EnglishName labels the bundled BIP-39 English list.
const BIP39EnglishName = "bip39-english"

var bip39English = sync.OnceValue(func() *List {
	l, err := New(BIP39EnglishName, wordlists.English, BIP39Size)
	if err != nil {
		// The bundled list is checksummed by go-bip39 at init.
		panic(err)
	}
	return l
})

// BIP39English returns the bundled BIP-39 English list. Electrum-2 seeds
// use the same list.
func BIP39English() *List {
	return bip39English()
}
