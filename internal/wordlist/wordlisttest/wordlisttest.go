// Package wordlisttest provides synthetic word lists for tests that must
// not depend on an external Electrum-1 list.
package wordlisttest

import (
	"fmt"
	"testing"

	"github.com/Klingon-tech/seedphrase/internal/wordlist"
)

// Words returns n distinct words "w0000", "w0001", ...
func Words(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%04d", i)
	}
	return words
}

// Electrum1 returns a synthetic list with the Electrum-1 size.
func Electrum1(tb testing.TB) *wordlist.List {
	tb.Helper()
	l, err := wordlist.New("electrum1-test", Words(wordlist.Electrum1Size), wordlist.Electrum1Size)
	if err != nil {
		tb.Fatalf("wordlist.New() error: %v", err)
	}
	return l
}
