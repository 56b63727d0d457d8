package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Klingon-tech/seedphrase/internal/log"
)

// Read parses a word list from r. Words are separated by any whitespace,
// so both one-word-per-line files and space separated dumps are accepted.
func Read(r io.Reader, name string, size int) (*List, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	words := make([]string, 0, size)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return New(name, words, size)
}

// LoadFile reads a word list from a local file.
func LoadFile(path, name string, size int) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, name, size)
}

// Source describes where a word list comes from. Path is tried first;
// URL is the fallback.
type Source struct {
	Name        string
	Size        int
	Path        string
	URL         string
	Fingerprint string // hex BLAKE3; empty disables the check

	Timeout  time.Duration // per HTTP attempt
	Attempts int           // HTTP attempts, at least 1
}

// ErrNoSource is returned when a Source has neither a path nor a URL.
var ErrNoSource = errors.New("word list has no source")

// Load resolves src into a List, verifying size and fingerprint.
func Load(ctx context.Context, src Source) (*List, error) {
	var (
		l      *List
		err    error
		origin string
	)
	switch {
	case src.Path != "":
		origin = src.Path
		l, err = LoadFile(src.Path, src.Name, src.Size)
		if err != nil && src.URL != "" {
			log.WordList.Warn().Err(err).Str("list", src.Name).Msg("Local word list unavailable, fetching")
			origin = src.URL
			l, err = NewFetcher(src.Timeout, src.Attempts).Fetch(ctx, src.URL, src.Name, src.Size)
		}
	case src.URL != "":
		origin = src.URL
		l, err = NewFetcher(src.Timeout, src.Attempts).Fetch(ctx, src.URL, src.Name, src.Size)
	default:
		return nil, fmt.Errorf("%s: %w", src.Name, ErrNoSource)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name, err)
	}
	if err := l.Verify(src.Fingerprint); err != nil {
		return nil, err
	}

	log.WordList.Info().
		Str("list", l.Name()).
		Int("size", l.Len()).
		Str("source", origin).
		Str("fingerprint", l.Fingerprint()[:16]).
		Msg("Word list loaded")
	return l, nil
}
