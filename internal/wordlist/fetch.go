package wordlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Klingon-tech/seedphrase/internal/log"
)

// maxListBytes caps the response body; the largest list is well under this.
const maxListBytes = 1 << 20

// Fetcher downloads word lists over HTTP with bounded retries.
type Fetcher struct {
	http     *http.Client
	attempts int
	backoff  func() backoff.BackOff
}

// NewFetcher creates a fetcher with a per-attempt timeout.
func NewFetcher(timeout time.Duration, attempts int) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if attempts <= 0 {
		attempts = 1
	}
	return &Fetcher{
		http: &http.Client{
			Timeout: timeout,
		},
		attempts: attempts,
		backoff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(500*time.Millisecond),
				backoff.WithMaxInterval(5*time.Second),
			)
		},
	}
}

// StatusError is returned for non-200 responses.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: http status %d", e.URL, e.Code)
}

// Fetch downloads url and parses it as a word list. Transport errors and
// 5xx responses are retried; 4xx responses and malformed lists are not.
func (f *Fetcher) Fetch(ctx context.Context, url, name string, size int) (*List, error) {
	attempt := 0
	op := func() (*List, error) {
		attempt++
		body, err := f.get(ctx, url)
		if err != nil {
			return nil, err
		}
		l, err := Read(io.LimitReader(body, maxListBytes), name, size)
		body.Close()
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return l, nil
	}
	notify := func(err error, wait time.Duration) {
		log.WordList.Warn().
			Err(err).
			Str("list", name).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("Word list fetch failed")
	}

	b := backoff.WithContext(backoff.WithMaxRetries(f.backoff(), uint64(f.attempts-1)), ctx)
	return backoff.RetryNotifyWithData(op, b, notify)
}

func (f *Fetcher) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		serr := &StatusError{URL: url, Code: resp.StatusCode}
		if resp.StatusCode >= 500 {
			return nil, serr
		}
		return nil, backoff.Permanent(serr)
	}
	return resp.Body, nil
}
