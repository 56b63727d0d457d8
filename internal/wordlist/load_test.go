package wordlist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
)

func TestRead(t *testing.T) {
	input := "alpha\nbeta\r\n\n  gamma  delta\n"
	l, err := Read(strings.NewReader(input), "read", 4)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got := strings.Join(l.Words(), ","); got != "alpha,beta,gamma,delta" {
		t.Errorf("words = %s", got)
	}

	if _, err := Read(strings.NewReader("one two"), "read", 3); !errors.Is(err, ErrWordListSize) {
		t.Errorf("err = %v, want ErrWordListSize", err)
	}
}

func writeList(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(words(n), "\n")+"\n"), 0600); err != nil {
		t.Fatalf("write list: %v", err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeList(t, Electrum1Size)
	l, err := Load(context.Background(), Source{
		Name: "electrum1",
		Size: Electrum1Size,
		Path: path,
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if l.Name() != "electrum1" || l.Len() != Electrum1Size {
		t.Errorf("Load() = %s/%d", l.Name(), l.Len())
	}
}

func TestLoad_Fingerprint(t *testing.T) {
	path := writeList(t, 8)
	_, err := Load(context.Background(), Source{
		Name:        "pinned",
		Size:        8,
		Path:        path,
		Fingerprint: strings.Repeat("00", 32),
	})
	if !errors.Is(err, ErrFingerprintMismatch) {
		t.Errorf("err = %v, want ErrFingerprintMismatch", err)
	}
}

func TestLoad_NoSource(t *testing.T) {
	if _, err := Load(context.Background(), Source{Name: "none", Size: 1}); !errors.Is(err, ErrNoSource) {
		t.Errorf("err = %v, want ErrNoSource", err)
	}
}

func TestLoad_FallbackToURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, strings.Join(words(6), "\n"))
	}))
	defer srv.Close()

	l, err := Load(context.Background(), Source{
		Name: "fallback",
		Size: 6,
		Path: filepath.Join(t.TempDir(), "missing.txt"),
		URL:  srv.URL,
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if l.Word(5) != "w0005" {
		t.Errorf("Word(5) = %q", l.Word(5))
	}
}

func testFetcher(attempts int) *Fetcher {
	f := NewFetcher(time.Second, attempts)
	f.backoff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return f
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, strings.Join(words(5), " "))
	}))
	defer srv.Close()

	l, err := testFetcher(3).Fetch(context.Background(), srv.URL, "retry", 5)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if l.Len() != 5 {
		t.Errorf("Len() = %d, want 5", l.Len())
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestFetch_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testFetcher(2).Fetch(context.Background(), srv.URL, "down", 5)
	var serr *StatusError
	if !errors.As(err, &serr) || serr.Code != http.StatusBadGateway {
		t.Fatalf("err = %v, want StatusError 502", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestFetch_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := testFetcher(5).Fetch(context.Background(), srv.URL, "missing", 5)
	var serr *StatusError
	if !errors.As(err, &serr) || serr.Code != http.StatusNotFound {
		t.Fatalf("err = %v, want StatusError 404", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestFetch_BadListIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, "too few words")
	}))
	defer srv.Close()

	_, err := testFetcher(4).Fetch(context.Background(), srv.URL, "bad", 5)
	if !errors.Is(err, ErrWordListSize) {
		t.Fatalf("err = %v, want ErrWordListSize", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}
