// seedphrase is a command-line tool for BIP-39 and Electrum mnemonic seeds.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Klingon-tech/seedphrase/config"
	"github.com/Klingon-tech/seedphrase/internal/bip39"
	"github.com/Klingon-tech/seedphrase/internal/electrum"
	"github.com/Klingon-tech/seedphrase/internal/log"
	"github.com/Klingon-tech/seedphrase/internal/phrase"
	"github.com/Klingon-tech/seedphrase/internal/wordlist"
	"golang.org/x/term"
)

func main() {
	cfg, flags, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			config.PrintUsage(os.Stderr)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		config.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	if flags.Help {
		config.PrintUsage(os.Stdout)
		return
	}
	if flags.Version {
		fmt.Printf("seedphrase version %s\n", config.Version)
		return
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}

	args := flags.Args
	if len(args) == 0 {
		config.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{cfg: cfg}
	cmd := args[0]
	cmdArgs := args[1:]
	log.CLI.Debug().Str("command", cmd).Msg("Dispatch")

	switch cmd {
	case "bip39":
		a.cmdBIP39(cmdArgs)
	case "electrum1":
		a.cmdElectrum1(ctx, cmdArgs)
	case "electrum2":
		a.cmdElectrum2(ctx, cmdArgs)
	case "normalize":
		text, err := readText(cmdArgs, os.Stdin)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(electrum.Normalize(text))
	case "wordlist":
		a.cmdWordList(ctx, cmdArgs)
	case "help":
		config.PrintUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		config.PrintUsage(os.Stderr)
		os.Exit(1)
	}
}

// app lazily builds the codecs a command needs.
type app struct {
	cfg *config.Config
}

func (a *app) bip39List() *wordlist.List {
	path := a.cfg.WordLists.BIP39Path
	if path == "" {
		return wordlist.BIP39English()
	}
	l, err := wordlist.LoadFile(path, "bip39", wordlist.BIP39Size)
	if err != nil {
		fatal("load BIP-39 word list: %v", err)
	}
	log.WordList.Info().Str("path", path).Str("fingerprint", l.Fingerprint()).Msg("Custom BIP-39 word list loaded")
	return l
}

func (a *app) bip39Codec() *bip39.Codec {
	c, err := bip39.New(a.bip39List())
	if err != nil {
		fatal("%v", err)
	}
	return c
}

func (a *app) electrum1List(ctx context.Context) (*wordlist.List, error) {
	return wordlist.Load(ctx, a.cfg.Electrum1Source())
}

func (a *app) v1Codec(ctx context.Context) *electrum.V1 {
	l, err := a.electrum1List(ctx)
	if err != nil {
		fatal("%v\nHint: put the 1626-word Electrum 1.x list at %s or set --electrum1-wordlist", err, a.cfg.DefaultElectrum1Path())
	}
	c, err := electrum.NewV1(l)
	if err != nil {
		fatal("%v", err)
	}
	return c
}

// v2Codec builds the Electrum 2 codec. Only mining needs the legacy list.
func (a *app) v2Codec(ctx context.Context, legacy bool) *electrum.V2 {
	var v1 *electrum.V1
	if legacy {
		v1 = a.v1Codec(ctx)
	}
	c, err := electrum.NewV2(a.bip39List(), v1)
	if err != nil {
		fatal("%v", err)
	}
	return c
}

// ── bip39 ───────────────────────────────────────────────────────────────

func (a *app) cmdBIP39(args []string) {
	const usage = "Usage: seedphrase bip39 <new|encode|decode|check|seed> [args]"
	if len(args) < 1 {
		fatal(usage)
	}

	switch args[0] {
	case "new":
		fs := flag.NewFlagSet("bip39 new", flag.ExitOnError)
		bits := fs.Int("bits", 128, "Entropy bits (multiple of 32)")
		fs.Parse(args[1:])

		entropy, p, err := a.bip39Codec().RandomPair(nil, *bits)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Entropy:  %s\n", hex.EncodeToString(entropy))
		fmt.Printf("Mnemonic: %s\n", p)
	case "encode":
		if len(args) != 2 {
			fatal("Usage: seedphrase bip39 encode <hex>")
		}
		p, err := a.bip39Codec().EntropyHexToMnemonic(args[1])
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(p)
	case "decode":
		p := readPhrase(args[1:])
		entropy, err := a.bip39Codec().MnemonicToEntropy(p)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(hex.EncodeToString(entropy))
	case "check":
		ok, err := a.bip39Codec().CheckMnemonic(readPhrase(args[1:]))
		if err != nil {
			fatal("%v", err)
		}
		report(ok)
	case "seed":
		fs := flag.NewFlagSet("bip39 seed", flag.ExitOnError)
		ask := fs.Bool("passphrase", false, "Prompt for a passphrase")
		fs.Parse(args[1:])

		p := readPhrase(fs.Args())
		seed, err := a.bip39Codec().MnemonicToSeed(p, passphrase(*ask))
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(hex.EncodeToString(seed))
	default:
		fatal("Unknown bip39 command: %s\n%s", args[0], usage)
	}
}

// ── electrum1 ───────────────────────────────────────────────────────────

func (a *app) cmdElectrum1(ctx context.Context, args []string) {
	const usage = "Usage: seedphrase electrum1 <encode|decode|check> [args]"
	if len(args) < 1 {
		fatal(usage)
	}

	switch args[0] {
	case "encode":
		if len(args) != 2 {
			fatal("Usage: seedphrase electrum1 encode <hex>")
		}
		p, err := a.v1Codec(ctx).Encode(args[1])
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(p)
	case "decode":
		s, err := a.v1Codec(ctx).Decode(readPhrase(args[1:]))
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(s)
	case "check":
		text, err := readText(args[1:], os.Stdin)
		if err != nil {
			fatal("%v", err)
		}
		report(a.v1Codec(ctx).IsSeed(text))
	default:
		fatal("Unknown electrum1 command: %s\n%s", args[0], usage)
	}
}

// ── electrum2 ───────────────────────────────────────────────────────────

func (a *app) cmdElectrum2(ctx context.Context, args []string) {
	const usage = "Usage: seedphrase electrum2 <new|encode|decode|check|seed> [args]"
	if len(args) < 1 {
		fatal(usage)
	}

	switch args[0] {
	case "new":
		a.cmdElectrum2New(ctx, args[1:])
	case "encode":
		if len(args) != 2 {
			fatal("Usage: seedphrase electrum2 encode <integer>")
		}
		i, err := parseInt(args[1])
		if err != nil {
			fatal("%v", err)
		}
		p, err := a.v2Codec(ctx, false).IntToMnemonic(i)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(p)
	case "decode":
		i, err := a.v2Codec(ctx, false).MnemonicToInt(readPhrase(args[1:]))
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(i)
	case "check":
		fs := flag.NewFlagSet("electrum2 check", flag.ExitOnError)
		prefix := fs.String("prefix", a.cfg.Mining.Prefix, "Seed version prefix")
		custom := fs.String("custom-entropy", "1", "Required divisor of the seed integer")
		fs.Parse(args[1:])

		ce, err := parseInt(*custom)
		if err != nil {
			fatal("%v", err)
		}
		text, err := readText(fs.Args(), os.Stdin)
		if err != nil {
			fatal("%v", err)
		}
		ok, err := a.v2Codec(ctx, false).CheckSeed(text, *prefix, ce)
		if err != nil {
			fatal("%v", err)
		}
		report(ok)
	case "seed":
		fs := flag.NewFlagSet("electrum2 seed", flag.ExitOnError)
		prefix := fs.String("prefix", a.cfg.Mining.Prefix, "Seed version prefix")
		ask := fs.Bool("passphrase", false, "Prompt for a passphrase")
		fs.Parse(args[1:])

		text, err := readText(fs.Args(), os.Stdin)
		if err != nil {
			fatal("%v", err)
		}
		seed, err := a.v2Codec(ctx, false).SeedFromMnemonic(text, passphrase(*ask), *prefix)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(hex.EncodeToString(seed))
	default:
		fatal("Unknown electrum2 command: %s\n%s", args[0], usage)
	}
}

func (a *app) cmdElectrum2New(ctx context.Context, args []string) {
	m := a.cfg.Mining
	fs := flag.NewFlagSet("electrum2 new", flag.ExitOnError)
	prefix := fs.String("prefix", m.Prefix, "Seed version prefix (01 standard, 100 segwit, 101 2fa)")
	bits := fs.Int("bits", m.TargetBits, "Target entropy bits")
	custom := fs.String("custom-entropy", m.CustomEntropy, "Seed integer must be a multiple of this")
	maxIter := fs.Uint64("max-iterations", m.MaxIterations, "Give up after this many candidates (0 = unlimited)")
	timeout := fs.Duration("timeout", m.Timeout, "Give up after this long (0 = no limit)")
	fs.Parse(args)

	ce, err := parseInt(*custom)
	if err != nil {
		fatal("%v", err)
	}
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	opts := electrum.DefaultMineOptions()
	opts.Prefix = *prefix
	opts.TargetBits = *bits
	opts.CustomEntropy = ce
	opts.MaxIterations = *maxIter

	start := time.Now()
	res, err := a.v2Codec(ctx, true).Mine(ctx, opts)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			fatal("seed mining timed out after %s", *timeout)
		}
		fatal("%v", err)
	}
	fmt.Printf("Mnemonic:   %s\n", res.Phrase)
	fmt.Printf("Words:      %d\n", res.Phrase.Len())
	fmt.Printf("Iterations: %d (%s)\n", res.Iterations, time.Since(start).Round(time.Millisecond))
}

// ── wordlist ────────────────────────────────────────────────────────────

func (a *app) cmdWordList(ctx context.Context, args []string) {
	if len(args) != 1 || args[0] != "info" {
		fatal("Usage: seedphrase wordlist info")
	}

	b := a.bip39List()
	fmt.Printf("%-10s %5d words  blake3:%s\n", "bip39", b.Len(), b.Fingerprint())

	src := a.cfg.Electrum1Source()
	e, err := a.electrum1List(ctx)
	if err != nil {
		fmt.Printf("%-10s unavailable (%v)\n", "electrum1", err)
		return
	}
	fmt.Printf("%-10s %5d words  blake3:%s\n", "electrum1", e.Len(), e.Fingerprint())
	if src.Fingerprint == "" {
		fmt.Println("\nPin the Electrum 1.x list by adding to the config file:")
		fmt.Printf("  wordlist.electrum1_fingerprint = %s\n", e.Fingerprint())
	}
}

// ── helpers ─────────────────────────────────────────────────────────────

// readPhrase reads a phrase from args or, for "-" or no args, stdin.
func readPhrase(args []string) phrase.Phrase {
	text, err := readText(args, os.Stdin)
	if err != nil {
		fatal("%v", err)
	}
	return phrase.Parse(text)
}

// readText joins args into one string. A lone "-" or no args reads r.
func readText(args []string, r io.Reader) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(io.LimitReader(r, 1<<16))
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no input")
	}
	return text, nil
}

func parseInt(s string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return i, nil
}

func report(ok bool) {
	if ok {
		fmt.Println("valid")
		return
	}
	fmt.Println("invalid")
	os.Exit(2)
}

func passphrase(ask bool) string {
	if !ask {
		return ""
	}
	pass, err := readPassword("Enter passphrase: ")
	if err != nil {
		fatal("read passphrase: %v", err)
	}
	confirm, err := readPassword("Confirm passphrase: ")
	if err != nil {
		fatal("read passphrase: %v", err)
	}
	if string(pass) != string(confirm) {
		fatal("passphrases do not match")
	}
	return string(pass)
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
