// Command bloomdemo exercises a string Bloom filter from the command line.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jpl-au/bloom"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// demoLong is added by the demo; demoProbe is demoLong with one more byte.
var (
	demoLong  = repeatTo("AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZz0123456789", 256)
	demoProbe = demoLong + "a"
)

// repeatTo repeats pattern until it is exactly n bytes long.
func repeatTo(pattern string, n int) string {
	return strings.Repeat(pattern, n/len(pattern)+1)[:n]
}

type options struct {
	configFile string
	size       int
	hashes     int
	alg        string
	derivation string
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "bloomdemo",
		Short:         "Bloom filter demonstration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML config file")
	flags.IntVar(&opts.size, "size", 100000, "filter size in bits")
	flags.IntVar(&opts.hashes, "hashes", 3, "number of hash functions")
	flags.StringVar(&opts.alg, "alg", "xxh3", "hash algorithm (xxh3, fnv1a, blake2b, murmur3)")
	flags.StringVar(&opts.derivation, "derivation", "double", "seed derivation (double, linear)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Add a few fruit and a long string, then query them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, log, err := setup(cmd, &opts)
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), f, log)
		},
	})

	var adds []string
	checkCmd := &cobra.Command{
		Use:   "check [items...]",
		Short: "Add --add items, then query the given items",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, log, err := setup(cmd, &opts)
			if err != nil {
				return err
			}
			return runCheck(cmd.OutOrStdout(), f, log, adds, args)
		},
	}
	checkCmd.Flags().StringArrayVar(&adds, "add", nil, "item to add (repeatable)")
	rootCmd.AddCommand(checkCmd)

	return rootCmd
}

// setup merges the config file with explicitly set flags and builds the
// filter and logger.
func setup(cmd *cobra.Command, opts *options) (*bloom.Filter[string], zerolog.Logger, error) {
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Filter.Size = opts.size
	}
	if flags.Changed("hashes") {
		cfg.Filter.Hashes = opts.hashes
	}
	if flags.Changed("alg") {
		cfg.Filter.Algorithm = opts.alg
	}
	if flags.Changed("derivation") {
		cfg.Filter.Derivation = opts.derivation
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = opts.logFormat
	}

	log := newLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	alg := bloom.ParseAlgorithm(cfg.Filter.Algorithm)
	if alg == 0 {
		return nil, log, fmt.Errorf("unknown hash algorithm %q", cfg.Filter.Algorithm)
	}

	var derive bloom.Derivation
	switch cfg.Filter.Derivation {
	case "double", "":
		derive = bloom.DeriveDouble
	case "linear":
		derive = bloom.DeriveLinear
	default:
		return nil, log, fmt.Errorf("unknown derivation %q", cfg.Filter.Derivation)
	}

	f, err := bloom.NewString(cfg.Filter.Size, cfg.Filter.Hashes, bloom.Config{
		HashAlgorithm: alg,
		Derivation:    derive,
	})
	if err != nil {
		return nil, log, fmt.Errorf("failed to create filter: %w", err)
	}

	log.Debug().
		Uint64("size", f.Size()).
		Int("hashes", f.HashCount()).
		Str("alg", cfg.Filter.Algorithm).
		Str("derivation", cfg.Filter.Derivation).
		Msg("filter created")
	return f, log, nil
}

func runDemo(w io.Writer, f *bloom.Filter[string], log zerolog.Logger) error {
	return runCheck(w, f, log,
		[]string{"apple", "banana", "orange", demoLong},
		[]string{"apple", "banana", "grape", demoProbe},
	)
}

func runCheck(w io.Writer, f *bloom.Filter[string], log zerolog.Logger, adds, queries []string) error {
	for _, item := range adds {
		if err := f.Add(item); err != nil {
			return err
		}
		log.Debug().Str("item", abbrev(item)).Msg("added")
	}

	for _, item := range queries {
		ok, err := f.MightContain(item)
		if err != nil {
			return err
		}
		log.Info().Str("item", abbrev(item)).Bool("might_contain", ok).Msg("query")
		fmt.Fprintf(w, "%s\t%v\n", abbrev(item), ok)
	}

	stats, err := json.Marshal(f.Stats())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(stats))
	return nil
}

// abbrev shortens long items for display.
func abbrev(s string) string {
	if len(s) <= 32 {
		return s
	}
	return fmt.Sprintf("%s...(%d bytes)", s[:24], len(s))
}
