// Command rtrand draws values from the unbiased range generators, checks their uniformity
// and compares the per-draw cost of different range shapes.
//
// Usage:
//
//	rtrand [OPTIONS] draw  --kind int --min=-5 --max 5 -n 20
//	rtrand [OPTIONS] check --min 0 --max 6 -n 1000000
//	rtrand [OPTIONS] bench --a-max 255 --b-max 254
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TomTonic/rtrand"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

type config struct {
	Source     string `short:"s" long:"source" default:"dprng" choice:"dprng" choice:"cprng" choice:"chacha" choice:"mt19937" choice:"pcg" description:"bit source"`
	Seed       uint64 `long:"seed" description:"seed of the deterministic bit sources (0 = random for dprng)"`
	DebugLevel string `short:"d" long:"debuglevel" default:"info" description:"logging level {trace, debug, info, warn, error, critical, off}"`

	out    io.Writer
	logOut io.Writer
	log    slog.Logger
}

// newSource returns the configured bit source.
func (cfg *config) newSource() (rtrand.BitSource, error) {
	src, err := rtrand.NewSource(cfg.Source, cfg.Seed)
	if err != nil {
		return nil, err
	}
	cfg.log.Debugf("Using bit source %s (seed %d)", cfg.Source, cfg.Seed)
	return src, nil
}

// setupLogging creates the log backend and hands the subsystem logger to the library.
func (cfg *config) setupLogging(w io.Writer) error {
	level, ok := slog.LevelFromString(cfg.DebugLevel)
	if !ok {
		return fmt.Errorf("invalid debug level %q", cfg.DebugLevel)
	}
	backend := slog.NewBackend(w)
	cfg.log = backend.Logger("RTRD")
	cfg.log.SetLevel(level)
	rtrand.UseLogger(cfg.log)
	return nil
}

// newParser wires the global options and all subcommands to one parser.
func newParser(cfg *config) (*flags.Parser, error) {
	parser := flags.NewParser(cfg, flags.Default)
	commands := []struct {
		name, short, long string
		data              any
	}{
		{"draw", "Draw values from a range", "Print -n values drawn from the given range.", &drawCommand{cfg: cfg}},
		{"check", "Chi-square uniformity check of an integer range",
			"Draw -n values from an integer range and test them against the uniform distribution.", &checkCommand{cfg: cfg}},
		{"bench", "Compare the per-draw cost of two integer ranges",
			"Time draws from [0, a-max] and [0, b-max] and report the confidence that A is faster.", &benchCommand{cfg: cfg}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return nil, err
		}
	}
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}
		if err := cfg.setupLogging(cfg.logOut); err != nil {
			return err
		}
		return command.Execute(args)
	}
	return parser, nil
}

func main() {
	cfg := config{out: os.Stdout, logOut: os.Stderr}
	parser, err := newParser(&cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := parser.Parse(); err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
