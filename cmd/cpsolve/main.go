// Command cpsolve runs the multi-test-case template over a file or stdin:
// it reads t cases of n integers and prints the sum of each case.
//
//	cpsolve < input.txt
//	cpsolve -in input.txt -out answer.txt
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/cpkit/driver"
)

// Config holds the command-line options.
type Config struct {
	inFile, outFile string
	logLevel        string
}

// RegisterFlags binds the options to f.
func (c *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&c.inFile, "in", "", "file to read (default stdin)")
	f.StringVar(&c.outFile, "out", "", "file to write (default stdout)")
	f.StringVar(&c.logLevel, "log.level", "info", "log level: debug, info, warn, error")
}

// Validate reports unusable option combinations.
func (c *Config) Validate() error {
	if c.inFile != "" && c.inFile == c.outFile {
		return fmt.Errorf("in-file and out-file must differ, both are %q", c.inFile)
	}
	if _, err := parseLevel(c.logLevel); err != nil {
		return err
	}
	return nil
}

func parseLevel(s string) (level.Option, error) {
	switch s {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q", s)
	}
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	var config Config
	config.RegisterFlags(flag.CommandLine)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		level.Error(logger).Log("msg", "parsing flags", "err", err)
		os.Exit(2)
	}
	if err := config.Validate(); err != nil {
		level.Error(logger).Log("msg", "invalid config", "err", err)
		os.Exit(2)
	}
	lvl, _ := parseLevel(config.logLevel)
	logger = level.NewFilter(logger, lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config, logger); err != nil {
		level.Error(logger).Log("msg", "cpsolve failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, config Config, logger log.Logger) error {
	var in io.Reader = os.Stdin
	if config.inFile != "" {
		f, err := os.Open(config.inFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if config.outFile != "" {
		f, err := os.Create(config.outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	level.Debug(logger).Log("msg", "solving", "in", nameOr(config.inFile, "stdin"), "out", nameOr(config.outFile, "stdout"))

	return driver.Run(ctx, in, out, driver.Sum)
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
