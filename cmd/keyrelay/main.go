// Command keyrelay sums the complexity of door codes typed through a chain
// of directional-pad relays.
//
// Usage:
//
//	keyrelay -i codes.txt              # 2 and 25 relays
//	keyrelay -i codes.txt -l 2,3,4     # custom relay counts
//	keyrelay -c keyrelay.yaml --skip-malformed --metrics-file out.prom
//
// One code per line; blank lines are ignored. "-" reads standard input.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/keyrelay/config"
	"github.com/katalvlaran/keyrelay/logging"
	"github.com/katalvlaran/keyrelay/metrics"
	"github.com/katalvlaran/keyrelay/relay"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "keyrelay: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, scores the input and prints one sum per relay count.
// Logs go to stderr; results go to stdout.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("keyrelay", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFile    string
		inputFile     string
		levels        []int
		workers       int
		logLevel      string
		skipMalformed bool
		metricsFile   string
	)
	fs.StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&inputFile, "input", "i", "-", "input file with one code per line (- for stdin)")
	fs.IntSliceVarP(&levels, "levels", "l", nil, "relay counts to score (default from config: 2,25)")
	fs.IntVarP(&workers, "workers", "w", 0, "concurrent scoring workers (0 = GOMAXPROCS)")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&skipMalformed, "skip-malformed", false, "skip malformed lines instead of aborting")
	fs.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if fs.Changed("levels") {
		cfg.Levels = levels
	}
	if fs.Changed("workers") {
		cfg.Workers = workers
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if fs.Changed("skip-malformed") {
		cfg.OnMalformed = relay.AbortOnMalformed.String()
		if skipMalformed {
			cfg.OnMalformed = relay.SkipMalformed.String()
		}
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = metricsFile
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewJSONLogger(stderr, cfg.Level()).With(logging.RunID(uuid.NewString()))

	lines, err := readLines(inputFile, stdin)
	if err != nil {
		return err
	}
	logger.Info("input loaded",
		logging.String("input", inputFile),
		logging.Int("sequences", len(lines)),
		logging.String("on_malformed", cfg.OnMalformed),
	)

	reg := metrics.NewRegistry()
	scorer := relay.NewScorer(
		relay.NewSolver(relay.WithObserver(reg)),
		relay.WithWorkers(cfg.Workers),
		relay.WithMalformedPolicy(cfg.Policy()),
		relay.WithLogger(logger),
	)

	reports, err := scorer.ScoreLevels(ctx, lines, cfg.Levels...)
	if err != nil {
		logger.Error("scoring failed", logging.Error(err))
		return err
	}
	for _, rep := range reports {
		fmt.Fprintf(stdout, "Complexity sum (%d relays): %d\n", rep.Levels, rep.Total)
	}

	if cfg.MetricsFile != "" {
		if err := reg.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Info("metrics written", logging.String("path", cfg.MetricsFile))
	}
	return nil
}

// readLines returns the non-blank lines of path, or of stdin for "-".
func readLines(path string, stdin io.Reader) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
