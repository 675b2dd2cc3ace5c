// chess is an interactive two-player chess game for the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmatch-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := run(cfg, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run opens the log file, if one is named, then validates the configuration
// and plays. The log file is closed before run returns.
func run(cfg *config.Config, logPath string) error {
	if logPath != "" {
		file, err := openLogFile(logPath)
		if err != nil {
			return err
		}
		defer file.Close() //nolint:errcheck // cleanup on exit
		cfg.LogFile = file
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	return play(cfg)
}

// play sets up the match and input, then runs the session to completion.
func play(cfg *config.Config) error {
	logger := log.New(cfg.LogWriter(), "", log.LstdFlags)

	match, err := newMatch(cfg, logger)
	if err != nil {
		return fmt.Errorf("setting up match: %w", err)
	}

	in, err := newLineReader(cfg)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // cleanup on exit

	return newSession(cfg, match, in, logger).run()
}

// openLogFile opens path for appending, creating it if needed.
func openLogFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return file, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves:\n%s", helpText)
}
