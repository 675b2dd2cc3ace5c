package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

// lineReader reads one line of player input after showing a prompt.
// ReadLine returns io.EOF when input ends or the player interrupts.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// newLineReader uses readline when stdin is a terminal and a plain scanner
// otherwise, so scripted games can be piped in.
func newLineReader(cfg *config.Config) (lineReader, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return newScannerReader(os.Stdin, cfg.OutputFile), nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Input.Prompt,
		HistoryFile:     cfg.Input.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          cfg.OutputFile,
	})
	if err != nil {
		return nil, fmt.Errorf("initialising readline: %w", err)
	}
	return &readlineReader{rl: rl}, nil
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", io.EOF
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

// scannerReader echoes the prompt to out and reads lines from in.
type scannerReader struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newScannerReader(in io.Reader, out io.Writer) *scannerReader {
	return &scannerReader{sc: bufio.NewScanner(in), out: out}
}

func (r *scannerReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", err
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := r.sc.Text()
	// Piped input is not echoed by a terminal.
	if _, err := fmt.Fprintln(r.out, line); err != nil {
		return "", err
	}
	return line, nil
}

func (r *scannerReader) Close() error {
	return nil
}
