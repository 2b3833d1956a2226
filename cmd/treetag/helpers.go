package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"treetag/internal/config"
)

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// gatherTokens collects input tokens from argv, a file, or stdin, in that
// priority order. Tokens are whitespace-separated; newlines never survive
// into a token.
func gatherTokens(args []string, inputPath string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if inputPath != "" && inputPath != "-" {
		expanded, err := config.ExpandPath(inputPath)
		if err != nil {
			return nil, err
		}
		raw, err := os.ReadFile(expanded)
		if err != nil {
			return nil, fmt.Errorf("read input file: %w", err)
		}
		return strings.Fields(string(raw)), nil
	}
	if inputPath == "" && stdinIsTerminal() {
		return nil, errors.New("no input: pass tokens as arguments, --input FILE, or pipe text on stdin")
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return strings.Fields(string(raw)), nil
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
