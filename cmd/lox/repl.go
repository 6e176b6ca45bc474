package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"lox/interpreter-go/pkg/driver"
	"lox/interpreter-go/pkg/parser"
)

const (
	promptMain     = "> "
	promptCont     = "... "
	defaultHistory = ".lox_history"
)

// lineReader is the part of *liner.State the REPL loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func runRepl(configPath string) int {
	cfg, err := driver.ResolveConfig(configPath, ".")
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return exitUsage
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			histPath = filepath.Join(home, defaultHistory)
		}
	}
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintf(stdout, "%s (Ctrl-D to exit)\n", cliToolVersion)
	return replLoop(ln, cfg)
}

// replLoop evaluates one input at a time against a persistent interpreter.
// Expression results are always echoed.
func replLoop(ln lineReader, cfg *driver.Config) int {
	rep := newReporter(stderr, cfg.Color)
	interp := newInterpreter(cfg, rep, true)
	for {
		src, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return exitOK
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		program := driver.ParseSource("<repl>", src)
		if program.Err != nil {
			for _, diag := range program.Err.Diagnostics() {
				rep.report(diag)
			}
		}
		interp.Run(program.AST)
	}
}

// readInput keeps prompting while the accumulated source ends in an
// incomplete construct.
func readInput(ln lineReader) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			fmt.Fprintf(stderr, "failed to read input: %v\n", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" || !incomplete(src) {
			return src, true
		}
	}
}

// incomplete reports whether src only failed because input ended early.
func incomplete(src string) bool {
	program := driver.ParseSource("", src)
	if program.Err == nil || len(program.Err.ScanErrors) > 0 {
		return false
	}
	for _, err := range program.Err.ParseErrors {
		if err.Kind != parser.ErrUnexpectedEOF {
			return false
		}
	}
	return true
}
