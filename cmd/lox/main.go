package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/driver"
	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/runtime"
)

const cliToolVersion = "lox 0.1.0-dev"

// Exit codes follow sysexits(3).
const (
	exitOK       = 0
	exitUsage    = 1
	exitDataErr  = 65
	exitSoftware = 70
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	stdinIsTerminal  = func() bool { return isTerminal(os.Stdin) }
	stderrIsTerminal = func() bool { return isTerminal(os.Stderr) }
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	configPath, args, err := extractConfigFlag(args)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUsage
	}

	if len(args) == 0 {
		if stdinIsTerminal() {
			return runRepl(configPath)
		}
		return runStdin(configPath)
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage(stdout)
		return exitOK
	case "--version", "-V", "version":
		fmt.Fprintln(stdout, cliToolVersion)
		return exitOK
	case "run":
		return runEntry(args[1:], configPath)
	case "repl":
		if len(args) > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
			return exitUsage
		}
		return runRepl(configPath)
	default:
		if strings.HasPrefix(args[0], "-") {
			fmt.Fprintf(stderr, "unknown flag %s\n", args[0])
			printUsage(stderr)
			return exitUsage
		}
		return runEntry(args, configPath)
	}
}

// extractConfigFlag pulls `--config <path>` / `--config=<path>` out of args.
func extractConfigFlag(args []string) (string, []string, error) {
	var path string
	rest := make([]string, 0, len(args))
	for idx := 0; idx < len(args); idx++ {
		arg := args[idx]
		switch {
		case arg == "--config":
			if idx+1 >= len(args) {
				return "", nil, fmt.Errorf("--config requires a path")
			}
			path = args[idx+1]
			idx++
		case strings.HasPrefix(arg, "--config="):
			path = strings.TrimPrefix(arg, "--config=")
			if path == "" {
				return "", nil, fmt.Errorf("--config requires a path")
			}
		default:
			rest = append(rest, arg)
		}
	}
	return path, rest, nil
}

func runEntry(args []string, configPath string) int {
	if len(args) > 1 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return exitUsage
	}

	var entryPath string
	var cfg *driver.Config
	var err error
	if len(args) == 0 {
		cfg, err = driver.ResolveConfig(configPath, ".")
		if err != nil {
			fmt.Fprintf(stderr, "failed to load config: %v\n", err)
			return exitUsage
		}
		entryPath = cfg.EntryPath()
		if entryPath == "" {
			fmt.Fprintf(stderr, "lox run requires a script path (no entry in %s)\n", driver.ConfigFileName)
			return exitUsage
		}
	} else {
		entryPath = args[0]
		cfg, err = driver.ResolveConfig(configPath, filepath.Dir(entryPath))
		if err != nil {
			fmt.Fprintf(stderr, "failed to load config: %v\n", err)
			return exitUsage
		}
	}

	program, err := driver.LoadFile(entryPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load program: %v\n", err)
		return exitUsage
	}
	return execute(program, cfg)
}

func runStdin(configPath string) int {
	cfg, err := driver.ResolveConfig(configPath, ".")
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return exitUsage
	}
	program, err := driver.LoadReader("<stdin>", stdin)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load program: %v\n", err)
		return exitUsage
	}
	return execute(program, cfg)
}

// execute runs every statement that parsed, even when others did not, and
// maps the outcome onto an exit code. Source diagnostics win over runtime
// failures.
func execute(program *driver.Program, cfg *driver.Config) int {
	rep := newReporter(stderr, cfg.Color)
	if program.Err != nil {
		for _, diag := range program.Err.Diagnostics() {
			rep.report(diag)
		}
	}

	interp := newInterpreter(cfg, rep, cfg.Echo)
	results := interp.Run(program.AST)

	switch {
	case program.Err != nil:
		return exitDataErr
	case interpreter.Failed(results):
		return exitSoftware
	default:
		return exitOK
	}
}

func newInterpreter(cfg *driver.Config, rep *reporter, echo bool) *interpreter.Interpreter {
	opts := append(cfg.InterpreterOptions(),
		interpreter.WithStdout(stdout),
		interpreter.WithStderr(stderr),
		interpreter.WithErrorHandler(rep.report),
	)
	if echo {
		opts = append(opts, interpreter.WithResultHandler(func(res interpreter.StatementResult) {
			echoResult(stdout, res)
		}))
	}
	return interpreter.New(opts...)
}

// echoResult prints the value of a successful expression statement unless
// it is nil.
func echoResult(w io.Writer, res interpreter.StatementResult) {
	if res.Err != nil || res.Value == nil {
		return
	}
	if _, ok := res.Statement.(*ast.ExpressionStatement); !ok {
		return
	}
	if _, isNil := res.Value.(runtime.NilValue); isNil {
		return
	}
	fmt.Fprintln(w, interpreter.Stringify(res.Value))
}

// reporter renders diagnostics, in red when colour is enabled.
type reporter struct {
	out   io.Writer
	paint *color.Color
}

func newReporter(w io.Writer, mode driver.ColorMode) *reporter {
	paint := color.New(color.FgRed)
	switch mode {
	case driver.ColorAlways:
		paint.EnableColor()
	case driver.ColorNever:
		paint.DisableColor()
	default:
		if stderrIsTerminal() {
			paint.EnableColor()
		} else {
			paint.DisableColor()
		}
	}
	return &reporter{out: w, paint: paint}
}

func (r *reporter) report(err error) {
	r.paint.Fprintln(r.out, err.Error())
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  lox [--config <lox.yml>]               start a REPL (or run stdin when piped)")
	fmt.Fprintln(w, "  lox [--config <lox.yml>] <file.lox>    run a script")
	fmt.Fprintln(w, "  lox run [<file.lox>]                   run a script or the configured entry")
	fmt.Fprintln(w, "  lox repl                               start a REPL")
	fmt.Fprintln(w, "  lox --version                          print the version")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Exit codes: 0 ok, 65 scan/parse errors, 70 runtime errors, 1 usage or I/O errors.")
}
