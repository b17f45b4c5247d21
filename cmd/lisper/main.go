package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/peterh/liner"

	"github.com/Indy9000/lisper/config"
	"github.com/Indy9000/lisper/lisp"
	"github.com/Indy9000/lisper/prelude"
)

func main() {
	configPath := flag.String("config", "lisper.yaml", "YAML config file")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error")
	scoped := flag.Bool("scoped", false, "bind parameters in a fresh frame per call")
	withPrelude := flag.Bool("prelude", false, "load the prelude helpers (abs, min, max, ...)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *scoped {
		cfg.ScopedCalls = true
	}
	if *withPrelude {
		cfg.Prelude = true
	}
	logger, err := newLogger(os.Stderr, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	l, err := newLisp(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flag.NArg() < 1 {
		os.Exit(startREPL(l, cfg))
	}
	if err := runFile(os.Stdout, l, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(slog.String("run", uuid.NewString())), nil
}

func newLisp(cfg config.Config, logger *slog.Logger) (lisp.Lisp, error) {
	opts := []lisp.Option{
		lisp.WithLogger(logger),
		lisp.WithMaxDepth(cfg.MaxDepth),
	}
	if cfg.ScopedCalls {
		opts = append(opts, lisp.WithScopedCalls())
	}
	l := lisp.New(opts...)
	if cfg.Prelude {
		if err := prelude.Load(l); err != nil {
			return l, err
		}
	}
	return l, nil
}

// parseFile slurps in the entire file and returns its top level forms.
func parseFile(filename string) ([]lisp.Node, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return lisp.Multiparse(string(b))
}

// runFile evaluates every form in the file, calls main if the file defined
// one, and prints the result.
func runFile(w io.Writer, l lisp.Lisp, filename string) error {
	forms, err := parseFile(filename)
	if err != nil {
		return err
	}
	result, err := lisp.RunEnv(l.Env, forms...)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	fmt.Fprintln(w, result)
	return nil
}

const helpText = `REPL commands:
  :env     List bound symbols
  :help    Show this help
  :quit    Exit the REPL`

func startREPL(l lisp.Lisp, cfg config.Config) int {
	fmt.Println("lisper REPL. Ctrl+C cancels input, Ctrl+D exits. Type :help for commands.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryFile
	if !filepath.IsAbs(histPath) {
		if home, err := os.UserHomeDir(); err == nil {
			histPath = filepath.Join(home, histPath)
		}
	}
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

	for {
		code, ok := readForm(ln, cfg.Prompt, config.DefaultContinue)
		if !ok {
			fmt.Println()
			return 0
		}
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			switch code {
			case ":quit":
				return 0
			case ":env":
				fmt.Println(strings.Join(l.Env.Names(), " "))
			case ":help":
				fmt.Println(helpText)
			default:
				fmt.Println("unknown command. Type :help for commands.")
			}
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		result, err := evalInput(l, code)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(result)
	}
}

// evalInput evaluates every form on the input and returns the last value.
func evalInput(l lisp.Lisp, code string) (lisp.Atom, error) {
	forms, err := lisp.Multiparse(code)
	if err != nil {
		return lisp.Atom{}, err
	}
	var result lisp.Atom
	for _, f := range forms {
		result, err = l.EvalExpr(f)
		if err != nil {
			return lisp.Atom{}, err
		}
	}
	return result, nil
}

// readForm keeps prompting until the parentheses read so far are balanced.
func readForm(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if depth(b.String()) <= 0 {
			return b.String(), true
		}
	}
}

// depth returns how many lists are still open at the end of src.
func depth(src string) int {
	d := 0
	for _, r := range src {
		switch r {
		case '(':
			d++
		case ')':
			d--
		}
	}
	return d
}
