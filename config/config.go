// Package config loads the settings of the lisper command.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrompt      = "lisper> "
	DefaultContinue    = "...     "
	DefaultHistoryFile = ".lisper_history"
	DefaultMaxDepth    = 10000
)

// Config holds the command settings. Prelude is off by default: the prelude
// shares the program's environment and claims names such as abs and max.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	LogLevel    string `yaml:"log_level"`
	MaxDepth    int    `yaml:"max_depth"`
	ScopedCalls bool   `yaml:"scoped_calls"`
	Prelude     bool   `yaml:"prelude"`
}

// ValidationError collects every problem found in a config file.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config: %s is invalid:", e.Path)
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

func Default() Config {
	return Config{
		Prompt:      DefaultPrompt,
		HistoryFile: DefaultHistoryFile,
		LogLevel:    "warn",
		MaxDepth:    DefaultMaxDepth,
	}
}

// Load reads a YAML config file. Fields missing from the file keep their
// defaults and a missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	return decode(file, path)
}

func decode(r io.Reader, path string) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate(path string) error {
	errs := ValidationError{Path: path}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs.Issues = append(errs.Issues, err.Error())
	}
	if c.MaxDepth < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_depth must not be negative, got %d", c.MaxDepth))
	}
	if strings.TrimSpace(c.Prompt) == "" {
		errs.Issues = append(errs.Issues, "prompt must not be empty")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to their slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
