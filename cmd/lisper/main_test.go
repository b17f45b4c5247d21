package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Indy9000/lisper/config"
	"github.com/Indy9000/lisper/lisp"
)

func newTestLisp(t *testing.T, cfg config.Config) lisp.Lisp {
	t.Helper()
	var logs bytes.Buffer
	logger, err := newLogger(&logs, cfg)
	if err != nil {
		t.Fatal(err)
	}
	l, err := newLisp(cfg, logger)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func writeProgram(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.lisp")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunFile(t *testing.T) {
	for i, tt := range []struct {
		program string
		want    string
	}{
		{
			program: `(defun factorial (n) (if (== n 0) 1 (* n (factorial (- n 1)))))
(defun main () (factorial 5))
`,
			want: "120\n",
		},
		{
			program: "(+ 1 2)\n(* 6 7)\n",
			want:    "42\n",
		},
		{
			// no prelude by default, so programs may use its names
			program: "(defun max (a b) a) (defun main () (max 1 2))",
			want:    "1\n",
		},
	} {
		var out bytes.Buffer
		l := newTestLisp(t, config.Default())
		if err := runFile(&out, l, writeProgram(t, tt.program)); err != nil {
			t.Errorf("%d) run error %v", i, err)
			continue
		}
		if out.String() != tt.want {
			t.Errorf("%d) got %q want %q", i, out.String(), tt.want)
		}
	}
}

func TestRunFileError(t *testing.T) {
	var out bytes.Buffer
	l := newTestLisp(t, config.Default())
	path := writeProgram(t, "(defun main () (+ 1))")
	err := runFile(&out, l, path)
	if !errors.Is(err, lisp.ErrArity) {
		t.Fatalf("got %v want %v", err, lisp.ErrArity)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestRunFileMissing(t *testing.T) {
	l := newTestLisp(t, config.Default())
	err := runFile(&bytes.Buffer{}, l, filepath.Join(t.TempDir(), "absent.lisp"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v want %v", err, os.ErrNotExist)
	}
}

func TestNoPrelude(t *testing.T) {
	l := newTestLisp(t, config.Default())
	got, err := evalInput(l, "(square 3)")
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "square" {
		t.Errorf("got %s want square", got)
	}
}

func TestRunFileWithPrelude(t *testing.T) {
	cfg := config.Default()
	cfg.Prelude = true
	for i, tt := range []struct {
		program string
		want    string
	}{
		{
			program: "(defun main () (square (abs -4)))",
			want:    "16\n",
		},
		{
			// prelude helpers do not overwrite the caller's x
			program: "(defun f (x) (+ (abs -5) x)) (defun main () (f 1))",
			want:    "6\n",
		},
	} {
		var out bytes.Buffer
		l := newTestLisp(t, cfg)
		if err := runFile(&out, l, writeProgram(t, tt.program)); err != nil {
			t.Errorf("%d) run error %v", i, err)
			continue
		}
		if out.String() != tt.want {
			t.Errorf("%d) got %q want %q", i, out.String(), tt.want)
		}
	}
}

func TestRunFileRedefinesPrelude(t *testing.T) {
	cfg := config.Default()
	cfg.Prelude = true
	l := newTestLisp(t, cfg)
	err := runFile(&bytes.Buffer{}, l, writeProgram(t, "(defun max (a b) a) (defun main () (max 1 2))"))
	if !errors.Is(err, lisp.ErrRedefinition) {
		t.Errorf("got %v want %v", err, lisp.ErrRedefinition)
	}
}

func TestEvalInput(t *testing.T) {
	l := newTestLisp(t, config.Default())
	got, err := evalInput(l, "(defun inc (x) (+ x 1)) (inc 41)")
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "42" {
		t.Errorf("got %s want 42", got)
	}
}

func TestDepth(t *testing.T) {
	for i, tt := range []struct {
		input string
		want  int
	}{
		{input: "(+ 1 2)", want: 0},
		{input: "(defun f (x)", want: 1},
		{input: "(defun f (x)\n  (+ x", want: 2},
		{input: "(a))", want: -1},
	} {
		if got := depth(tt.input); got != tt.want {
			t.Errorf("%d) got %d want %d", i, got, tt.want)
		}
	}
}
