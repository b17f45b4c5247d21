package prelude

import (
	"errors"
	"testing"

	"github.com/Indy9000/lisper/lisp"
)

func TestPrelude(t *testing.T) {
	l := lisp.New(lisp.WithScopedCalls())
	if err := Load(l); err != nil {
		t.Fatal(err)
	}
	for i, tt := range []struct {
		input string
		want  string
	}{
		{input: "(abs -3)", want: "3"},
		{input: "(abs 2.5)", want: "2.5"},
		{input: "(min 4 2)", want: "2"},
		{input: "(max 4 2)", want: "4"},
		{input: "(square (abs -9))", want: "81"},
		{input: "(not true)", want: "false"},
		{input: "(not 0)", want: "true"},
		{input: "(zero? (- 2 2))", want: "true"},
		{input: "(gte 2 2)", want: "true"},
		{input: "(lte 3 2)", want: "false"},
		{input: "(max (min 1 5) (abs -4))", want: "4"},
	} {
		e, err := l.Eval(tt.input)
		if err != nil {
			t.Errorf("%d) eval error %v", i, err)
			continue
		}
		if got := e.String(); got != tt.want {
			t.Errorf("%d) got %s want %s", i, got, tt.want)
		}
	}
}

func TestPreludeSharedEnv(t *testing.T) {
	l := lisp.New()
	if err := Load(l); err != nil {
		t.Fatal(err)
	}
	if err := l.Load("(defun f (x) (+ (abs -5) x))"); err != nil {
		t.Fatal(err)
	}
	e, err := l.Eval("(+ (f 1) (square 2))")
	if err != nil {
		t.Fatal(err)
	}
	if got := e.String(); got != "10" {
		t.Errorf("got %s want 10", got)
	}
}

func TestPreludeLoadTwice(t *testing.T) {
	l := lisp.New()
	if err := Load(l); err != nil {
		t.Fatal(err)
	}
	if err := Load(l); !errors.Is(err, lisp.ErrRedefinition) {
		t.Errorf("got %v want %v", err, lisp.ErrRedefinition)
	}
}
