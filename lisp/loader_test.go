package lisp

import (
	"errors"
	"testing"
)

func TestLoader(t *testing.T) {
	l := New()
	if err := l.Load("(defun r () 10) (defun main () (undefined))"); err != nil {
		t.Fatal(err)
	}

	for i, tt := range []struct {
		input string
		want  string
	}{
		{
			input: "(* 3 (* (r) (r)))",
			want:  "300",
		},
	} {
		e, err := l.Eval(tt.input)
		if err != nil {
			t.Errorf("%d) eval error %v", i, err)
		}
		got := e.String()
		if got != tt.want {
			t.Errorf("%d) got %s want %s", i, got, tt.want)
		}
	}
}

func TestLoaderStopsAtFirstError(t *testing.T) {
	l := New()
	err := l.Load("(defun a () 1) (+ 1) (defun b () 2)")
	if !errors.Is(err, ErrArity) {
		t.Fatalf("got %v want %v", err, ErrArity)
	}
	if !l.Env.Bound("a") || l.Env.Bound("b") {
		t.Errorf("got bindings %v", l.Env.Names())
	}
}
