package lisp

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax        = errors.New("syntax error")
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrArity         = errors.New("wrong number of arguments")
	ErrType          = errors.New("type error")
	ErrRedefinition  = errors.New("redefinition")
	ErrMalformedForm = errors.New("malformed form")
	ErrDepthExceeded = errors.New("maximum recursion depth exceeded")
)

func arityError(op Symbol, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrArity, op, fmt.Sprintf(format, args...))
}

func typeError(op Symbol, a Atom) error {
	return fmt.Errorf("%w: %s expects numbers, got %s", ErrType, op, a)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedForm, fmt.Sprintf(format, args...))
}
