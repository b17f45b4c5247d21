package lisp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	listOpen  = '('
	listClose = ')'
)

func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// ParseList parses a single parenthesized form.
// Unbalanced parentheses are not reported: a missing ')' closes at the end
// of input and anything after a surplus ')' is ignored.
func ParseList(program string) (List, error) {
	if len(program) == 0 {
		return nil, fmt.Errorf("%w: expected a valid string", ErrSyntax)
	}
	program = strings.TrimSpace(program)
	if !strings.HasPrefix(program, string(listOpen)) {
		return nil, fmt.Errorf("%w: starting ( not found", ErrSyntax)
	}
	outer, _, err := parseList(ToChars(program), 0)
	if err != nil {
		return nil, err
	}
	l, ok := outer[0].(List)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list, got %s", ErrSyntax, outer[0])
	}
	return l, nil
}

// Multiparse returns every top level form in program, in order.
func Multiparse(program string) ([]Node, error) {
	chars := ToChars(program)
	if unbalanced(chars) {
		return nil, fmt.Errorf("%w: unexpected ')'", ErrSyntax)
	}
	outer, _, err := parseList(chars, 0)
	if err != nil {
		return nil, err
	}
	return []Node(outer), nil
}

// unbalanced reports whether chars close more lists than they open.
func unbalanced(chars []rune) bool {
	depth := 0
	for _, r := range chars {
		switch r {
		case listOpen:
			depth++
		case listClose:
			depth--
			if depth < 0 {
				return true
			}
		}
	}
	return false
}

// parseList consumes chars from i up to and including the ')' that closes
// the current list and returns the index just past it.
func parseList(chars []rune, i int) (List, int, error) {
	list := List{}
	start := -1
	flush := func() error {
		if start == -1 {
			return nil
		}
		a, err := ParseAtom(string(chars[start:i]))
		if err != nil {
			return err
		}
		list = append(list, a)
		start = -1
		return nil
	}
	for i < len(chars) {
		r := chars[i]
		switch {
		case r == listClose:
			if err := flush(); err != nil {
				return nil, 0, err
			}
			return list, i + 1, nil
		case r == listOpen:
			if err := flush(); err != nil {
				return nil, 0, err
			}
			sub, next, err := parseList(chars, i+1)
			if err != nil {
				return nil, 0, err
			}
			list = append(list, sub)
			i = next
			continue
		case isDelimiter(r):
			if err := flush(); err != nil {
				return nil, 0, err
			}
		default:
			if start == -1 {
				start = i
			}
		}
		i++
	}
	if err := flush(); err != nil {
		return nil, 0, err
	}
	return list, i, nil
}

// ParseAtom turns a single token into a number, a boolean or a symbol.
func ParseAtom(token string) (Atom, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Atom{}, fmt.Errorf("%w: empty atom", ErrInvalidSymbol)
	}
	if n, err := strconv.ParseFloat(token, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return NewNumber(n), nil
	}
	switch token {
	case "true":
		return NewBoolean(true), nil
	case "false":
		return NewBoolean(false), nil
	}
	return NewSymbol(token), nil
}
