package lisp

import (
	"math"
	"strconv"
	"strings"
)

type Symbol = string

type atomKind uint8

const (
	numberKind atomKind = iota
	symbolKind
	booleanKind
)

// Node is either an Atom or a List.
type Node interface {
	node()
	String() string
}

// Value is anything a symbol can be bound to in an Env:
// an Atom, a List or a *Proc.
type Value interface {
	value()
}

// Atom holds exactly one of a number, a symbol or a boolean.
type Atom struct {
	kind atomKind
	num  float64
	sym  string
	b    bool
}

func (Atom) node()  {}
func (Atom) value() {}

func NewNumber(n float64) Atom { return Atom{kind: numberKind, num: n} }
func NewSymbol(s string) Atom  { return Atom{kind: symbolKind, sym: s} }
func NewBoolean(b bool) Atom   { return Atom{kind: booleanKind, b: b} }

func (a Atom) IsNumber() bool  { return a.kind == numberKind }
func (a Atom) IsSymbol() bool  { return a.kind == symbolKind }
func (a Atom) IsBoolean() bool { return a.kind == booleanKind }

// IsQuoted reports whether a is a symbol written with a leading apostrophe.
// Quoted symbols evaluate to themselves.
func (a Atom) IsQuoted() bool {
	return a.kind == symbolKind && strings.HasPrefix(a.sym, "'")
}

func (a Atom) AsNumber() float64 {
	if a.kind != numberKind {
		panic("not a number")
	}
	return a.num
}

func (a Atom) AsSymbol() Symbol {
	if a.kind != symbolKind {
		panic("not a symbol")
	}
	return a.sym
}

func (a Atom) AsBoolean() bool {
	if a.kind != booleanKind {
		panic("not a boolean")
	}
	return a.b
}

func (a Atom) String() string {
	switch a.kind {
	case numberKind:
		return strconv.FormatFloat(a.num, 'f', -1, 64)
	case booleanKind:
		return strconv.FormatBool(a.b)
	default:
		return a.sym
	}
}

// List is an ordered sequence of nodes. It is both literal data and
// an executable form; evaluation decides which.
type List []Node

func (List) node()  {}
func (List) value() {}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, n := range l {
		parts[i] = n.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Proc is a user defined function created by defun/defn.
type Proc struct {
	name   Symbol
	params []Symbol
	body   []Node
	env    *Env
}

func (*Proc) value() {}

func (p *Proc) Name() Symbol { return p.name }

func (p *Proc) String() string {
	body := make([]string, len(p.body))
	for i, b := range p.body {
		body[i] = b.String()
	}
	return "(defun " + p.name + " (" + strings.Join(p.params, " ") + ") " + strings.Join(body, " ") + ")"
}

// Equal compares two nodes structurally. Atoms of different kinds are never equal.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Atom:
		y, ok := b.(Atom)
		return ok && x == y
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Truthy decides which branch of an if is taken.
func Truthy(a Atom) bool {
	switch {
	case a.IsBoolean():
		return a.AsBoolean()
	case a.IsNumber():
		n := a.AsNumber()
		return n != 0 && !math.IsNaN(n)
	default:
		return true
	}
}
