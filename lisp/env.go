package lisp

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// Env binds symbols to values and user defined functions.
// By default one Env is shared by every call in a run: parameters are bound
// by overwriting entries in the same table, so a nested call reusing a
// parameter name clobbers the caller's binding.
type Env struct {
	dict  map[Symbol]Value
	outer *Env
	opts  *options
}

type options struct {
	logger   *slog.Logger
	scoped   bool
	maxDepth int
	depth    int
}

type Option func(*options)

// WithLogger sets the logger used for debug output of definitions and calls.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithScopedCalls binds parameters in a fresh frame per call, chained to the
// environment the function was defined in.
func WithScopedCalls() Option {
	return func(o *options) { o.scoped = true }
}

// WithMaxDepth bounds the nesting depth of list evaluation. Without it, or
// with n <= 0, depth is limited only by the goroutine stack.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

func NewEnv(opts ...Option) *Env {
	o := &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Env{dict: map[Symbol]Value{}, opts: o}
}

func (e *Env) find(s Symbol) (*Env, bool) {
	if _, ok := e.dict[s]; ok {
		return e, true
	}
	if e.outer == nil {
		return nil, false
	}
	return e.outer.find(s)
}

func (e *Env) Lookup(s Symbol) (Value, bool) {
	found, ok := e.find(s)
	if !ok {
		return nil, false
	}
	return found.dict[s], true
}

func (e *Env) Bound(s Symbol) bool {
	_, ok := e.find(s)
	return ok
}

// Define binds s in this frame, overwriting any previous binding.
func (e *Env) Define(s Symbol, v Value) {
	e.dict[s] = v
}

// Names returns every bound symbol, sorted.
func (e *Env) Names() []Symbol {
	seen := map[Symbol]struct{}{}
	for env := e; env != nil; env = env.outer {
		for s := range env.dict {
			seen[s] = struct{}{}
		}
	}
	names := make([]Symbol, 0, len(seen))
	for s := range seen {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

// bindParams binds args to the parameters of proc. In the default mode this
// writes into e itself; with scoped calls a new frame is returned.
func (e *Env) bindParams(proc *Proc, args []Atom) *Env {
	target := e
	if e.opts.scoped {
		target = &Env{dict: make(map[Symbol]Value, len(args)), outer: proc.env, opts: e.opts}
	}
	for i, p := range proc.params {
		target.dict[p] = args[i]
	}
	return target
}

func (e *Env) enter() error {
	o := e.opts
	if o.maxDepth > 0 && o.depth >= o.maxDepth {
		return fmt.Errorf("%w (%d)", ErrDepthExceeded, o.maxDepth)
	}
	o.depth++
	return nil
}

func (e *Env) leave() {
	e.opts.depth--
}
