package lisp

import (
	"fmt"
	"log/slog"
)

// Eval evaluates node against env. A nil env evaluates in a fresh one.
func Eval(node Node, env *Env) (Atom, error) {
	if env == nil {
		env = NewEnv()
	}
	return eval(env, node)
}

func eval(env *Env, node Node) (Atom, error) {
	switch n := node.(type) {
	case Atom:
		return evalAtom(env, n), nil
	case List:
		if err := env.enter(); err != nil {
			return Atom{}, err
		}
		defer env.leave()
		return evalList(env, n)
	}
	return Atom{}, malformed("cannot evaluate %v", node)
}

// evalAtom never fails: numbers, booleans and quoted symbols evaluate to
// themselves, and a symbol without an atom binding evaluates to its own name.
func evalAtom(env *Env, a Atom) Atom {
	if !a.IsSymbol() || a.IsQuoted() {
		return a
	}
	if v, ok := env.Lookup(a.AsSymbol()); ok {
		if bound, ok := v.(Atom); ok {
			return bound
		}
	}
	return a
}

func evalList(env *Env, l List) (Atom, error) {
	if len(l) == 0 {
		return NewNumber(0), nil
	}
	head, ok := l[0].(Atom)
	if !ok {
		return Atom{}, malformed("expected atom at the start of list, got %s", l[0])
	}
	args := l[1:]
	if !head.IsSymbol() {
		return head, nil
	}
	s := head.AsSymbol()
	if op, ok := arithmeticOps[s]; ok {
		return evalArithmetic(env, s, op, args)
	}
	if op, ok := comparisonOps[s]; ok {
		return evalComparison(env, s, op, args)
	}
	if op, ok := logicalOps[s]; ok {
		return evalLogical(env, s, op, args)
	}
	switch s {
	case "if":
		return evalIf(env, args)
	case "defun", "defn":
		return evalDefun(env, s, args)
	}
	if v, ok := env.Lookup(s); ok {
		switch b := v.(type) {
		case *Proc:
			evaluated, err := evalArgs(env, args)
			if err != nil {
				return Atom{}, err
			}
			return call(env, b, evaluated)
		case Atom:
			return b, nil
		}
	}
	// unknown operator: the call evaluates to its own name
	return head, nil
}

func evalArgs(env *Env, args List) ([]Atom, error) {
	evaluated := make([]Atom, len(args))
	for i, arg := range args {
		a, err := eval(env, arg)
		if err != nil {
			return nil, err
		}
		evaluated[i] = a
	}
	return evaluated, nil
}

func evalArithmetic(env *Env, s Symbol, op arithmeticOp, args List) (Atom, error) {
	evaluated, err := evalArgs(env, args)
	if err != nil {
		return Atom{}, err
	}
	if len(evaluated) < 2 {
		return Atom{}, arityError(s, "needs 2 or more arguments, got %d", len(evaluated))
	}
	if err := numbers(s, evaluated...); err != nil {
		return Atom{}, err
	}
	acc := evaluated[0].AsNumber()
	for _, a := range evaluated[1:] {
		acc = op(acc, a.AsNumber())
	}
	return NewNumber(acc), nil
}

func evalComparison(env *Env, s Symbol, op comparisonOp, args List) (Atom, error) {
	if len(args) != 2 {
		return Atom{}, arityError(s, "needs 2 arguments, got %d", len(args))
	}
	evaluated, err := evalArgs(env, args)
	if err != nil {
		return Atom{}, err
	}
	return op(s, evaluated[0], evaluated[1])
}

// evalLogical always evaluates both operands.
func evalLogical(env *Env, s Symbol, op logicalOp, args List) (Atom, error) {
	if len(args) != 2 {
		return Atom{}, arityError(s, "needs 2 arguments, got %d", len(args))
	}
	evaluated, err := evalArgs(env, args)
	if err != nil {
		return Atom{}, err
	}
	return NewBoolean(op(Truthy(evaluated[0]), Truthy(evaluated[1]))), nil
}

func evalIf(env *Env, args List) (Atom, error) {
	if len(args) != 3 {
		return Atom{}, arityError("if", "needs a test and two branches, got %d arguments", len(args))
	}
	test, err := eval(env, args[0])
	if err != nil {
		return Atom{}, err
	}
	if Truthy(test) {
		return eval(env, args[1])
	}
	return eval(env, args[2])
}

func evalDefun(env *Env, s Symbol, args List) (Atom, error) {
	if len(args) < 3 {
		return Atom{}, malformed("%s needs a name, a parameter list and a body", s)
	}
	name, ok := args[0].(Atom)
	if !ok || !name.IsSymbol() {
		return Atom{}, malformed("%s name must be a symbol, got %s", s, args[0])
	}
	fn := name.AsSymbol()
	plist, ok := args[1].(List)
	if !ok {
		return Atom{}, malformed("%s %s: expected parameter list, got %s", s, fn, args[1])
	}
	params := make([]Symbol, len(plist))
	for i, p := range plist {
		pa, ok := p.(Atom)
		if !ok || !pa.IsSymbol() {
			return Atom{}, malformed("%s %s: parameter must be a symbol, got %s", s, fn, p)
		}
		params[i] = pa.AsSymbol()
	}
	if env.Bound(fn) {
		return Atom{}, fmt.Errorf("%w: %s is already defined", ErrRedefinition, fn)
	}
	env.Define(fn, &Proc{
		name:   fn,
		params: params,
		body:   []Node(args[2:]),
		env:    env,
	})
	env.opts.logger.Debug("define function",
		slog.String("function", fn),
		slog.Int("parameter-count", len(params)))
	return NewBoolean(true), nil
}

func call(env *Env, proc *Proc, args []Atom) (Atom, error) {
	if len(args) != len(proc.params) {
		return Atom{}, arityError(proc.Name(), "expects %d arguments, got %d", len(proc.params), len(args))
	}
	env.opts.logger.Debug("function call",
		slog.String("function", proc.Name()),
		slog.Int("argument-count", len(args)))
	frame := env.bindParams(proc, args)
	var result Atom
	for _, expr := range proc.body {
		r, err := eval(frame, expr)
		if err != nil {
			return Atom{}, err
		}
		result = r
	}
	return result, nil
}
