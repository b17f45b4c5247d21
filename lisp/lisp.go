package lisp

// Lisp keeps one environment alive across calls, the way a REPL session does.
type Lisp struct {
	Env *Env
}

func New(opts ...Option) Lisp {
	return Lisp{Env: NewEnv(opts...)}
}

// Eval parses a single form and evaluates it in the session environment.
func (l Lisp) Eval(input string) (Atom, error) {
	form, err := ParseList(input)
	if err != nil {
		return Atom{}, err
	}
	return l.EvalExpr(form)
}

func (l Lisp) EvalExpr(node Node) (Atom, error) {
	return eval(l.Env, node)
}

// Run evaluates every form in program and then calls main if one was defined.
func (l Lisp) Run(program string) (Atom, error) {
	forms, err := Multiparse(program)
	if err != nil {
		return Atom{}, err
	}
	return RunEnv(l.Env, forms...)
}
