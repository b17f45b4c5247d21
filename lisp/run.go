package lisp

const mainSymbol = "main"

// Run evaluates node in a fresh environment. If that defines a function
// called main, main is called without arguments and its result returned.
func Run(node Node) (Atom, error) {
	return RunEnv(NewEnv(), node)
}

// RunEnv evaluates nodes in order against env and then applies the same
// main rule as Run.
func RunEnv(env *Env, nodes ...Node) (Atom, error) {
	if env == nil {
		env = NewEnv()
	}
	var result Atom
	for _, n := range nodes {
		r, err := eval(env, n)
		if err != nil {
			return Atom{}, err
		}
		result = r
	}
	v, ok := env.Lookup(mainSymbol)
	if !ok {
		return result, nil
	}
	proc, ok := v.(*Proc)
	if !ok {
		return result, nil
	}
	return call(env, proc, nil)
}
