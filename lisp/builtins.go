package lisp

// Operator tables are built once and never modified.

type arithmeticOp func(a, b float64) float64

type comparisonOp func(op Symbol, a, b Atom) (Atom, error)

type logicalOp func(a, b bool) bool

var arithmeticOps = map[Symbol]arithmeticOp{
	"+": add,
	"-": sub,
	"*": mul,
	"/": div,
}

var comparisonOps = map[Symbol]comparisonOp{
	"==": eq,
	"=":  eq,
	"!=": neq,
	">":  gt,
	"<":  lt,
}

var logicalOps = map[Symbol]logicalOp{
	"&&": and,
	"||": or,
}

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }
func div(a, b float64) float64 { return a / b }

func eq(op Symbol, a, b Atom) (Atom, error) {
	return NewBoolean(a == b), nil
}

func neq(op Symbol, a, b Atom) (Atom, error) {
	return NewBoolean(a != b), nil
}

func gt(op Symbol, a, b Atom) (Atom, error) {
	if err := numbers(op, a, b); err != nil {
		return Atom{}, err
	}
	return NewBoolean(a.AsNumber() > b.AsNumber()), nil
}

func lt(op Symbol, a, b Atom) (Atom, error) {
	if err := numbers(op, a, b); err != nil {
		return Atom{}, err
	}
	return NewBoolean(a.AsNumber() < b.AsNumber()), nil
}

func and(a, b bool) bool { return a && b }
func or(a, b bool) bool  { return a || b }

func numbers(op Symbol, atoms ...Atom) error {
	for _, a := range atoms {
		if !a.IsNumber() {
			return typeError(op, a)
		}
	}
	return nil
}
