package lisp

// Load evaluates every top level form of data in the session environment,
// stopping at the first error. Definitions stay bound; main is never called.
func (l Lisp) Load(data string) error {
	forms, err := Multiparse(data)
	if err != nil {
		return err
	}
	for _, def := range forms {
		if _, err := l.EvalExpr(def); err != nil {
			return err
		}
	}
	return nil
}
