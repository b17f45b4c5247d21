// Package prelude defines a few helper functions in lisp itself.
package prelude

import (
	_ "embed"
	"fmt"

	"github.com/Indy9000/lisper/lisp"
)

//go:embed prelude.lisp
var prelude string

// Load evaluates the prelude in l's environment. The helpers become bound
// names, so a program loaded afterwards cannot define abs, min, max, square,
// not, zero?, gte or lte itself; loading the prelude twice fails the same way
// with lisp.ErrRedefinition. Parameters are spelled %x, %a and %b so that in
// the default shared environment a helper call does not overwrite a caller's
// x, a or b.
func Load(l lisp.Lisp) error {
	if err := l.Load(prelude); err != nil {
		return fmt.Errorf("prelude: %w", err)
	}
	return nil
}
