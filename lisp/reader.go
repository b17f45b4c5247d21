package lisp

// ToChars splits text into unicode code points so the parser can index
// characters rather than bytes.
func ToChars(s string) []rune {
	return []rune(s)
}
