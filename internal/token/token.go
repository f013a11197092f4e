package token

import (
	"pycheck/internal/source"
)

// Token represents a single source token with its location.
// Tokens are immutable: created by the scanner, never mutated afterwards.
type Token struct {
	Kind Kind
	Text string
	Pos  source.Pos
}

// IsKw reports whether the token is the given reserved word.
func (t Token) IsKw(word string) bool {
	return t.Kind == Keyword && t.Text == word
}

// IsText reports whether the token is an operator or delimiter with the given text.
func (t Token) IsText(text string) bool {
	return (t.Kind == Operator || t.Kind == Delimiter) && t.Text == text
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// EndCol returns the column one past the last character of the token.
func (t Token) EndCol() uint32 {
	return t.Pos.Col + uint32(len(t.Text))
}
