package lexer

import (
	"regexp"

	"pycheck/internal/token"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// scanIdent extracts an identifier and classifies it against the reserved
// word table.
func (lx *Lexer) scanIdent(c *cursor) (token.Token, bool) {
	start := c.mark()
	for !c.eof() && isIdentContinueByte(c.peek()) {
		c.bump()
	}

	text := c.textFrom(start)
	if !identPattern.MatchString(text) {
		// недостижимо при ASCII-консьюминге выше, но шаблон — часть контракта
		return token.Token{}, false
	}

	kind := token.Ident
	if token.IsKeyword(text) {
		kind = token.Keyword
	}
	return token.Token{Kind: kind, Text: text, Pos: c.posAt(start)}, true
}
