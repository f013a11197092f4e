package lexer

import (
	"pycheck/internal/token"
)

// scanSymbol tries to match an operator or delimiter at the cursor using
// maximal munch: the longest known symbol wins. Returns ok=false when no
// known symbol starts here; the caller reports the invalid character.
func (lx *Lexer) scanSymbol(c *cursor) (token.Token, bool) {
	for n := token.MaxSymbolLen; n >= 1; n-- {
		if c.off+n > len(c.line) {
			continue
		}
		text := string(c.line[c.off : c.off+n])
		kind, ok := token.ClassifySymbol(text)
		if !ok {
			continue
		}
		pos := c.pos()
		c.off += n
		return token.Token{Kind: kind, Text: text, Pos: pos}, true
	}
	return token.Token{}, false
}
