package lexer

import (
	"bytes"
	"fmt"

	"pycheck/internal/diag"
	"pycheck/internal/token"
)

// scanString extracts a string literal starting at the cursor. Triple-quoted
// literals are detected by a 3-character lookahead; the scanner is
// line-bound, so a triple quote that does not close on the same line is an
// error at the opening position. On failure the cursor moves to the end of
// the line and no token is produced.
func (lx *Lexer) scanString(c *cursor) (token.Token, bool) {
	start := c.mark()
	quote := c.peek()

	triple := string([]byte{quote, quote, quote})
	if c.hasPrefix(triple) {
		return lx.scanTripleString(c, triple, start)
	}

	c.bump() // открывающая кавычка
	for !c.eof() {
		b := c.peek()
		if b == quote && c.line[c.off-1] != '\\' {
			c.bump()
			return token.Token{
				Kind: token.String,
				Text: c.textFrom(start),
				Pos:  c.posAt(start),
			}, true
		}
		c.bump()
	}

	// конец строки внутри литерала
	pos := c.posAt(start)
	lx.errLex(diag.LexUnterminatedString, pos,
		"unterminated string literal",
		fmt.Sprintf("close the string with %s", string(quote)))
	c.toLineEnd()
	return token.Token{}, false
}

func (lx *Lexer) scanTripleString(c *cursor, triple string, start mark) (token.Token, bool) {
	body := c.line[c.off+3:]
	end := bytes.Index(body, []byte(triple))
	if end < 0 {
		pos := c.posAt(start)
		lx.errLex(diag.LexUnterminatedString, pos,
			"unterminated triple-quoted string",
			fmt.Sprintf("close the string with %s", triple))
		c.toLineEnd()
		return token.Token{}, false
	}

	c.off += 3 + end + 3
	return token.Token{
		Kind: token.String,
		Text: c.textFrom(start),
		Pos:  c.posAt(start),
	}, true
}
