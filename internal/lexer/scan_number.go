package lexer

import (
	"fmt"
	"regexp"
	"strings"

	"pycheck/internal/diag"
	"pycheck/internal/token"
)

// Валидирующие шаблоны числовых литералов. Применяются к лексеме уже без
// '_' разделителей.
var (
	intPattern   = regexp.MustCompile(`^[+-]?(?:0[bB][01]+|0[oO][0-7]+|0[xX][0-9a-fA-F]+|[0-9]+)$`)
	floatPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
)

// scanNumber extracts a numeric literal. '_' digit-group separators are
// consumed but stripped from the token text. A base prefix with no digits
// and any form rejected by the validating pattern report a lexical error
// and produce no token.
func (lx *Lexer) scanNumber(c *cursor) (token.Token, bool) {
	start := c.mark()
	var sb strings.Builder

	// необязательный знак
	if c.peek() == '+' || c.peek() == '-' {
		sb.WriteByte(c.bump())
	}

	// специальные префиксы 0b / 0o / 0x
	if c.peek() == '0' {
		switch c.peekAt(1) {
		case 'b', 'B':
			return lx.scanPrefixed(c, start, &sb, "binary", func(b byte) bool {
				return b == '0' || b == '1'
			})
		case 'o', 'O':
			return lx.scanPrefixed(c, start, &sb, "octal", func(b byte) bool {
				return b >= '0' && b <= '7'
			})
		case 'x', 'X':
			return lx.scanPrefixed(c, start, &sb, "hexadecimal", isHex)
		}
	}

	hasDot := false
	hasExp := false
	for !c.eof() {
		b := c.peek()
		switch {
		case isDec(b):
			sb.WriteByte(c.bump())
		case b == '.' && !hasDot && !hasExp:
			hasDot = true
			sb.WriteByte(c.bump())
		case (b == 'e' || b == 'E') && !hasExp:
			hasExp = true
			sb.WriteByte(c.bump())
			if c.peek() == '+' || c.peek() == '-' {
				sb.WriteByte(c.bump())
			}
		case b == '_':
			// разделитель групп цифр: съедаем, в текст не кладём
			c.bump()
		default:
			goto validate
		}
	}

validate:
	text := sb.String()
	if hasDot || hasExp {
		if !floatPattern.MatchString(text) {
			lx.errLex(diag.LexBadNumber, c.posAt(start),
				fmt.Sprintf("invalid decimal literal: %s", text),
				"fix the format of the decimal number")
			return token.Token{}, false
		}
	} else {
		if !intPattern.MatchString(text) {
			lx.errLex(diag.LexBadNumber, c.posAt(start),
				fmt.Sprintf("invalid integer literal: %s", text),
				"fix the format of the integer number")
			return token.Token{}, false
		}
	}

	return token.Token{Kind: token.Number, Text: text, Pos: c.posAt(start)}, true
}

// scanPrefixed consumes a 0b/0o/0x literal whose digits satisfy inBase.
func (lx *Lexer) scanPrefixed(c *cursor, start mark, sb *strings.Builder, base string, inBase func(byte) bool) (token.Token, bool) {
	prefix := string([]byte{c.bump(), c.bump()})
	sb.WriteString(prefix)

	digits := 0
	for !c.eof() {
		b := c.peek()
		if inBase(b) {
			sb.WriteByte(c.bump())
			digits++
			continue
		}
		if b == '_' {
			c.bump()
			continue
		}
		break
	}

	if digits == 0 {
		// префикс без единой цифры
		lx.errLex(diag.LexBadNumber, c.posAt(start),
			fmt.Sprintf("incomplete %s literal: %s", base, sb.String()),
			fmt.Sprintf("add digits after %s", prefix))
		return token.Token{}, false
	}

	return token.Token{Kind: token.Number, Text: sb.String(), Pos: c.posAt(start)}, true
}
