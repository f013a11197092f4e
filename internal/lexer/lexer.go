package lexer

import (
	"bytes"
	"fmt"
	"strings"

	"fortio.org/safecast"

	"pycheck/internal/diag"
	"pycheck/internal/source"
	"pycheck/internal/token"
)

// Lexer is the line-oriented lexical scanner. It is a pure function of the
// file content: errors go to the Reporter and scanning always continues
// with the next character or line.
type Lexer struct {
	file *source.File
	opts Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file: file,
		opts: opts,
	}
}

// Tokens scans the whole file and returns the token stream, terminated by
// a single EOF token. The stream is in source order and never mutated
// afterwards.
func (lx *Lexer) Tokens() []token.Token {
	lines := bytes.Split(lx.file.Content, []byte("\n"))
	tokens := make([]token.Token, 0, len(lx.file.Content)/4)

	for i, line := range lines {
		lineNo, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			panic(fmt.Errorf("line number overflow: %w", err))
		}
		lx.scanLine(lineNo, line, &tokens)
	}

	lastNo, err := safecast.Conv[uint32](len(lines))
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	lastCol, err := safecast.Conv[uint32](len(lines[len(lines)-1]) + 1)
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	tokens = append(tokens, token.Token{
		Kind: token.EOF,
		Pos:  source.Pos{Line: lastNo, Col: lastCol},
	})
	return tokens
}

// scanLine tokenizes one physical line. Blank lines produce nothing.
func (lx *Lexer) scanLine(lineNo uint32, raw []byte, out *[]token.Token) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return
	}

	// Отступ: ширина ведущих пробелов. Не кратно 4 — диагностика, но
	// Indent токен всё равно эмитим с фактической шириной.
	indent := 0
	for indent < len(raw) && isSpaceByte(raw[indent]) {
		indent++
	}
	if indent > 0 {
		if indent%4 != 0 {
			lx.errLex(diag.LexBadIndent, source.Pos{Line: lineNo, Col: 1},
				"indentation must be a multiple of 4 spaces",
				"use 4 spaces for each indentation level")
		}
		*out = append(*out, token.Token{
			Kind: token.Indent,
			Text: strings.Repeat(" ", indent),
			Pos:  source.Pos{Line: lineNo, Col: 1},
		})
	}

	c := newCursor(lineNo, raw)
	c.off = indent

	for !c.eof() {
		b := c.peek()
		switch {
		case isSpaceByte(b):
			c.bump()

		case b == '#':
			// Комментарий до конца строки, сканирование строки заканчивается
			*out = append(*out, token.Token{
				Kind: token.Comment,
				Text: c.rest(),
				Pos:  c.pos(),
			})
			return

		case b == '"' || b == '\'':
			if tok, ok := lx.scanString(&c); ok {
				*out = append(*out, tok)
			}

		case isDec(b) || (b == '.' && isDec(c.peekAt(1))):
			if tok, ok := lx.scanNumber(&c); ok {
				*out = append(*out, tok)
			}

		case isIdentStartByte(b):
			if tok, ok := lx.scanIdent(&c); ok {
				*out = append(*out, tok)
			}

		default:
			if tok, ok := lx.scanSymbol(&c); ok {
				*out = append(*out, tok)
			} else {
				lx.errLex(diag.LexUnknownChar, c.pos(),
					fmt.Sprintf("invalid character: %q", string(b)),
					"remove or replace the invalid character")
				c.bump()
			}
		}
	}
}
