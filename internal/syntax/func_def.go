package syntax

import (
	"fmt"

	"pycheck/internal/diag"
)

// funcDef checks `def name(params):`. The whole header must fit on the
// def's line.
func (v *Validator) funcDef() error {
	kw := v.cur()
	line := kw.Pos.Line
	v.advance() // def

	name := v.cur()
	if !name.IsIdent() || name.Pos.Line != line {
		return v.fail(diag.SynExpectIdentifier, v.posOr(line, kw.Pos),
			"expected function name after 'def'",
			"add a valid name for the function")
	}
	v.advance() // имя

	if !v.cur().IsText("(") || v.cur().Pos.Line != line {
		return v.fail(diag.SynExpectLParen, v.posOr(line, name.Pos),
			"expected '(' after function name",
			"add an opening parenthesis '('")
	}
	v.advance() // (

	if err := v.paramList(line); err != nil {
		return err
	}

	if !v.cur().IsText(")") || v.cur().Pos.Line != line {
		return v.fail(diag.SynExpectRParen, v.posOr(line, name.Pos),
			"expected ')' to close the parameter list",
			"add a closing parenthesis ')'")
	}
	v.advance() // )

	return v.expectColon(line, name.Pos,
		"expected ':' after the function definition",
		"add a colon ':' at the end of the definition")
}

// paramList checks identifier-or-identifier-with-default shape and comma
// separation. It stops at ')' or the end of the line; the caller checks
// the ')'.
func (v *Validator) paramList(line uint32) error {
	for v.sameLine(line) && !v.cur().IsText(")") {
		t := v.cur()
		if !t.IsIdent() {
			return v.fail(diag.SynBadParameter, t.Pos,
				fmt.Sprintf("invalid parameter: %s", t.Text),
				"use valid identifiers for parameters")
		}
		v.advance() // параметр

		// значение по умолчанию
		if v.sameLine(line) && v.cur().IsText("=") {
			eq := v.cur()
			v.advance()
			if !v.sameLine(line) || v.cur().IsText(",") || v.cur().IsText(")") {
				return v.fail(diag.SynExpectValue, v.posOr(line, eq.Pos),
					fmt.Sprintf("expected a default value for parameter '%s' after '='", t.Text),
					"provide a valid default value")
			}
			v.advance() // значение
		}

		if v.sameLine(line) && v.cur().IsText(",") {
			v.advance()
			continue
		}
		if v.sameLine(line) && !v.cur().IsText(")") {
			return v.fail(diag.SynExpectComma, v.cur().Pos,
				"expected ',' between parameters",
				"separate parameters with commas")
		}
	}
	return nil
}
