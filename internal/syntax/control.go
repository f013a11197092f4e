package syntax

import (
	"fmt"

	"pycheck/internal/diag"
)

// condStmt checks `if <expr>:` and `elif <expr>:`.
func (v *Validator) condStmt(kw string) error {
	t := v.cur()
	line := t.Pos.Line
	v.advance() // if / elif

	if !v.sameLine(line) {
		return v.fail(diag.SynExpectExpression, t.Pos,
			fmt.Sprintf("expected condition after '%s'", kw),
			"add a boolean expression as the condition")
	}
	v.scanExpr(line)

	return v.expectColon(line, t.Pos,
		fmt.Sprintf("expected ':' after the %s condition", kw),
		"add a colon ':' after the condition")
}

func (v *Validator) elseStmt() error {
	t := v.cur()
	v.advance() // else
	return v.expectColon(t.Pos.Line, t.Pos,
		"expected ':' after 'else'",
		"add a colon ':' after 'else'")
}

// forStmt checks `for <ident> in <expr>:`.
func (v *Validator) forStmt() error {
	t := v.cur()
	line := t.Pos.Line
	v.advance() // for

	if !v.cur().IsIdent() || v.cur().Pos.Line != line {
		return v.fail(diag.SynExpectIdentifier, v.posOr(line, t.Pos),
			"expected loop variable after 'for'",
			"name a variable for the loop")
	}
	v.advance() // переменная

	if !v.cur().IsKw("in") || v.cur().Pos.Line != line {
		return v.fail(diag.SynExpectIn, v.posOr(line, t.Pos),
			"expected 'in' in for loop",
			"use 'in' to name the iterable")
	}
	v.advance() // in

	if !v.sameLine(line) {
		return v.fail(diag.SynExpectExpression, v.posOr(line, t.Pos),
			"expected an iterable expression after 'in'",
			"name an iterable object")
	}
	v.scanExpr(line)

	return v.expectColon(line, t.Pos,
		"expected ':' after the for loop",
		"add a colon ':' after the for loop")
}

// whileStmt checks `while <expr>:`.
func (v *Validator) whileStmt() error {
	t := v.cur()
	line := t.Pos.Line
	v.advance() // while

	if !v.sameLine(line) {
		return v.fail(diag.SynExpectExpression, t.Pos,
			"expected condition after 'while'",
			"add a boolean expression as the condition")
	}
	v.scanExpr(line)

	return v.expectColon(line, t.Pos,
		"expected ':' after the while condition",
		"add a colon ':' after the condition")
}

// colonOnlyStmt checks the headers that take nothing but a colon:
// `try:` and `finally:`.
func (v *Validator) colonOnlyStmt(kw string) error {
	t := v.cur()
	v.advance()
	return v.expectColon(t.Pos.Line, t.Pos,
		fmt.Sprintf("expected ':' after '%s'", kw),
		fmt.Sprintf("add a colon ':' after '%s'", kw))
}

// exceptStmt checks `except [Type [as name]]:`.
func (v *Validator) exceptStmt() error {
	t := v.cur()
	line := t.Pos.Line
	v.advance() // except

	if v.sameLine(line) && v.cur().IsIdent() {
		v.advance() // тип исключения

		if v.sameLine(line) && v.cur().IsKw("as") {
			v.advance() // as
			if !v.cur().IsIdent() || v.cur().Pos.Line != line {
				return v.fail(diag.SynExpectName, v.posOr(line, t.Pos),
					"expected variable name after 'as'",
					"name a valid variable")
			}
			v.advance() // переменная
		}
	}

	return v.expectColon(line, t.Pos,
		"expected ':' after 'except'",
		"add a colon ':' after 'except'")
}

// withStmt checks `with <expr> [as name]:`.
func (v *Validator) withStmt() error {
	t := v.cur()
	line := t.Pos.Line
	v.advance() // with

	if !v.sameLine(line) {
		return v.fail(diag.SynExpectExpression, t.Pos,
			"expected expression after 'with'",
			"name a context object")
	}
	v.scanExpr(line)

	if v.sameLine(line) && v.cur().IsKw("as") {
		v.advance() // as
		if !v.cur().IsIdent() || v.cur().Pos.Line != line {
			return v.fail(diag.SynExpectName, v.posOr(line, t.Pos),
				"expected variable name after 'as'",
				"name a valid variable")
		}
		v.advance() // переменная
	}

	return v.expectColon(line, t.Pos,
		"expected ':' after the with statement",
		"add a colon ':' after the with statement")
}
