package syntax

import (
	"pycheck/internal/diag"
)

// simpleStmt checks one-keyword statements: return, break, continue, pass,
// raise, assert, del, global, nonlocal. Some carry an optional expression.
func (v *Validator) simpleStmt() error {
	t := v.cur()
	v.advance() // ключевое слово

	switch t.Text {
	case "return", "raise", "assert", "del":
		if v.sameLine(t.Pos.Line) {
			v.scanExpr(t.Pos.Line)
		}
	}
	return nil
}

// exprOrAssign handles a statement that does not start with a construct
// keyword: advance to a bare '=' or the end of the line; after a '=' there
// must be a value.
func (v *Validator) exprOrAssign() error {
	start := v.cur()
	line := start.Pos.Line

	assigned := false
	for v.sameLine(line) {
		if v.cur().IsText("=") {
			assigned = true
			v.advance()
			break
		}
		v.advance()
	}

	if assigned {
		if !v.sameLine(line) {
			return v.fail(diag.SynExpectValue, v.posOr(line, start.Pos),
				"incomplete assignment: missing value after '='",
				"provide a value for the assignment")
		}
		v.scanExpr(line)
	}
	return nil
}
