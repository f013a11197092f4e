package syntax

import (
	"fmt"

	"pycheck/internal/diag"
)

// classDef checks `class Name(bases):`. The inheritance list is optional
// and the whole header must fit on the class's line.
func (v *Validator) classDef() error {
	kw := v.cur()
	line := kw.Pos.Line
	v.advance() // class

	name := v.cur()
	if !name.IsIdent() || name.Pos.Line != line {
		return v.fail(diag.SynExpectIdentifier, v.posOr(line, kw.Pos),
			"expected class name after 'class'",
			"add a valid name for the class")
	}

	// конвенция именования: предупреждение, сентенцию не бросаем
	if first := name.Text[0]; first < 'A' || first > 'Z' {
		v.warn(diag.SynClassNameStyle, name.Pos,
			fmt.Sprintf("class name '%s' should start with an uppercase letter", name.Text),
			"use PascalCase for class names")
	}
	v.advance() // имя

	if v.sameLine(line) && v.cur().IsText("(") {
		v.advance() // (

		for v.sameLine(line) && !v.cur().IsText(")") {
			if !v.cur().IsIdent() {
				return v.fail(diag.SynExpectName, v.cur().Pos,
					"expected base class name",
					"use valid class names in the inheritance list")
			}
			v.advance() // база
			if v.sameLine(line) && v.cur().IsText(",") {
				v.advance()
			}
		}

		if !v.cur().IsText(")") || v.cur().Pos.Line != line {
			return v.fail(diag.SynExpectRParen, v.posOr(line, name.Pos),
				"expected ')' to close the inheritance list",
				"close the inheritance list with ')'")
		}
		v.advance() // )
	}

	return v.expectColon(line, name.Pos,
		"expected ':' after the class definition",
		"add a colon ':' at the end of the definition")
}
