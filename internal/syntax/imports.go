package syntax

import (
	"pycheck/internal/diag"
)

// importStmt checks `import a [as b], c ...` and
// `from mod import a [as b], c ...`. The chain must fit on one line.
func (v *Validator) importStmt() error {
	kw := v.cur()
	line := kw.Pos.Line

	if kw.IsKw("from") {
		v.advance() // from

		if !v.cur().IsIdent() || v.cur().Pos.Line != line {
			return v.fail(diag.SynExpectName, v.posOr(line, kw.Pos),
				"expected module name after 'from'",
				"name a valid module")
		}
		v.advance() // модуль

		if !v.cur().IsKw("import") || v.cur().Pos.Line != line {
			return v.fail(diag.SynExpectImport, v.posOr(line, kw.Pos),
				"expected 'import' in from-import statement",
				"use 'import' after the module name")
		}
		v.advance() // import
	} else {
		v.advance() // import
	}

	// цепочка имён: name [as alias] {',' name [as alias]}
	for {
		if !v.cur().IsIdent() || v.cur().Pos.Line != line {
			return v.fail(diag.SynExpectName, v.posOr(line, kw.Pos),
				"expected a name after 'import'",
				"name what to import")
		}
		v.advance() // имя

		if v.sameLine(line) && v.cur().IsKw("as") {
			v.advance() // as
			if !v.cur().IsIdent() || v.cur().Pos.Line != line {
				return v.fail(diag.SynExpectName, v.posOr(line, kw.Pos),
					"expected alias after 'as'",
					"name a valid alias")
			}
			v.advance() // алиас
		}

		if !v.sameLine(line) || !v.cur().IsText(",") {
			return nil
		}
		v.advance() // ,
	}
}
