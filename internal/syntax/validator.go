package syntax

import (
	"errors"

	"pycheck/internal/diag"
	"pycheck/internal/source"
	"pycheck/internal/token"
)

// errStatement сигнализирует, что текущая сентенция брошена: один
// диагноз уже выдан, остаток строки пропускается.
var errStatement = errors.New("statement abandoned")

// Validator is a single-pass, non-backtracking cursor over the token
// stream. It checks the punctuation around keyword-introduced constructs
// and never builds a tree. One diagnostic per statement: on the first
// missing requirement the handler returns errStatement and the walker
// skips to the next source line.
type Validator struct {
	tokens []token.Token
	pos    int
	rep    diag.Reporter
}

func New(tokens []token.Token, rep diag.Reporter) *Validator {
	return &Validator{tokens: tokens, rep: rep}
}

// Validate walks the whole stream. Findings go to the Reporter.
func Validate(tokens []token.Token, rep diag.Reporter) {
	New(tokens, rep).Validate()
}

func (v *Validator) Validate() {
	for !v.done() {
		t := v.cur()
		if t.Kind == token.Indent || t.Kind == token.Comment {
			v.advance()
			continue
		}
		line := t.Pos.Line
		if err := v.statement(); err != nil {
			v.syncLine(line)
		}
	}
}

// statement dispatches on the leading token of a statement.
func (v *Validator) statement() error {
	t := v.cur()
	if t.Kind != token.Keyword {
		return v.exprOrAssign()
	}

	switch t.Text {
	case "def":
		return v.funcDef()
	case "class":
		return v.classDef()
	case "if", "elif":
		return v.condStmt(t.Text)
	case "else":
		return v.elseStmt()
	case "for":
		return v.forStmt()
	case "while":
		return v.whileStmt()
	case "try", "finally":
		return v.colonOnlyStmt(t.Text)
	case "except":
		return v.exceptStmt()
	case "with":
		return v.withStmt()
	case "import", "from":
		return v.importStmt()
	case "return", "break", "continue", "pass", "raise", "assert", "del", "global", "nonlocal":
		return v.simpleStmt()
	default:
		// остальные зарезервированные слова (not, in, lambda, ...) сами
		// по себе сентенцию не открывают
		v.advance()
		return nil
	}
}

// --- курсор ---

func (v *Validator) done() bool {
	return v.pos >= len(v.tokens) || v.tokens[v.pos].Kind == token.EOF
}

// cur возвращает текущий токен; за концом потока — синтетический EOF.
func (v *Validator) cur() token.Token {
	if v.pos < len(v.tokens) {
		return v.tokens[v.pos]
	}
	return token.Token{Kind: token.EOF}
}

func (v *Validator) advance() {
	if v.pos < len(v.tokens) {
		v.pos++
	}
}

// posOr is the diagnostic position: the current token's if it still lies
// on the construct's line, otherwise the fallback (usually the construct's
// keyword or name).
func (v *Validator) posOr(line uint32, fallback source.Pos) source.Pos {
	if t := v.cur(); t.Kind != token.EOF && t.Pos.Line == line {
		return t.Pos
	}
	return fallback
}

// syncLine drops the rest of an abandoned statement: everything up to the
// next source line.
func (v *Validator) syncLine(line uint32) {
	for !v.done() && v.cur().Pos.Line == line {
		v.advance()
	}
}

// sameLine reports whether the cursor still points into the given line's
// payload (comments terminate the payload).
func (v *Validator) sameLine(line uint32) bool {
	t := v.cur()
	return t.Kind != token.EOF && t.Kind != token.Comment && t.Pos.Line == line
}

// scanExpr accepts an expression unconditionally: the cursor advances to
// the end of the line, a colon, a comma, or a binding 'as', whichever
// comes first. Expressions themselves are never parsed.
func (v *Validator) scanExpr(line uint32) {
	for v.sameLine(line) && !v.cur().IsText(":") && !v.cur().IsText(",") && !v.cur().IsKw("as") {
		v.advance()
	}
}

// --- диагностика ---

func (v *Validator) fail(code diag.Code, pos source.Pos, msg, suggestion string) error {
	v.rep.Report(code, diag.SevError, pos, msg, suggestion)
	return errStatement
}

func (v *Validator) warn(code diag.Code, pos source.Pos, msg, suggestion string) {
	v.rep.Report(code, diag.SevWarning, pos, msg, suggestion)
}

// expectColon consumes the ':' that closes a construct header. The colon
// has to sit on the construct's own line.
func (v *Validator) expectColon(line uint32, fallback source.Pos, msg, suggestion string) error {
	if !v.cur().IsText(":") || v.cur().Pos.Line != line {
		return v.fail(diag.SynExpectColon, v.posOr(line, fallback), msg, suggestion)
	}
	v.advance()
	return nil
}
