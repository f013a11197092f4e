package diag

import "pycheck/internal/source"

func New(sev Severity, code Code, pos source.Pos, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Pos:      pos,
		Message:  msg,
	}
}

func NewError(code Code, pos source.Pos, msg string) Diagnostic {
	return New(SevError, code, pos, msg)
}

func NewWarning(code Code, pos source.Pos, msg string) Diagnostic {
	return New(SevWarning, code, pos, msg)
}

func (d Diagnostic) WithSuggestion(text string) Diagnostic {
	d.Suggestion = text
	return d
}
