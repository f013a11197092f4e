package diag

import "pycheck/internal/source"

// Reporter — минимальный контракт получения диагностик от фаз.
// Стадии репортят находки сюда вместо возврата ошибок; error-значения
// зарезервированы за I/O.
type Reporter interface {
	Report(code Code, sev Severity, pos source.Pos, msg, suggestion string)
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, pos source.Pos, msg, suggestion string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity:   sev,
		Code:       code,
		Message:    msg,
		Pos:        pos,
		Suggestion: suggestion,
	})
}
