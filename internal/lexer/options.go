package lexer

import (
	"pycheck/internal/diag"
	"pycheck/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) errLex(code diag.Code, pos source.Pos, msg, suggestion string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, pos, msg, suggestion)
	}
}
