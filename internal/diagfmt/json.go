package diagfmt

import (
	"encoding/json"
	"io"

	"pycheck/internal/diag"
)

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity   string `json:"severity"`
	Code       string `json:"code"`
	Stage      string `json:"stage"`
	Message    string `json:"message"`
	Line       uint32 `json:"line"`
	Col        uint32 `json:"col"`
	Suggestion string `json:"suggestion,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	File        string           `json:"file"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, path string, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := 0; i < maxItems; i++ {
		d := items[i]
		diagnostics = append(diagnostics, DiagnosticJSON{
			Severity:   d.Severity.String(),
			Code:       d.Code.ID(),
			Stage:      d.Code.Stage().String(),
			Message:    d.Message,
			Line:       d.Pos.Line,
			Col:        d.Pos.Col,
			Suggestion: d.Suggestion,
		})
	}

	return DiagnosticsOutput{
		File:        path,
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, bag *diag.Bag, path string, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(bag, path, opts)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
