package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pycheck/internal/diag"
	"pycheck/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
	helpColor = color.New(color.FgGreen)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с кареткой '^' под колонкой и подсказку.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, file, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, file *source.File, opts PrettyOpts) {
	loc := fmt.Sprintf("%s:%d:%d:", file.Path, d.Pos.Line, d.Pos.Col)
	sev := d.Severity.String()
	if opts.Color {
		loc = posColor.Sprint(loc)
		sev = sevColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s %s %s: %s\n", loc, sev, d.Code.ID(), d.Message)

	if opts.Context {
		writeContext(w, d, file)
	}
	if d.Suggestion != "" {
		help := "help: " + d.Suggestion
		if opts.Color {
			help = helpColor.Sprint(help)
		}
		fmt.Fprintf(w, "  %s\n", help)
	}
}

// writeContext prints the offending line with a caret under the column.
// Tabs are flattened to single spaces so the caret offset can be computed
// with display widths.
func writeContext(w io.Writer, d diag.Diagnostic, file *source.File) {
	line := file.GetLine(d.Pos.Line)
	if line == "" {
		return
	}
	line = strings.ReplaceAll(line, "\t", " ")
	fmt.Fprintf(w, "  %s\n", line)

	col := int(d.Pos.Col)
	if col > len(line) {
		col = len(line)
	}
	if col < 1 {
		col = 1
	}
	pad := runewidth.StringWidth(line[:col-1])
	fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", pad))
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
