package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// StageCounts carries the per-stage totals of one run for the summary line.
type StageCounts struct {
	Tokens     int
	Lexical    int
	Structural int
	Semantic   int
}

// Summary prints the per-stage totals the way the check command reports
// a finished run.
func Summary(w io.Writer, c StageCounts, useColor bool) {
	total := c.Lexical + c.Structural + c.Semantic

	verdict := "ok"
	if total > 0 {
		verdict = fmt.Sprintf("%d problem(s)", total)
		if useColor {
			verdict = errColor.Sprint(verdict)
		}
	} else if useColor {
		verdict = color.GreenString(verdict)
	}

	fmt.Fprintf(w, "%s — tokens: %d, lexical: %d, structural: %d, semantic: %d\n",
		verdict, c.Tokens, c.Lexical, c.Structural, c.Semantic)
}
