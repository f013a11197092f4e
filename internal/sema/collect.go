package sema

import (
	"pycheck/internal/token"
)

// Collect is the first pass: one forward scan over the stream filling the
// flat definition sets. No scope is created for function or class bodies.
func Collect(tokens []token.Token) *Definitions {
	defs := newDefinitions()

	i := 0
	for i < len(tokens) {
		t := tokens[i]

		if t.Kind == token.Keyword {
			switch t.Text {
			case "def":
				i = defs.collectFunc(tokens, i)
				continue
			case "class":
				if i+1 < len(tokens) && tokens[i+1].IsIdent() {
					defs.Classes[tokens[i+1].Text] = struct{}{}
					i += 2
					continue
				}
			case "import":
				i = defs.collectNames(tokens, i+1)
				continue
			case "from":
				// имена идут после 'import'
				j := i + 1
				for j < len(tokens) && !tokens[j].IsKw("import") {
					j++
				}
				i = defs.collectNames(tokens, j+1)
				continue
			case "for":
				if i+1 < len(tokens) && tokens[i+1].IsIdent() {
					defs.Variables[tokens[i+1].Text] = struct{}{}
					i += 2
					continue
				}
			}
		}

		// присваивание: идентификатор перед '='
		if t.IsIdent() && i+1 < len(tokens) && tokens[i+1].IsText("=") {
			defs.Variables[t.Text] = struct{}{}
			i += 2
			continue
		}

		i++
	}

	return defs
}

// collectFunc records the function name and every parameter identifier,
// both as parameter and as variable. Returns the position after ')'.
func (d *Definitions) collectFunc(tokens []token.Token, i int) int {
	if i+1 >= len(tokens) || !tokens[i+1].IsIdent() {
		return i + 1
	}
	d.Functions[tokens[i+1].Text] = struct{}{}

	j := i + 2
	if j < len(tokens) && tokens[j].IsText("(") {
		j++
		for j < len(tokens) && !tokens[j].IsText(")") {
			if tokens[j].IsIdent() {
				d.Parameters[tokens[j].Text] = struct{}{}
				d.Variables[tokens[j].Text] = struct{}{}
			}
			j++
		}
	}
	return j
}

// collectNames records a comma-separated identifier chain as imports,
// starting at i. 'as' aliases land in the same set. Returns the position
// after the chain.
func (d *Definitions) collectNames(tokens []token.Token, i int) int {
	for i < len(tokens) && tokens[i].IsIdent() {
		d.Imports[tokens[i].Text] = struct{}{}
		i++
		if i < len(tokens) && tokens[i].IsKw("as") {
			i++
			continue
		}
		if i < len(tokens) && tokens[i].IsText(",") {
			i++
		}
	}
	return i
}
