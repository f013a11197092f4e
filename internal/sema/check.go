package sema

import (
	"fmt"

	"pycheck/internal/diag"
	"pycheck/internal/token"
)

// Check is the second pass: three linear checks over the same stream,
// each driven by the positional predicates and the collected definition
// sets. Findings go to the Reporter; repeated uses of the same undefined
// name each get their own diagnostic.
func Check(tokens []token.Token, rep diag.Reporter) {
	defs := Collect(tokens)
	checkVariableUses(tokens, defs, rep)
	checkFunctionCalls(tokens, defs, rep)
	checkCallParens(tokens, rep)
}

// checkVariableUses flags an identifier read without a reachable
// definition. Callees and attribute accesses are exempt here.
func checkVariableUses(tokens []token.Token, defs *Definitions, rep diag.Reporter) {
	for i, t := range tokens {
		if !t.IsIdent() {
			continue
		}
		if isDefinitionContext(tokens, i) {
			continue
		}
		if defs.VariableKnown(t.Text) {
			continue
		}
		if isCallee(tokens, i) || isAttribute(tokens, i) {
			continue
		}
		rep.Report(diag.SemaUndefinedVariable, diag.SevError, t.Pos,
			fmt.Sprintf("variable '%s' used without definition", t.Text),
			fmt.Sprintf("define '%s' before using it, or check for a typo", t.Text))
	}
}

// checkFunctionCalls flags a call to a name with no reachable definition.
// Method calls (preceded by '.') are exempt.
func checkFunctionCalls(tokens []token.Token, defs *Definitions, rep diag.Reporter) {
	for i, t := range tokens {
		if !t.IsIdent() || !isCallee(tokens, i) {
			continue
		}
		if isAttribute(tokens, i) {
			continue
		}
		if defs.FunctionKnown(t.Text) {
			continue
		}
		rep.Report(diag.SemaUndefinedFunction, diag.SevError, t.Pos,
			fmt.Sprintf("function '%s()' is not defined", t.Text),
			fmt.Sprintf("define '%s' before calling it, or check for a typo", t.Text))
	}
}

// checkCallParens walks a bracket depth counter forward from every
// identifier-then-'(' pair. A depth that never returns to zero before the
// stream ends is reported with a structural code: logically a syntax
// error, even though this pass finds it.
func checkCallParens(tokens []token.Token, rep diag.Reporter) {
	for i, t := range tokens {
		if !t.IsIdent() || !isCallee(tokens, i) {
			continue
		}

		depth := 1
		for j := i + 2; j < len(tokens) && depth > 0; j++ {
			switch {
			case tokens[j].IsText("("):
				depth++
			case tokens[j].IsText(")"):
				depth--
			}
		}

		if depth > 0 {
			rep.Report(diag.SynUnclosedCallParen, diag.SevError, t.Pos,
				fmt.Sprintf("unclosed parenthesis in call to '%s'", t.Text),
				"add ')' to close the call")
		}
	}
}
