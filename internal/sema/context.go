package sema

import (
	"pycheck/internal/token"
)

// Позиционные предикаты контекста определения. Это эвристики с явными
// границами окна, не обход таблицы символов: каждый смотрит на
// фиксированное число токенов вокруг позиции.

// Ширина окон обратного просмотра.
const (
	forWindow    = 3
	defWindow    = 10
	exceptWindow = 5
)

// isDefinitionContext reports whether the identifier at pos is being
// bound rather than read.
func isDefinitionContext(tokens []token.Token, pos int) bool {
	return followedByAssignment(tokens, pos) ||
		inForTarget(tokens, pos) ||
		inParamList(tokens, pos) ||
		boundByExceptAs(tokens, pos)
}

// followedByAssignment: the next token is '=' or an augmented assignment.
func followedByAssignment(tokens []token.Token, pos int) bool {
	if pos+1 >= len(tokens) {
		return false
	}
	next := tokens[pos+1]
	if next.Kind != token.Operator {
		return false
	}
	_, ok := token.AugmentedAssignOps[next.Text]
	return ok
}

// inForTarget: a 'for' lies within forWindow tokens back and the position
// sits before its 'in'.
func inForTarget(tokens []token.Token, pos int) bool {
	for j := max(0, pos-forWindow); j < pos; j++ {
		if !tokens[j].IsKw("for") {
			continue
		}
		for k := j + 1; k < min(len(tokens), pos+forWindow); k++ {
			if tokens[k].IsKw("in") {
				return pos < k
			}
		}
	}
	return false
}

// inParamList: a 'def' lies within defWindow tokens back and the position
// falls between its '(' and ')'.
func inParamList(tokens []token.Token, pos int) bool {
	for j := max(0, pos-defWindow); j < pos; j++ {
		if !tokens[j].IsKw("def") {
			continue
		}
		open := -1
		for k := j + 1; k < min(len(tokens), pos+5); k++ {
			if tokens[k].IsText("(") {
				open = k
				break
			}
		}
		if open < 0 {
			return false
		}
		for l := open + 1; l < len(tokens); l++ {
			if tokens[l].IsText(")") {
				return open < pos && pos < l
			}
		}
		return false
	}
	return false
}

// boundByExceptAs: the position is the identifier directly after the 'as'
// of an 'except' lying within exceptWindow tokens back.
func boundByExceptAs(tokens []token.Token, pos int) bool {
	for j := max(0, pos-exceptWindow); j < pos; j++ {
		if !tokens[j].IsKw("except") {
			continue
		}
		for k := j + 1; k < min(len(tokens), pos+2); k++ {
			if tokens[k].IsKw("as") {
				return pos == k+1
			}
		}
	}
	return false
}

// isCallee: the identifier is directly followed by '('.
func isCallee(tokens []token.Token, pos int) bool {
	return pos+1 < len(tokens) && tokens[pos+1].IsText("(")
}

// isAttribute: the identifier is directly preceded by '.'.
func isAttribute(tokens []token.Token, pos int) bool {
	return pos > 0 && tokens[pos-1].IsText(".")
}
