package sema

import (
	"testing"

	"pycheck/internal/token"
)

func kw(text string) token.Token  { return token.Token{Kind: token.Keyword, Text: text} }
func id(text string) token.Token  { return token.Token{Kind: token.Ident, Text: text} }
func op(text string) token.Token  { return token.Token{Kind: token.Operator, Text: text} }
func dl(text string) token.Token  { return token.Token{Kind: token.Delimiter, Text: text} }

func TestFollowedByAssignment(t *testing.T) {
	toks := []token.Token{id("x"), op("="), token.Token{Kind: token.Number, Text: "1"}}
	if !followedByAssignment(toks, 0) {
		t.Error("x before '=' must be definition context")
	}
	if followedByAssignment(toks, 2) {
		t.Error("literal at end of stream must not be definition context")
	}

	aug := []token.Token{id("x"), op("+="), token.Token{Kind: token.Number, Text: "1"}}
	if !followedByAssignment(aug, 0) {
		t.Error("augmented assignment must count as definition context")
	}

	cmp := []token.Token{id("x"), op("=="), token.Token{Kind: token.Number, Text: "1"}}
	if followedByAssignment(cmp, 0) {
		t.Error("comparison must not count as definition context")
	}
}

func TestInForTarget(t *testing.T) {
	toks := []token.Token{kw("for"), id("i"), kw("in"), id("items"), dl(":")}
	if !inForTarget(toks, 1) {
		t.Error("loop variable must be definition context")
	}
	if inForTarget(toks, 3) {
		t.Error("iterable after 'in' must not be definition context")
	}
}

func TestInParamList(t *testing.T) {
	toks := []token.Token{kw("def"), id("f"), dl("("), id("a"), dl(","), id("b"), dl(")"), dl(":")}
	if !inParamList(toks, 3) || !inParamList(toks, 5) {
		t.Error("parameters must be definition context")
	}
	if inParamList(toks, 1) {
		t.Error("function name must not be treated as a parameter")
	}
	if inParamList(toks, 7) {
		t.Error("tokens after ')' must not be definition context")
	}
}

// Окно обратного просмотра фиксированное: def дальше 10 токенов назад
// уже не виден.
func TestParamWindowBound(t *testing.T) {
	toks := []token.Token{kw("def"), id("f"), dl("(")}
	for i := 0; i < 12; i++ {
		toks = append(toks, dl(","))
	}
	toks = append(toks, id("late"), dl(")"))
	if inParamList(toks, len(toks)-2) {
		t.Error("identifier beyond the lookback window must not be exempt")
	}
}

func TestBoundByExceptAs(t *testing.T) {
	toks := []token.Token{kw("except"), id("ValueError"), kw("as"), id("e"), dl(":")}
	if !boundByExceptAs(toks, 3) {
		t.Error("name after 'as' must be definition context")
	}
	if boundByExceptAs(toks, 1) {
		t.Error("exception type must not be definition context")
	}
}
