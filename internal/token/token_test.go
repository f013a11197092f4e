package token_test

import (
	"testing"

	"pycheck/internal/source"
	"pycheck/internal/token"
)

func TestClassifySymbol(t *testing.T) {
	cases := []struct {
		text string
		kind token.Kind
		ok   bool
	}{
		{"**=", token.Operator, true},
		{"//", token.Operator, true},
		{"->", token.Delimiter, true},
		{":", token.Delimiter, true},
		{"=", token.Operator, true},
		{"?", token.Invalid, false},
		{"$", token.Invalid, false},
	}
	for _, tc := range cases {
		kind, ok := token.ClassifySymbol(tc.text)
		if ok != tc.ok || kind != tc.kind {
			t.Errorf("ClassifySymbol(%q) = %v, %v; expected %v, %v", tc.text, kind, ok, tc.kind, tc.ok)
		}
	}
}

func TestKeywords(t *testing.T) {
	for _, word := range []string{"def", "class", "lambda", "yield", "nonlocal"} {
		if !token.IsKeyword(word) {
			t.Errorf("%q must be a keyword", word)
		}
	}
	for _, word := range []string{"print", "self", "match"} {
		if token.IsKeyword(word) {
			t.Errorf("%q must not be a keyword", word)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	kw := token.Token{Kind: token.Keyword, Text: "def", Pos: source.Pos{Line: 1, Col: 1}}
	if !kw.IsKw("def") || kw.IsKw("class") || kw.IsText("def") {
		t.Error("keyword predicate mismatch")
	}

	op := token.Token{Kind: token.Operator, Text: "==", Pos: source.Pos{Line: 1, Col: 3}}
	if !op.IsText("==") || op.IsKw("==") || op.IsIdent() {
		t.Error("operator predicate mismatch")
	}
	if op.EndCol() != 5 {
		t.Errorf("EndCol: expected 5, got %d", op.EndCol())
	}
}
