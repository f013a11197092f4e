package driver_test

import (
	"reflect"
	"testing"

	"pycheck/internal/diag"
	"pycheck/internal/driver"
	"pycheck/internal/token"
)

func compile(t *testing.T, input string) *driver.Result {
	t.Helper()
	res := driver.CompileSource("test.py", []byte(input), 64)
	if res == nil {
		t.Fatal("CompileSource must never return nil")
	}
	if res.Lexical == nil || res.Structural == nil || res.Semantic == nil {
		t.Fatal("diagnostic slices must never be nil")
	}
	return res
}

func TestCleanProgram(t *testing.T) {
	res := compile(t, "def add(a, b):\n    return a + b\n\nresult = add(1, 2)\nprint(result)\n")
	if res.HasErrors() {
		t.Fatalf("expected clean run, got %v", res.Bag.Items())
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatal("token stream must end with EOF")
	}
}

// Лексическая ошибка подавляет обе последующие фазы.
func TestGatingOnLexicalError(t *testing.T) {
	res := compile(t, "y = 0b\nprint(undefined_thing\n")
	if len(res.Lexical) == 0 {
		t.Fatal("expected lexical diagnostics")
	}
	if len(res.Structural) != 0 || len(res.Semantic) != 0 {
		t.Fatalf("lexical errors must gate later stages, got structural=%v semantic=%v",
			res.Structural, res.Semantic)
	}
}

// Структурная ошибка подавляет семантику, но не лексику.
func TestGatingOnStructuralError(t *testing.T) {
	res := compile(t, "def f(x\nprint(undefined_thing)\n")
	if len(res.Lexical) != 0 {
		t.Fatalf("expected no lexical diagnostics, got %v", res.Lexical)
	}
	if len(res.Structural) == 0 {
		t.Fatal("expected structural diagnostics")
	}
	if len(res.Semantic) != 0 {
		t.Fatalf("structural errors must gate the checker, got %v", res.Semantic)
	}
}

func TestSemanticStageRuns(t *testing.T) {
	res := compile(t, "print(x)\n")
	if len(res.Lexical) != 0 || len(res.Structural) != 0 {
		t.Fatalf("expected only semantic findings, got lex=%v syn=%v", res.Lexical, res.Structural)
	}
	if len(res.Semantic) != 1 || res.Semantic[0].Code != diag.SemaUndefinedVariable {
		t.Fatalf("expected one undefined-variable diagnostic, got %v", res.Semantic)
	}
}

// Стилевое предупреждение не гейтит семантику.
func TestWarningDoesNotGate(t *testing.T) {
	res := compile(t, "class point:\n    pass\nprint(x)\n")
	if len(res.Structural) != 1 || res.Structural[0].Severity != diag.SevWarning {
		t.Fatalf("expected one structural warning, got %v", res.Structural)
	}
	if len(res.Semantic) != 1 {
		t.Fatalf("warning must not suppress the checker, got %v", res.Semantic)
	}
}

// Неуравновешенные скобки вызова: код SYN, но выдаёт его семантика — и
// он попадает в структурный срез.
func TestMisTaggedCallParens(t *testing.T) {
	res := compile(t, "total = sum(\n")
	found := false
	for _, d := range res.Structural {
		if d.Code == diag.SynUnclosedCallParen {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SynUnclosedCallParen in the structural slice, got %v", res.Structural)
	}
}

func TestIdempotence(t *testing.T) {
	input := "def f(x):\n    return x * 2\nbad =\n"
	a := compile(t, input)
	b := compile(t, input)

	if !reflect.DeepEqual(a.Tokens, b.Tokens) {
		t.Error("token streams differ between identical runs")
	}
	if !reflect.DeepEqual(a.Bag.Items(), b.Bag.Items()) {
		t.Error("diagnostics differ between identical runs")
	}
}

func TestEmptyInput(t *testing.T) {
	res := compile(t, "")
	if res.HasErrors() {
		t.Fatalf("empty input must be clean, got %v", res.Bag.Items())
	}
	if len(res.Tokens) != 1 || res.Tokens[0].Kind != token.EOF {
		t.Fatalf("empty input must produce only EOF, got %v", res.Tokens)
	}
}

func TestDiagnosticsSorted(t *testing.T) {
	res := compile(t, "b = 0x\na = 0b\n")
	items := res.Bag.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", items)
	}
	if !items[0].Pos.Before(items[1].Pos) {
		t.Errorf("diagnostics must be in source order: %v", items)
	}
}
