package sema_test

import (
	"testing"

	"pycheck/internal/diag"
	"pycheck/internal/lexer"
	"pycheck/internal/sema"
	"pycheck/internal/source"
	"pycheck/internal/token"
)

// tokenize превращает вход в поток токенов; вход должен быть лексически чист
func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.py", []byte(input)))

	bag := diag.NewBag(64)
	tokens := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).Tokens()
	if bag.HasErrors() {
		t.Fatalf("input must scan cleanly, got %v", bag.Items())
	}
	return tokens
}

func check(t *testing.T, input string) []diag.Diagnostic {
	t.Helper()
	bag := diag.NewBag(64)
	sema.Check(tokenize(t, input), diag.BagReporter{Bag: bag})
	return bag.Items()
}

func expectNone(t *testing.T, input string) {
	t.Helper()
	if diags := check(t, input); len(diags) != 0 {
		t.Fatalf("expected no diagnostics for %q, got %v", input, diags)
	}
}

func expectCodes(t *testing.T, input string, codes ...diag.Code) []diag.Diagnostic {
	t.Helper()
	diags := check(t, input)
	if len(diags) != len(codes) {
		t.Fatalf("%q: expected %d diagnostics, got %d: %v", input, len(codes), len(diags), diags)
	}
	for i, code := range codes {
		if diags[i].Code != code {
			t.Errorf("%q diag %d: expected %v, got %v (%s)",
				input, i, code, diags[i].Code, diags[i].Message)
		}
	}
	return diags
}

func TestCollectDefinitions(t *testing.T) {
	defs := sema.Collect(tokenize(t, "def add(a, b):\n    return a + b\nclass Point:\n    pass\nimport os, sys\nfrom math import sqrt as rt\nfor i in range(3):\n    total = i\n"))

	hasAll := func(set map[string]struct{}, names ...string) {
		t.Helper()
		for _, name := range names {
			if _, ok := set[name]; !ok {
				t.Errorf("missing %q in %v", name, set)
			}
		}
	}
	hasAll(defs.Functions, "add")
	hasAll(defs.Classes, "Point")
	hasAll(defs.Parameters, "a", "b")
	hasAll(defs.Variables, "a", "b", "i", "total")
	hasAll(defs.Imports, "os", "sys", "sqrt", "rt")
}

func TestUndefinedVariableWithBuiltinCall(t *testing.T) {
	diags := expectCodes(t, "print(x)\n", diag.SemaUndefinedVariable)
	if diags[0].Pos != (source.Pos{Line: 1, Col: 7}) {
		t.Errorf("expected position 1:7 for x, got %v", diags[0].Pos)
	}
}

func TestDefinedNamesAreClean(t *testing.T) {
	expectNone(t, "x = 1\nprint(x)\n")
	expectNone(t, "for i in range(3):\n    print(i)\n")
	expectNone(t, "def f(a):\n    return a\nf(1)\n")
	expectNone(t, "import os\nos.getcwd()\n")
	expectNone(t, "class Point:\n    pass\np = Point()\n")
	expectNone(t, "except ValueError as e:\n")
}

func TestExceptBindingWindowIsBounded(t *testing.T) {
	// окно предиката ограничено: употребление вдали от 'except' уже не
	// контекст определения, и в плоские множества имя не попадает
	expectCodes(t, "except ValueError as e:\n    print(e)\n", diag.SemaUndefinedVariable)
}

func TestAugmentedAssignmentIsDefinitionContext(t *testing.T) {
	// += сам по себе считается контекстом определения, как и '='
	expectNone(t, "x += 1\n")
	expectNone(t, "y **= 2\n")
}

func TestUnderscorePrefixExempt(t *testing.T) {
	expectNone(t, "print(_internal)\n_helper()\n")
}

func TestSpecialNamesExempt(t *testing.T) {
	expectNone(t, "if __name__ == \"__main__\":\n    main = 1\n")
}

func TestAttributeAccessExempt(t *testing.T) {
	// obj определён, поле после '.' не проверяется
	expectNone(t, "obj = str(1)\nprint(obj.field)\n")
}

func TestUndefinedFunctionCall(t *testing.T) {
	expectCodes(t, "frobnicate(1)\n", diag.SemaUndefinedFunction)
}

func TestMethodCallExempt(t *testing.T) {
	expectNone(t, "s = str(1)\ns.upper()\n")
}

func TestNoDeduplication(t *testing.T) {
	// каждое употребление неопределённого имени — отдельный диагноз
	expectCodes(t, "print(x)\nprint(x)\n",
		diag.SemaUndefinedVariable, diag.SemaUndefinedVariable)
}

func TestUnclosedCallParens(t *testing.T) {
	diags := expectCodes(t, "total = sum(items\n",
		diag.SemaUndefinedVariable, diag.SynUnclosedCallParen)
	_ = diags

	if got := diag.SynUnclosedCallParen.Stage(); got != diag.StageStructural {
		t.Fatalf("unbalanced-parens code must sit in the structural range, got %v", got)
	}
}

func TestBalancedNestedCalls(t *testing.T) {
	expectNone(t, "n = len(sorted(range(3)))\n")
}
