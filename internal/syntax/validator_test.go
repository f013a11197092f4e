package syntax_test

import (
	"testing"

	"pycheck/internal/diag"
	"pycheck/internal/lexer"
	"pycheck/internal/source"
	"pycheck/internal/syntax"
)

// validate прогоняет вход через сканер и валидатор, возвращая только
// структурные диагностики
func validate(t *testing.T, input string) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.py", []byte(input)))

	lexBag := diag.NewBag(64)
	tokens := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: lexBag}}).Tokens()
	if lexBag.HasErrors() {
		t.Fatalf("input must scan cleanly, got %v", lexBag.Items())
	}

	bag := diag.NewBag(64)
	syntax.Validate(tokens, diag.BagReporter{Bag: bag})
	return bag.Items()
}

// expectClean проверяет, что вход валиден
func expectClean(t *testing.T, input string) {
	t.Helper()
	if diags := validate(t, input); len(diags) != 0 {
		t.Fatalf("expected no diagnostics for %q, got %v", input, diags)
	}
}

// expectOne проверяет, что вход даёт ровно одну диагностику кода code
func expectOne(t *testing.T, input string, code diag.Code) diag.Diagnostic {
	t.Helper()
	diags := validate(t, input)
	if len(diags) != 1 {
		t.Fatalf("expected exactly 1 diagnostic for %q, got %d: %v", input, len(diags), diags)
	}
	if diags[0].Code != code {
		t.Fatalf("%q: expected code %v, got %v (%s)", input, code, diags[0].Code, diags[0].Message)
	}
	return diags[0]
}

func TestFunctionDefinition(t *testing.T) {
	expectClean(t, "def f(x):\n")
	expectClean(t, "def f():\n")
	expectClean(t, "def f(a, b, c):\n")
	expectClean(t, "def f(a, b=1):\n")

	expectOne(t, "def f(x)\n", diag.SynExpectColon)
	expectOne(t, "def (x):\n", diag.SynExpectIdentifier)
	expectOne(t, "def f x):\n", diag.SynExpectLParen)
	expectOne(t, "def f(x\n", diag.SynExpectRParen)
	expectOne(t, "def f(x:\n", diag.SynExpectComma)
	expectOne(t, "def f(a b):\n", diag.SynExpectComma)
	expectOne(t, "def f(a=):\n", diag.SynExpectValue)
	expectOne(t, "def f(1):\n", diag.SynBadParameter)
}

func TestClassDefinition(t *testing.T) {
	expectClean(t, "class Foo:\n")
	expectClean(t, "class Foo(Base):\n")
	expectClean(t, "class Foo(A, B):\n")

	expectOne(t, "class Foo\n", diag.SynExpectColon)
	expectOne(t, "class :\n", diag.SynExpectIdentifier)
	expectOne(t, "class Foo(Base\n", diag.SynExpectRParen)
	expectOne(t, "class Foo(1):\n", diag.SynExpectName)

	d := expectOne(t, "class foo:\n", diag.SynClassNameStyle)
	if d.Severity != diag.SevWarning {
		t.Fatalf("class name style must be a warning, got %v", d.Severity)
	}
}

func TestConditionals(t *testing.T) {
	expectClean(t, "if x > 1:\n")
	expectClean(t, "elif x < 2:\n")
	expectClean(t, "else:\n")

	expectOne(t, "if x > 1\n", diag.SynExpectColon)
	expectOne(t, "if\n", diag.SynExpectExpression)
	expectOne(t, "else\n", diag.SynExpectColon)
}

func TestForLoop(t *testing.T) {
	expectClean(t, "for i in items:\n")
	expectClean(t, "for i in range(10):\n")

	expectOne(t, "for in items:\n", diag.SynExpectIdentifier)
	expectOne(t, "for i items:\n", diag.SynExpectIn)
	expectOne(t, "for i in\n", diag.SynExpectExpression)
	expectOne(t, "for i in items\n", diag.SynExpectColon)
}

func TestWhileLoop(t *testing.T) {
	expectClean(t, "while x < 10:\n")
	expectOne(t, "while\n", diag.SynExpectExpression)
	expectOne(t, "while x < 10\n", diag.SynExpectColon)
}

func TestTryExceptFinally(t *testing.T) {
	expectClean(t, "try:\n")
	expectClean(t, "except:\n")
	expectClean(t, "except ValueError:\n")
	expectClean(t, "except ValueError as e:\n")
	expectClean(t, "finally:\n")

	expectOne(t, "try\n", diag.SynExpectColon)
	expectOne(t, "except ValueError as :\n", diag.SynExpectName)
	expectOne(t, "except ValueError as e\n", diag.SynExpectColon)
	expectOne(t, "finally\n", diag.SynExpectColon)
}

func TestWithStatement(t *testing.T) {
	expectClean(t, "with open(path):\n")
	expectClean(t, "with open(path) as f:\n")

	expectOne(t, "with\n", diag.SynExpectExpression)
	expectOne(t, "with open(path) as :\n", diag.SynExpectName)
	expectOne(t, "with open(path)\n", diag.SynExpectColon)
}

func TestImports(t *testing.T) {
	expectClean(t, "import os\n")
	expectClean(t, "import os, sys\n")
	expectClean(t, "import numpy as np\n")
	expectClean(t, "from os import path\n")
	expectClean(t, "from os import path, sep\n")
	expectClean(t, "from os import path as p\n")

	expectOne(t, "import\n", diag.SynExpectName)
	expectOne(t, "from import path\n", diag.SynExpectName)
	expectOne(t, "from os path\n", diag.SynExpectImport)
	expectOne(t, "import numpy as\n", diag.SynExpectName)
}

func TestSimpleStatements(t *testing.T) {
	expectClean(t, "return\n")
	expectClean(t, "return x + 1\n")
	expectClean(t, "pass\n")
	expectClean(t, "break\n")
	expectClean(t, "raise ValueError(msg)\n")
	expectClean(t, "del x\n")
}

func TestExpressionOrAssignment(t *testing.T) {
	expectClean(t, "x = 1\n")
	expectClean(t, "x = y + z\n")
	expectClean(t, "x += 1\n")
	expectClean(t, "f(a, b)\n")

	expectOne(t, "x =\n", diag.SynExpectValue)
}

// Первый структурный диагноз бросает сентенцию: остаток строки не даёт
// вторичных находок, следующая строка проверяется как обычно.
func TestOneDiagnosticPerStatement(t *testing.T) {
	diags := validate(t, "def f(x\ny =\n")
	if len(diags) != 2 {
		t.Fatalf("expected one diagnostic per broken line, got %v", diags)
	}
	if diags[0].Code != diag.SynExpectRParen {
		t.Errorf("line 1: expected SynExpectRParen, got %v", diags[0].Code)
	}
	if diags[1].Code != diag.SynExpectValue {
		t.Errorf("line 2: expected SynExpectValue, got %v", diags[1].Code)
	}
}

func TestIndentedStatements(t *testing.T) {
	expectClean(t, "def f(x):\n    return x\n")
	expectClean(t, "if a:\n    b = 1\nelse:\n    b = 2\n")
}
