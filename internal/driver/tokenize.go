package driver

import (
	"fmt"

	"pycheck/internal/diag"
	"pycheck/internal/lexer"
	"pycheck/internal/source"
	"pycheck/internal/token"
)

// TokenizeResult carries the outcome of the lexical stage alone.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize scans a file from disk without running the later stages.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fileSet.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens := lx.Tokens()

	return &TokenizeResult{
		FileSet: fileSet,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

// TokenizeSource scans in-memory source without the later stages.
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fileSet := source.NewFileSet()
	file := fileSet.Get(fileSet.AddVirtual(name, src))

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens := lx.Tokens()

	return &TokenizeResult{
		FileSet: fileSet,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
