package driver

import (
	"fmt"

	"pycheck/internal/diag"
	"pycheck/internal/lexer"
	"pycheck/internal/sema"
	"pycheck/internal/source"
	"pycheck/internal/syntax"
	"pycheck/internal/token"
)

// Result is the outcome of one analysis run: the token stream plus the
// per-stage diagnostic slices and the merged, sorted bag. Recomputed
// fully per run, no state survives between runs.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token

	Lexical    []diag.Diagnostic
	Structural []diag.Diagnostic
	Semantic   []diag.Diagnostic

	Bag *diag.Bag
}

// HasErrors reports whether any error-severity diagnostic was produced.
func (r *Result) HasErrors() bool {
	return r.Bag.HasErrors()
}

// CompileSource analyzes in-memory source. It never fails: any internal
// fault degrades to a single synthetic lexical diagnostic and an empty
// token stream.
func CompileSource(name string, src []byte, maxDiagnostics int) *Result {
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual(name, src)
	return run(fileSet, fileSet.Get(fileID), maxDiagnostics)
}

// CompileFile loads a file from disk and analyzes it. Only I/O failures
// surface as error; analysis findings are always diagnostics.
func CompileFile(path string, maxDiagnostics int) (*Result, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return run(fileSet, fileSet.Get(fileID), maxDiagnostics), nil
}

// run is the fault boundary around the whole pipeline.
func run(fileSet *source.FileSet, file *source.File, maxDiagnostics int) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			bag := diag.NewBag(maxDiagnostics)
			bag.Add(diag.NewError(diag.LexInternal, source.Pos{Line: 1, Col: 1},
				fmt.Sprintf("internal fault during analysis: %v", r)))
			res = &Result{
				FileSet:    fileSet,
				File:       file,
				Tokens:     []token.Token{},
				Lexical:    bag.Items(),
				Structural: []diag.Diagnostic{},
				Semantic:   []diag.Diagnostic{},
				Bag:        bag,
			}
		}
	}()
	return compile(fileSet, file, maxDiagnostics)
}

// compile sequences the three stages with strict gating: the validator
// runs only on an error-free scan, the checker only when both earlier
// stages are clean. A single lexical error suppresses all later feedback
// for the run.
func compile(fileSet *source.FileSet, file *source.File, maxDiagnostics int) *Result {
	lexBag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: lexBag}})
	tokens := lx.Tokens()

	synBag := diag.NewBag(maxDiagnostics)
	if !lexBag.HasErrors() {
		validate(tokens, synBag)
	}

	semBag := diag.NewBag(maxDiagnostics)
	if !lexBag.HasErrors() && !synBag.HasErrors() {
		sema.Check(tokens, diag.BagReporter{Bag: semBag})
	}

	merged := diag.NewBag(lexBag.Len() + synBag.Len() + semBag.Len())
	merged.Merge(lexBag)
	merged.Merge(synBag)
	merged.Merge(semBag)
	merged.Sort()

	return &Result{
		FileSet:    fileSet,
		File:       file,
		Tokens:     tokens,
		Lexical:    merged.ByStage(diag.StageLexical),
		Structural: merged.ByStage(diag.StageStructural),
		Semantic:   merged.ByStage(diag.StageSemantic),
		Bag:        merged,
	}
}

// validate wraps the structural walk in its own fault boundary: an
// unexpected fault there degrades to one generic diagnostic at 1:1
// instead of killing the run.
func validate(tokens []token.Token, bag *diag.Bag) {
	defer func() {
		if r := recover(); r != nil {
			bag.Add(diag.NewError(diag.SynInternal, source.Pos{Line: 1, Col: 1},
				fmt.Sprintf("critical structural fault: %v", r)).
				WithSuggestion("review the overall structure of the code"))
		}
	}()
	syntax.Validate(tokens, diag.BagReporter{Bag: bag})
}
