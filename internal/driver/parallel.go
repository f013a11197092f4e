package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pycheck/internal/diag"
	"pycheck/internal/source"
)

// CheckDirResult содержит результат анализа одного файла
type CheckDirResult struct {
	Path   string  // путь к файлу, как он был найден обходом
	Result *Result // полный результат пайплайна
}

// listPyFiles возвращает отсортированный список всех *.py файлов в директории
func listPyFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir analyzes every *.py file under dir with a bounded worker
// group. Each run is a pure function of its own file, so the only shared
// state is the per-index results slice and the optional disk cache, which
// is itself thread-safe. A file that fails to load gets a result holding
// one I/O diagnostic instead of aborting the whole walk.
func CheckDir(ctx context.Context, dir string, maxDiagnostics, jobs int, cache *DiskCache) ([]CheckDirResult, error) {
	files, err := listPyFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]CheckDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			var res *Result
			var err error
			if cache != nil {
				res, _, err = CompileFileCached(path, maxDiagnostics, cache)
			} else {
				res, err = CompileFile(path, maxDiagnostics)
			}
			if err != nil {
				res = loadFailureResult(path, err, maxDiagnostics)
			}
			results[i] = CheckDirResult{Path: path, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func loadFailureResult(path string, loadErr error, maxDiagnostics int) *Result {
	bag := diag.NewBag(maxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Pos{Line: 1, Col: 1},
		"failed to load file: "+loadErr.Error()))
	return &Result{
		Lexical:    []diag.Diagnostic{},
		Structural: []diag.Diagnostic{},
		Semantic:   []diag.Diagnostic{},
		Bag:        bag,
	}
}
