package driver

import (
	"fmt"

	"pycheck/internal/diag"
	"pycheck/internal/source"
)

// CompileFileCached consults the disk cache by content hash before
// running the pipeline. On a hit only the diagnostics are restored, not
// the token stream. Returns whether the result came from the cache.
func CompileFileCached(path string, maxDiagnostics int, cache *DiskCache) (*Result, bool, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", path, err)
	}
	file := fileSet.Get(fileID)

	var payload DiskPayload
	if hit, getErr := cache.Get(file.Hash, &payload); getErr == nil && hit && payload.ContentHash == file.Hash {
		bag := payloadToDiags(&payload, maxDiagnostics)
		bag.Sort()
		return &Result{
			FileSet:    fileSet,
			File:       file,
			Lexical:    bag.ByStage(diag.StageLexical),
			Structural: bag.ByStage(diag.StageStructural),
			Semantic:   bag.ByStage(diag.StageSemantic),
			Bag:        bag,
		}, true, nil
	}

	res := run(fileSet, file, maxDiagnostics)
	// сбой записи кэша не делает прогон неудачным
	_ = cache.Put(file.Hash, resultToPayload(res))
	return res, false, nil
}
