package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pycheck/internal/diagfmt"
	"pycheck/internal/driver"
	"pycheck/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.py | directory>",
	Short: "Run the full analysis pipeline",
	Long:  `Check runs lexical scanning, structural validation, and definition/use checking over a file or every *.py file under a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "parallel workers for directory checks (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	cfg, err := loadConfig(target)
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg)

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	var cache *driver.DiskCache
	if withCache, _ := cmd.Flags().GetBool("cache"); withCache {
		cache, err = driver.OpenDiskCache("pycheck")
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	if info.IsDir() {
		return checkDirectory(cmd, target, format, maxDiagnostics, cache)
	}
	return checkFile(cmd, target, format, maxDiagnostics, cache)
}

func checkFile(cmd *cobra.Command, path, format string, maxDiagnostics int, cache *driver.DiskCache) error {
	var res *driver.Result
	var err error
	if cache != nil {
		res, _, err = driver.CompileFileCached(path, maxDiagnostics, cache)
	} else {
		res, err = driver.CompileFile(path, maxDiagnostics)
	}
	if err != nil {
		return err
	}

	printResult(cmd, path, res, format)

	if res.HasErrors() {
		return fmt.Errorf("found %d problem(s)", res.Bag.ErrorCount())
	}
	return nil
}

func checkDirectory(cmd *cobra.Command, dir, format string, maxDiagnostics int, cache *driver.DiskCache) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	results, err := driver.CheckDir(cmd.Context(), dir, maxDiagnostics, jobs, cache)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no *.py files under %s\n", dir)
		return nil
	}

	totalErrors := 0
	for _, r := range results {
		printResult(cmd, r.Path, r.Result, format)
		totalErrors += r.Result.Bag.ErrorCount()
	}

	if totalErrors > 0 {
		return fmt.Errorf("found %d problem(s) in %d file(s)", totalErrors, len(results))
	}
	return nil
}

func printResult(cmd *cobra.Command, path string, res *driver.Result, format string) {
	out := os.Stdout

	if format == "json" {
		_ = diagfmt.JSON(out, res.Bag, path, diagfmt.JSONOpts{})
		return
	}

	color := useColor(cmd, out)
	file := res.File
	if file == nil {
		// файл не загрузился, контекста нет
		file = &source.File{Path: path}
	}
	diagfmt.Pretty(out, res.Bag, file, diagfmt.PrettyOpts{Color: color, Context: true})
	diagfmt.Summary(out, diagfmt.StageCounts{
		Tokens:     len(res.Tokens),
		Lexical:    len(res.Lexical),
		Structural: len(res.Structural),
		Semantic:   len(res.Semantic),
	}, color)
}
