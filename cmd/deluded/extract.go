package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deluded/internal/diag"
	"deluded/internal/docfmt"
	"deluded/internal/driver"
	"deluded/internal/source"
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] path",
	Short: "Extract and classify doc comments",
	Long: `Extract reads Lua sources under the given path (a file or a directory),
groups '---' doc comments into blocks and classifies every line`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	extractCmd.Flags().Int("jobs", 0, "parallel workers, 0 uses GOMAXPROCS")
	extractCmd.Flags().Bool("spans", false, "show byte spans of blocks")
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	showSpans, _ := cmd.Flags().GetBool("spans")
	maxDiags := maxDiagnostics(cmd)

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	var (
		fileSet *source.FileSet
		docs    []driver.FileDoc
	)
	if info.IsDir() {
		fileSet, docs, err = driver.ExtractDir(cmd.Context(), path, maxDiags, jobs)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
	} else {
		fileSet = source.NewFileSet()
		fileID, err := fileSet.Load(path)
		if err != nil {
			return err
		}
		docs = []driver.FileDoc{driver.ExtractFile(fileSet, fileID, maxDiags)}
	}

	// Диагностика в stderr
	merged := diag.NewBag(maxDiags)
	for _, doc := range docs {
		if doc.Bag != nil {
			merged.Merge(doc.Bag)
		}
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet && (merged.HasErrors() || merged.HasWarnings()) {
		merged.Sort()
		docfmt.FormatDiagnosticsPretty(os.Stderr, merged, fileSet, docfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	switch format {
	case "pretty":
		docfmt.FormatDocsPretty(os.Stdout, docs, fileSet, docfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stdout),
			ShowSpans: showSpans,
		})
		return nil
	case "json":
		return docfmt.FormatDocsJSON(os.Stdout, docs, fileSet, docfmt.JSONOpts{IncludePositions: true})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
