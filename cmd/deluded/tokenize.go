package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deluded/internal/docfmt"
	"deluded/internal/luasrc"
	"deluded/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <\"comment text\"|file.lua>",
	Short: "Tokenize doc comment text",
	Long: `Tokenize breaks a doc comment body into its constituent tokens. When the
argument names an existing .lua file, every doc line of the file is tokenized
in order; otherwise the argument itself is treated as one comment body`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	var dump func(w *os.File, src string) error
	switch format {
	case "pretty":
		dump = func(w *os.File, src string) error { return docfmt.FormatTokensPretty(w, src) }
	case "json":
		dump = func(w *os.File, src string) error { return docfmt.FormatTokensJSON(w, src) }
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	arg := args[0]
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		fileSet := source.NewFileSet()
		fileID, err := fileSet.Load(arg)
		if err != nil {
			return err
		}
		for _, block := range luasrc.Blocks(fileSet.Get(fileID)) {
			for _, line := range block.Lines {
				fmt.Fprintf(os.Stdout, "--- %s\n", line)
				if err := dump(os.Stdout, line); err != nil {
					return err
				}
			}
		}
		return nil
	}

	return dump(os.Stdout, arg)
}
