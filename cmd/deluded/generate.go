package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"deluded/internal/driver"
	"deluded/internal/project"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [dir]",
	Short: "Generate HTML documentation",
	Long: `Generate renders the documentation site for a project. The project root
is found by walking up from [dir] (default: the current directory) to the
nearest deluded.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("out", "", "output directory (overrides [project].out)")
	generateCmd.Flags().Bool("no-cache", false, "render every page even when unchanged")
	generateCmd.Flags().String("cache-dir", "", "cache directory (default: XDG cache)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}

	root, ok, err := project.FindProjectRoot(startDir)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no %s found from %s upward", project.ManifestName, startDir)
	}
	manifest, err := project.LoadManifest(filepath.Join(root, project.ManifestName))
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = filepath.Join(root, manifest.Out)
	}

	var cache *driver.DiskCache
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		if cacheDir, _ := cmd.Flags().GetString("cache-dir"); cacheDir != "" {
			cache, err = driver.OpenDiskCacheAt(cacheDir)
		} else {
			cache, err = driver.OpenDiskCache("deluded")
		}
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	readme := ""
	if manifest.Readme != "" {
		readme = filepath.Join(root, manifest.Readme)
	}

	result, err := driver.Generate(cmd.Context(), driver.GenerateOpts{
		Dir:            root,
		Out:            out,
		ProjectName:    manifest.Name,
		Readme:         readme,
		Exclude:        manifest.Exclude,
		MaxDiagnostics: maxDiagnostics(cmd),
		Cache:          cache,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		if result.Bag.HasErrors() || result.Bag.HasWarnings() {
			// FileSet жил внутри Generate, поэтому печатаем без позиций
			for _, d := range result.Bag.Items() {
				fmt.Fprintf(os.Stderr, "%s %s: %s\n", d.Severity, d.Code.ID(), d.Message)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d pages to %s", len(result.Pages), out)
		if result.Skipped > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), " (%d unchanged)", result.Skipped)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
