package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"deluded/internal/driver"
	"deluded/internal/project"
	"deluded/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [flags] [dir]",
	Short: "Browse documentation in the terminal",
	Long:  `Browse extracts the project documentation and opens an interactive viewer`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("browse needs a terminal; use 'extract' for plain output")
	}

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

	readme := ""
	if manifest.Readme != "" {
		readme = filepath.Join(root, manifest.Readme)
	}

	projectData, _, err := driver.LoadProject(cmd.Context(), driver.GenerateOpts{
		Dir:            root,
		ProjectName:    manifest.Name,
		Readme:         readme,
		Exclude:        manifest.Exclude,
		MaxDiagnostics: maxDiagnostics(cmd),
	})
	if err != nil {
		return err
	}
	return ui.RunBrowse(projectData)
}
