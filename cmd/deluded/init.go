package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"deluded/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new deluded project",
	Long: `Initialize a new documentation project by creating a project manifest
(deluded.toml) and a documented entry point (init.lua). If [path|name] is
omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Determine project name from directory basename
	name := filepath.Base(target)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "deluded-project"
	}

	// Create manifest file if not exists
	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	manifest := fmt.Sprintf(`[project]
name = %q
out = %q
`, name, project.DefaultOutDir)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}

	// Entry point with a documented sample class
	entryPath := filepath.Join(target, "init.lua")
	if _, err := os.Stat(entryPath); errors.Is(err, os.ErrNotExist) {
		entry := fmt.Sprintf(`---@class %s the project entry point
local M = {}

--- Says hello.
---@param who string
---@return string
function M.hello(who)
    return "hello " .. who
end

return M
`, strings.ToUpper(name[:1])+name[1:])
		if err := os.WriteFile(entryPath, []byte(entry), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", entryPath, err)
		}
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\ncreated %s\n", manifestPath, entryPath)
	}
	return nil
}
