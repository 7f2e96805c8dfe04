// Package project locates deluded.toml manifests and maps a directory of Lua
// sources onto the module tree that documentation is generated for.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "deluded.toml"

// DefaultOutDir is used when [project].out is absent.
const DefaultOutDir = "out_dir"

// Manifest describes a project's deluded.toml [project] section.
type Manifest struct {
	Name    string
	Readme  string
	Out     string
	Exclude []string
}

var (
	// ErrProjectSectionMissing indicates that [project] is missing in a manifest.
	ErrProjectSectionMissing = errors.New("missing [project]")
	// ErrProjectNameMissing indicates that [project].name is missing or empty.
	ErrProjectNameMissing = errors.New("missing [project].name")
)

type manifestFile struct {
	Project struct {
		Name    string   `toml:"name"`
		Readme  string   `toml:"readme"`
		Out     string   `toml:"out"`
		Exclude []string `toml:"exclude"`
	} `toml:"project"`
}

// LoadManifest parses a deluded.toml [project] section.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrProjectSectionMissing)
	}
	name := strings.TrimSpace(cfg.Project.Name)
	if !meta.IsDefined("project", "name") || name == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrProjectNameMissing)
	}
	out := strings.TrimSpace(cfg.Project.Out)
	if out == "" {
		out = DefaultOutDir
	}
	return Manifest{
		Name:    name,
		Readme:  strings.TrimSpace(cfg.Project.Readme),
		Out:     out,
		Exclude: cfg.Project.Exclude,
	}, nil
}

// FindManifest walks up from startDir to locate deluded.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindProjectRoot returns the directory containing deluded.toml, if any.
func FindProjectRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}
