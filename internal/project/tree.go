package project

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Module is one node of the documentation tree. A directory is a module when
// it carries a root file, either init.lua or <dirname>.lua. Every other .lua
// file inside it becomes a leaf child.
type Module struct {
	Name    string
	Dir     string // absolute directory for directory modules, "" for leaves
	Root    string // absolute path of the module's own source file, if any
	Modules []Module
}

// IsLeaf reports whether the module is a single file rather than a directory.
func (m Module) IsLeaf() bool {
	return m.Dir == ""
}

// Walk calls fn for the module and all descendants, depth first.
func (m Module) Walk(fn func(Module)) {
	fn(m)
	for _, sub := range m.Modules {
		sub.Walk(fn)
	}
}

// BuildTree maps the directory at dir onto a module tree. Directories without
// a root file and names listed in exclude are skipped. Children are sorted by
// name so the tree is deterministic across platforms.
func BuildTree(dir string, exclude []string) (Module, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Module{}, fmt.Errorf("failed to resolve %q: %w", dir, err)
	}
	m, ok, err := buildDir(abs, exclude)
	if err != nil {
		return Module{}, err
	}
	if !ok {
		return Module{}, fmt.Errorf("%s: neither init.lua nor %s.lua found", abs, filepath.Base(abs))
	}
	return m, nil
}

func buildDir(dir string, exclude []string) (Module, bool, error) {
	name := filepath.Base(dir)
	m := Module{Name: name, Dir: dir}

	rootPath := filepath.Join(dir, "init.lua")
	if _, err := os.Stat(rootPath); err != nil {
		rootPath = filepath.Join(dir, name+".lua")
		if _, err := os.Stat(rootPath); err != nil {
			return Module{}, false, nil
		}
	}
	m.Root = rootPath

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Module{}, false, fmt.Errorf("failed to read %q: %w", dir, err)
	}
	for _, e := range entries {
		if slices.Contains(exclude, e.Name()) {
			continue
		}
		full := filepath.Join(dir, e.Name())
		if e.IsDir() {
			sub, ok, err := buildDir(full, exclude)
			if err != nil {
				return Module{}, false, err
			}
			if ok {
				m.Modules = append(m.Modules, sub)
			}
			continue
		}
		if filepath.Ext(e.Name()) != ".lua" || full == rootPath {
			continue
		}
		m.Modules = append(m.Modules, Module{
			Name: strings.TrimSuffix(e.Name(), ".lua"),
			Root: full,
		})
	}
	slices.SortFunc(m.Modules, func(a, b Module) int {
		return strings.Compare(a.Name, b.Name)
	})
	return m, true, nil
}
