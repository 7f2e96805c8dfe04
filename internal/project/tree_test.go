package project_test

import (
	"path/filepath"
	"testing"

	"deluded/internal/project"
)

func TestBuildTree(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "mylib")
	writeFile(t, filepath.Join(dir, "init.lua"), "---@class Lib\nlocal Lib = {}\n")
	writeFile(t, filepath.Join(dir, "util.lua"), "local u = {}\n")
	writeFile(t, filepath.Join(dir, "net", "net.lua"), "local n = {}\n")
	writeFile(t, filepath.Join(dir, "net", "http.lua"), "local h = {}\n")
	// каталог без корневого файла не считается модулем
	writeFile(t, filepath.Join(dir, "scratch", "notes.lua"), "x\n")
	// не-lua файлы игнорируются
	writeFile(t, filepath.Join(dir, "README.md"), "hi\n")

	m, err := project.BuildTree(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "mylib" {
		t.Errorf("name = %q", m.Name)
	}
	if m.Root != filepath.Join(dir, "init.lua") {
		t.Errorf("root = %q", m.Root)
	}
	if len(m.Modules) != 2 {
		t.Fatalf("children = %d, want 2 (%+v)", len(m.Modules), m.Modules)
	}
	// отсортированы по имени
	if m.Modules[0].Name != "net" || m.Modules[1].Name != "util" {
		t.Errorf("unexpected order: %q, %q", m.Modules[0].Name, m.Modules[1].Name)
	}

	net := m.Modules[0]
	if net.IsLeaf() {
		t.Error("net should be a directory module")
	}
	if net.Root != filepath.Join(dir, "net", "net.lua") {
		t.Errorf("net root = %q", net.Root)
	}
	if len(net.Modules) != 1 || net.Modules[0].Name != "http" {
		t.Errorf("net children = %+v", net.Modules)
	}
	if !net.Modules[0].IsLeaf() {
		t.Error("http should be a leaf")
	}
}

func TestBuildTreeRootFileExcluded(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "pkg")
	writeFile(t, filepath.Join(dir, "pkg.lua"), "local p = {}\n")
	writeFile(t, filepath.Join(dir, "extra.lua"), "local e = {}\n")

	m, err := project.BuildTree(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// pkg.lua служит корнем и не дублируется ребёнком
	if len(m.Modules) != 1 || m.Modules[0].Name != "extra" {
		t.Errorf("children = %+v", m.Modules)
	}
}

func TestBuildTreeExclude(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "lib")
	writeFile(t, filepath.Join(dir, "init.lua"), "\n")
	writeFile(t, filepath.Join(dir, "spec.lua"), "\n")

	m, err := project.BuildTree(dir, []string{"spec.lua"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Modules) != 0 {
		t.Errorf("children = %+v", m.Modules)
	}
}

func TestBuildTreeNoRoot(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "empty")
	writeFile(t, filepath.Join(dir, "random.lua"), "\n")
	if _, err := project.BuildTree(dir, nil); err == nil {
		t.Error("expected error for directory without a root file")
	}
}

func TestModuleWalk(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "lib")
	writeFile(t, filepath.Join(dir, "init.lua"), "\n")
	writeFile(t, filepath.Join(dir, "a.lua"), "\n")
	writeFile(t, filepath.Join(dir, "b.lua"), "\n")

	m, err := project.BuildTree(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var names []string
	m.Walk(func(mod project.Module) { names = append(names, mod.Name) })
	if len(names) != 3 || names[0] != "lib" {
		t.Errorf("walk order = %v", names)
	}
}
