package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"deluded/internal/ast"
	"deluded/internal/diag"
	"deluded/internal/driver"
	"deluded/internal/parser"
	"deluded/internal/source"
)

const maxDiags = 64

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExtractFile(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("car.lua", []byte(
		"---@class Car\n--- A fast car.\nlocal Car = {}\n\n---@param self Car\nfunction Car:drive() end\n"))

	doc := driver.ExtractFile(fs, id, maxDiags)
	if len(doc.Blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(doc.Blocks))
	}

	first := doc.Blocks[0]
	if len(first.Parts) != 2 {
		t.Fatalf("parts = %d, want 2", len(first.Parts))
	}
	ap, ok := first.Parts[0].(parser.AttrPart)
	if !ok {
		t.Fatalf("expected attribute, got %T", first.Parts[0])
	}
	cls, ok := ap.Attr.(ast.Class)
	if !ok {
		t.Fatalf("expected Class, got %T", ap.Attr)
	}
	if cls.Type != (ast.Single{Name: "Car"}) {
		t.Errorf("class type = %#v", cls.Type)
	}
	if _, ok := first.Parts[1].(parser.Markdown); !ok {
		t.Errorf("expected markdown, got %T", first.Parts[1])
	}
	if doc.Bag.HasWarnings() {
		t.Errorf("unexpected diagnostics: %+v", doc.Bag.Items())
	}
}

func TestExtractFileUnknownTagWarns(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.lua", []byte("---@frobnicate hard\nlocal x = 1\n"))

	doc := driver.ExtractFile(fs, id, maxDiags)
	if !doc.Bag.HasWarnings() {
		t.Fatal("expected a warning for unknown tag")
	}
	d := doc.Bag.Items()[0]
	if d.Code != diag.DocUnknownTag {
		t.Errorf("code = %v", d.Code)
	}
}

func TestExtractDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.lua"), "---@type string\nlocal a\n")
	writeFile(t, filepath.Join(dir, "sub", "b.lua"), "---@return number\nlocal function f() end\n")
	writeFile(t, filepath.Join(dir, "ignore.txt"), "not lua\n")

	fileSet, docs, err := driver.ExtractDir(context.Background(), dir, maxDiags, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fileSet.Len() != 2 {
		t.Errorf("loaded files = %d, want 2", fileSet.Len())
	}
	if len(docs) != 2 {
		t.Fatalf("docs = %d, want 2", len(docs))
	}
	// сортировка по пути: a.lua раньше sub/b.lua
	if filepath.Base(docs[0].Path) != "a.lua" {
		t.Errorf("docs[0].Path = %q", docs[0].Path)
	}
	for _, doc := range docs {
		if len(doc.Blocks) != 1 {
			t.Errorf("%s: blocks = %d, want 1", doc.Path, len(doc.Blocks))
		}
	}
}

func TestExtractDirEmpty(t *testing.T) {
	_, docs, err := driver.ExtractDir(context.Background(), t.TempDir(), maxDiags, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("docs = %d, want 0", len(docs))
	}
}

func TestExtractDirCancelled(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.lua", "b.lua", "c.lua"} {
		writeFile(t, filepath.Join(dir, name), "---@type string\n")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := driver.ExtractDir(ctx, dir, maxDiags, 1)
	if err == nil {
		t.Error("expected context error")
	}
}
