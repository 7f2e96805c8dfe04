package docfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"deluded/internal/docfmt"
	"deluded/internal/driver"
	"deluded/internal/source"
)

func extract(t *testing.T, content string) (*source.FileSet, []driver.FileDoc) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lua", []byte(content))
	return fs, []driver.FileDoc{driver.ExtractFile(fs, id, 16)}
}

func TestFormatTokensPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := docfmt.FormatTokensPretty(&buf, "@param name string"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Tag", "@param", "Atom", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := docfmt.FormatTokensJSON(&buf, "@type string|nil"); err != nil {
		t.Fatal(err)
	}
	var tokens []docfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &tokens); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if tokens[0].Kind != "Tag" || tokens[0].Tag != "type" {
		t.Errorf("first token = %+v", tokens[0])
	}
	last := tokens[len(tokens)-1]
	if last.Kind != "EOF" {
		t.Errorf("last token = %+v", last)
	}
}

func TestFormatDocsPretty(t *testing.T) {
	fs, docs := extract(t, "---@class Car : Vehicle fast\n--- Drives around.\n---@field private speed number\n")
	var buf bytes.Buffer
	docfmt.FormatDocsPretty(&buf, docs, fs, docfmt.PrettyOpts{})
	out := buf.String()
	for _, want := range []string{"test.lua", "class", "Car : Vehicle", "Drives around.", "field", "private speed: number"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatDocsJSON(t *testing.T) {
	fs, docs := extract(t, "---@param cb fun(x: number): nil|string called back\n")
	var buf bytes.Buffer
	if err := docfmt.FormatDocsJSON(&buf, docs, fs, docfmt.JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	var out docfmt.DocsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Files) != 1 || len(out.Files[0].Blocks) != 1 {
		t.Fatalf("unexpected structure: %+v", out)
	}
	attr := out.Files[0].Blocks[0].Parts[0].Attr
	if attr == nil || attr.Kind != "param" || attr.Name != "cb" {
		t.Fatalf("attr = %+v", attr)
	}
	if attr.Type.Kind != "fun" || attr.Type.Ret.Kind != "union" {
		t.Errorf("type = %+v", attr.Type)
	}
	if attr.Comment != "called back" {
		t.Errorf("comment = %q", attr.Comment)
	}
}

func TestFormatDiagnosticsJSON(t *testing.T) {
	fs, docs := extract(t, "---@frobnicate\n")
	var buf bytes.Buffer
	if err := docfmt.FormatDiagnosticsJSON(&buf, docs[0].Bag, fs, docfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	var out []docfmt.DiagnosticJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(out))
	}
	if out[0].Code != "DOC1001" || out[0].Severity != "WARNING" {
		t.Errorf("diagnostic = %+v", out[0])
	}
	if out[0].Location.StartLine != 1 {
		t.Errorf("location = %+v", out[0].Location)
	}
}

func TestFormatDiagnosticsPretty(t *testing.T) {
	fs, docs := extract(t, "---@frobnicate\n")
	var buf bytes.Buffer
	docfmt.FormatDiagnosticsPretty(&buf, docs[0].Bag, fs, docfmt.PrettyOpts{})
	out := buf.String()
	if !strings.Contains(out, "WARNING DOC1001") {
		t.Errorf("output missing severity/code:\n%s", out)
	}
	if !strings.Contains(out, "test.lua:1:") {
		t.Errorf("output missing location:\n%s", out)
	}
}
