package docfmt

import (
	"encoding/json"
	"io"

	"deluded/internal/ast"
	"deluded/internal/diag"
	"deluded/internal/driver"
	"deluded/internal/parser"
	"deluded/internal/source"
)

// TypeJSON представляет тип с дискриминатором kind
type TypeJSON struct {
	Kind string     `json:"kind"` // "single" | "fun" | "union"
	Name string     `json:"name,omitempty"`
	Args []ArgJSON  `json:"args,omitempty"`
	Ret  *TypeJSON  `json:"ret,omitempty"`
	Alts []TypeJSON `json:"alts,omitempty"`
}

// ArgJSON представляет аргумент функционального типа
type ArgJSON struct {
	Name string   `json:"name"`
	Type TypeJSON `json:"type"`
}

// AttrJSON представляет атрибут с дискриминатором kind
type AttrJSON struct {
	Kind       string     `json:"kind"`
	Name       string     `json:"name,omitempty"`
	Type       *TypeJSON  `json:"type,omitempty"`
	Parent     *TypeJSON  `json:"parent,omitempty"`
	Visibility string     `json:"visibility,omitempty"`
	Generics   []AttrJSON `json:"generics,omitempty"`
	Text       string     `json:"text,omitempty"`
	Comment    string     `json:"comment,omitempty"`
}

// PartJSON is either markdown text or a structured attribute.
type PartJSON struct {
	Markdown *string   `json:"markdown,omitempty"`
	Attr     *AttrJSON `json:"attr,omitempty"`
}

// BlockJSON представляет один блок документации
type BlockJSON struct {
	Start uint32     `json:"start"`
	End   uint32     `json:"end"`
	Parts []PartJSON `json:"parts"`
}

// FileDocJSON представляет документацию одного файла
type FileDocJSON struct {
	Path        string           `json:"path"`
	Blocks      []BlockJSON      `json:"blocks"`
	Diagnostics []DiagnosticJSON `json:"diagnostics,omitempty"`
}

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DocsOutput представляет корневую структуру JSON вывода
type DocsOutput struct {
	Files []FileDocJSON `json:"files"`
}

// FormatDocsJSON пишет документацию всех файлов одним JSON документом
func FormatDocsJSON(w io.Writer, docs []driver.FileDoc, fs *source.FileSet, opts JSONOpts) error {
	out := DocsOutput{Files: make([]FileDocJSON, 0, len(docs))}
	for _, doc := range docs {
		fd := FileDocJSON{Path: doc.Path, Blocks: make([]BlockJSON, 0, len(doc.Blocks))}
		for _, block := range doc.Blocks {
			bj := BlockJSON{Start: block.Span.Start, End: block.Span.End}
			for _, part := range block.Parts {
				bj.Parts = append(bj.Parts, partJSON(part))
			}
			fd.Blocks = append(fd.Blocks, bj)
		}
		if doc.Bag != nil {
			fd.Diagnostics = diagnosticsJSON(doc.Bag, fs, opts)
		}
		out.Files = append(out.Files, fd)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// FormatDiagnosticsJSON пишет только диагностики
func FormatDiagnosticsJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(diagnosticsJSON(bag, fs, opts))
}

func diagnosticsJSON(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) []DiagnosticJSON {
	var out []DiagnosticJSON
	for _, d := range bag.Items() {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: locationJSON(d.Primary, fs, opts),
		}
		for _, note := range d.Notes {
			dj.Notes = append(dj.Notes, NoteJSON{
				Message:  note.Msg,
				Location: locationJSON(note.Span, fs, opts),
			})
		}
		out = append(out, dj)
	}
	return out
}

func locationJSON(sp source.Span, fs *source.FileSet, opts JSONOpts) LocationJSON {
	loc := LocationJSON{StartByte: sp.Start, EndByte: sp.End}
	if int(sp.File) >= fs.Len() {
		return loc
	}
	loc.File = displayPath(fs.Get(sp.File).Path, fs, opts.PathMode)
	if opts.IncludePositions {
		start, _ := fs.Resolve(sp)
		loc.StartLine = start.Line
		loc.StartCol = start.Col
	}
	return loc
}

func partJSON(part parser.Part) PartJSON {
	switch p := part.(type) {
	case parser.Markdown:
		text := p.Text
		return PartJSON{Markdown: &text}
	case parser.AttrPart:
		aj := attrJSON(p.Attr)
		return PartJSON{Attr: &aj}
	}
	return PartJSON{}
}

func attrJSON(a ast.Attr) AttrJSON {
	switch at := a.(type) {
	case ast.Class:
		out := AttrJSON{Kind: "class", Type: typeJSONPtr(at.Type), Comment: at.Comment}
		if at.Parent != nil {
			out.Parent = typeJSONPtr(at.Parent)
		}
		return out
	case ast.TypeAttr:
		return AttrJSON{Kind: "type", Type: typeJSONPtr(at.Type), Comment: at.Comment}
	case ast.Alias:
		return AttrJSON{Kind: "alias", Name: at.NewName, Type: typeJSONPtr(at.OldType)}
	case ast.Param:
		return AttrJSON{Kind: "param", Name: at.Name, Type: typeJSONPtr(at.Type), Comment: at.Comment}
	case ast.Return:
		return AttrJSON{Kind: "return", Type: typeJSONPtr(at.Type), Comment: at.Comment}
	case ast.Field:
		return AttrJSON{
			Kind: "field", Name: at.Name, Type: typeJSONPtr(at.Type),
			Visibility: at.Vis.String(), Comment: at.Comment,
		}
	case ast.Generics:
		out := AttrJSON{Kind: "generic"}
		for _, g := range at.List {
			gj := AttrJSON{Kind: "generic_param", Name: g.Name}
			if g.Type != nil {
				gj.Type = typeJSONPtr(g.Type)
			}
			out.Generics = append(out.Generics, gj)
		}
		return out
	case ast.VarArg:
		return AttrJSON{Kind: "vararg", Type: typeJSONPtr(at.Type)}
	case ast.Lang:
		return AttrJSON{Kind: "lang", Name: at.Name}
	case ast.See:
		return AttrJSON{Kind: "see", Text: at.Text}
	case ast.Unknown:
		return AttrJSON{Kind: "unknown", Text: at.Raw}
	}
	return AttrJSON{Kind: "unknown"}
}

func typeJSONPtr(t ast.Type) *TypeJSON {
	tj := typeJSON(t)
	return &tj
}

func typeJSON(t ast.Type) TypeJSON {
	switch ty := t.(type) {
	case ast.Single:
		return TypeJSON{Kind: "single", Name: ty.Name}
	case ast.Fun:
		out := TypeJSON{Kind: "fun", Ret: typeJSONPtr(ty.Ret)}
		for _, arg := range ty.Args {
			out.Args = append(out.Args, ArgJSON{Name: arg.Name, Type: typeJSON(arg.Type)})
		}
		return out
	case ast.Union:
		out := TypeJSON{Kind: "union"}
		for _, alt := range ty.Alts {
			out.Alts = append(out.Alts, typeJSON(alt))
		}
		return out
	}
	return TypeJSON{Kind: "single", Name: "any"}
}
