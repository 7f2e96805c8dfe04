package docfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"deluded/internal/ast"
	"deluded/internal/diag"
	"deluded/internal/driver"
	"deluded/internal/parser"
	"deluded/internal/source"
)

var (
	fileColor    = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgGreen)
	typeColor    = color.New(color.FgYellow)
	commentColor = color.New(color.Faint)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgBlue)
)

// labelWidth выравнивает метки атрибутов в колонку
const labelWidth = 10

// FormatDocsPretty prints classified doc blocks per file.
// Идёт по docs в порядке, который вернул драйвер (отсортирован по пути).
func FormatDocsPretty(w io.Writer, docs []driver.FileDoc, fs *source.FileSet, opts PrettyOpts) {
	color.NoColor = !opts.Color

	for _, doc := range docs {
		fileColor.Fprintln(w, displayPath(doc.Path, fs, opts.PathMode))
		for _, block := range doc.Blocks {
			if opts.ShowSpans {
				fmt.Fprintf(w, "  block %d-%d\n", block.Span.Start, block.Span.End)
			}
			for _, part := range block.Parts {
				printPart(w, part)
			}
			fmt.Fprintln(w)
		}
	}
}

func printPart(w io.Writer, part parser.Part) {
	switch p := part.(type) {
	case parser.Markdown:
		commentColor.Fprintf(w, "  %s\n", p.Text)
	case parser.AttrPart:
		label, detail, comment := attrPieces(p.Attr)
		pad := runewidth.FillRight(label, labelWidth)
		fmt.Fprint(w, "  ")
		labelColor.Fprint(w, pad)
		if detail != "" {
			fmt.Fprint(w, " ")
			typeColor.Fprint(w, detail)
		}
		if comment != "" {
			fmt.Fprint(w, " ")
			commentColor.Fprint(w, comment)
		}
		fmt.Fprintln(w)
	}
}

// attrPieces разбивает атрибут на метку, типовую часть и комментарий
func attrPieces(a ast.Attr) (label, detail, comment string) {
	switch at := a.(type) {
	case ast.Class:
		detail = at.Type.String()
		if at.Parent != nil {
			detail += " : " + at.Parent.String()
		}
		return "class", detail, at.Comment
	case ast.TypeAttr:
		return "type", at.Type.String(), at.Comment
	case ast.Alias:
		return "alias", at.NewName + " = " + at.OldType.String(), ""
	case ast.Param:
		return "param", at.Name + ": " + at.Type.String(), at.Comment
	case ast.Return:
		return "return", at.Type.String(), at.Comment
	case ast.Field:
		detail = at.Name + ": " + at.Type.String()
		if at.Vis != ast.VisPublic {
			detail = at.Vis.String() + " " + detail
		}
		return "field", detail, at.Comment
	case ast.Generics:
		parts := make([]string, 0, len(at.List))
		for _, g := range at.List {
			if g.Type != nil {
				parts = append(parts, g.Name+": "+g.Type.String())
			} else {
				parts = append(parts, g.Name)
			}
		}
		return "generic", strings.Join(parts, ", "), ""
	case ast.VarArg:
		return "vararg", at.Type.String(), ""
	case ast.Lang:
		return "lang", at.Name, ""
	case ast.See:
		return "see", "", at.Text
	case ast.Unknown:
		return "unknown", at.Raw, ""
	}
	return "?", "", ""
}

// FormatDiagnosticsPretty prints bag items as
// <path>:<line>:<col>: <SEV> <CODE>: <Message> followed by notes.
// Ожидается bag.Sort() заранее.
func FormatDiagnosticsPretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	color.NoColor = !opts.Color

	for _, d := range bag.Items() {
		loc := formatLocation(d.Primary, fs, opts.PathMode)
		fmt.Fprintf(w, "%s: ", loc)
		sevColor(d.Severity).Fprint(w, d.Severity.String())
		fmt.Fprintf(w, " %s: %s\n", d.Code.ID(), d.Message)
		for _, note := range d.Notes {
			fmt.Fprintf(w, "  note: %s: %s\n", formatLocation(note.Span, fs, opts.PathMode), note.Msg)
		}
	}
}

func sevColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func formatLocation(sp source.Span, fs *source.FileSet, mode PathMode) string {
	if int(sp.File) >= fs.Len() {
		return "<unknown>"
	}
	file := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", displayPath(file.Path, fs, mode), start.Line, start.Col)
}

func displayPath(path string, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAbsolute:
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		return abs
	case PathModeRelative, PathModeAuto:
		if base := fs.BaseDir(); base != "" {
			if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(rel, "..") {
				return rel
			}
		}
		return path
	}
	return path
}
