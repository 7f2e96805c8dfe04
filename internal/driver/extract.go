// Package driver orchestrates the doc pipeline: it loads Lua files into a
// FileSet, splits them into doc blocks, classifies every block line and
// collects diagnostics. CLI commands talk to this package, never to the
// lexer or parser directly.
package driver

import (
	"fmt"

	"deluded/internal/ast"
	"deluded/internal/diag"
	"deluded/internal/luasrc"
	"deluded/internal/parser"
	"deluded/internal/source"
)

// BlockDoc is one classified doc block.
type BlockDoc struct {
	Span  source.Span
	Parts []parser.Part
}

// FileDoc содержит результат извлечения документации из одного файла
type FileDoc struct {
	Path   string        // Относительный путь к файлу
	FileID source.FileID // ID файла в FileSet
	Blocks []BlockDoc    // Классифицированные блоки
	Bag    *diag.Bag     // Диагностики
}

// ExtractFile classifies every doc block of an already loaded file. Unknown
// tags are reported as warnings; the block is kept with an Unknown attribute
// so formatters can still show it.
func ExtractFile(fileSet *source.FileSet, fileID source.FileID, maxDiagnostics int) FileDoc {
	file := fileSet.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	doc := FileDoc{
		Path:   file.Path,
		FileID: fileID,
		Bag:    bag,
	}

	for _, block := range luasrc.Blocks(file) {
		bd := BlockDoc{Span: block.Span}
		for _, line := range block.Lines {
			part := parser.Classify(line)
			bd.Parts = append(bd.Parts, part)
			if ap, ok := part.(parser.AttrPart); ok {
				if unk, ok := ap.Attr.(ast.Unknown); ok {
					diag.ReportWarning(reporter, diag.DocUnknownTag, block.Span,
						fmt.Sprintf("unknown tag %q", unk.Raw))
				}
			}
		}
		doc.Blocks = append(doc.Blocks, bd)
	}
	return doc
}
