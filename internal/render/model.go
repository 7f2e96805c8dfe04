// Package render turns classified documentation into static HTML pages.
// The data model mirrors what templates need and nothing more; building it
// from parser output is kept separate from template execution so both sides
// stay testable.
package render

import (
	"strings"

	"deluded/internal/ast"
	"deluded/internal/parser"
)

// ModuleSource is the input for one module page: the classified doc blocks of
// the module's root file plus nested modules.
type ModuleSource struct {
	Name     string
	Blocks   [][]parser.Part
	Children []ModuleSource
}

// Export is one documented item on a module page.
type Export struct {
	Kind   string // "class" | "function" | "variable" | "alias"
	Name   string
	Detail string   // rendered signature or type
	Desc   string   // markdown lines of the block, joined
	Fields []string // class fields, one rendered line each
}

// ModuleData feeds the module template.
type ModuleData struct {
	Name     string
	Title    string
	Slug     string
	Exports  []Export
	Children []ModuleData
}

// ProjectData feeds the index template.
type ProjectData struct {
	Name    string
	Readme  string
	Modules []ModuleData
}

// BuildProject maps extracted documentation onto template data. The root
// module's own exports land on the index page; every module, nested ones
// included, gets its own page.
func BuildProject(name, readme string, root ModuleSource) ProjectData {
	rootData := buildModule(root)
	return ProjectData{
		Name:    name,
		Readme:  readme,
		Modules: rootData.Children,
	}
}

// BuildModule maps one module subtree onto template data.
func BuildModule(src ModuleSource) ModuleData {
	return buildModule(src)
}

func buildModule(src ModuleSource) ModuleData {
	m := ModuleData{
		Name:  src.Name,
		Title: Title(src.Name),
		Slug:  Slug(src.Name),
	}
	for _, block := range src.Blocks {
		if exp, ok := buildExport(block); ok {
			m.Exports = append(m.Exports, exp)
		}
	}
	for _, child := range src.Children {
		m.Children = append(m.Children, buildModule(child))
	}
	return m
}

// buildExport classifies a doc block by its leading attribute: a class block
// collects fields, a block with params or returns describes a function, a
// bare type annotation describes a variable. Prose-only blocks are dropped.
func buildExport(parts []parser.Part) (Export, bool) {
	var (
		exp      Export
		prose    []string
		params   []ast.Param
		ret      ast.Type
		variadic ast.Type
	)

	for _, part := range parts {
		switch p := part.(type) {
		case parser.Markdown:
			if strings.TrimSpace(p.Text) != "" {
				prose = append(prose, p.Text)
			}
		case parser.AttrPart:
			switch at := p.Attr.(type) {
			case ast.Class:
				exp.Kind = "class"
				exp.Name = at.Type.String()
				if at.Parent != nil {
					exp.Detail = ": " + at.Parent.String()
				}
				if at.Comment != "" {
					prose = append(prose, at.Comment)
				}
			case ast.Field:
				line := at.Name + ": " + at.Type.String()
				if at.Vis != ast.VisPublic {
					line = at.Vis.String() + " " + line
				}
				exp.Fields = append(exp.Fields, line)
			case ast.Param:
				params = append(params, at)
			case ast.Return:
				ret = at.Type
			case ast.VarArg:
				variadic = at.Type
			case ast.TypeAttr:
				if exp.Kind == "" {
					exp.Kind = "variable"
					exp.Detail = at.Type.String()
					if at.Comment != "" {
						prose = append(prose, at.Comment)
					}
				}
			case ast.Alias:
				exp.Kind = "alias"
				exp.Name = at.NewName
				exp.Detail = at.OldType.String()
			}
		}
	}

	if exp.Kind == "" {
		if len(params) == 0 && ret == nil && variadic == nil {
			return Export{}, false
		}
		exp.Kind = "function"
		exp.Detail = funSignature(params, ret, variadic)
	}
	exp.Desc = strings.Join(prose, "\n")
	return exp, true
}

func funSignature(params []ast.Param, ret, variadic ast.Type) string {
	var b strings.Builder
	b.WriteString("fun(")
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Type.String())
	}
	if variadic != nil {
		if len(params) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...: ")
		b.WriteString(variadic.String())
	}
	b.WriteString(")")
	if ret != nil {
		b.WriteString(": ")
		b.WriteString(ret.String())
	}
	return b.String()
}
