package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var titleCaser = cases.Title(language.English)

// Title renders a module name as a page heading.
func Title(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

// Slug renders a module name as a file-name-safe identifier.
func Slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// PageName returns the output file name for a module page.
func PageName(slug string) string {
	return slug + ".html"
}

// Renderer executes the embedded HTML templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type indexContext struct {
	Project ProjectData
}

type moduleContext struct {
	Project ProjectData
	Module  ModuleData
}

// RenderIndex writes the project landing page.
func (r *Renderer) RenderIndex(w io.Writer, project ProjectData) error {
	return r.tmpl.ExecuteTemplate(w, "index.html.tmpl", indexContext{Project: project})
}

// RenderModule writes one module page.
func (r *Renderer) RenderModule(w io.Writer, project ProjectData, module ModuleData) error {
	return r.tmpl.ExecuteTemplate(w, "module.html.tmpl", moduleContext{Project: project, Module: module})
}
