// Package ui holds the interactive terminal frontend: a browser over the
// extracted documentation tree.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"deluded/internal/render"
)

var (
	browseTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	browseKindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	browseDetailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	browseDescStyle   = lipgloss.NewStyle().Faint(true)
)

type moduleItem struct {
	module render.ModuleData
}

func (i moduleItem) Title() string { return i.module.Title }
func (i moduleItem) Description() string {
	return fmt.Sprintf("%d exports, %d submodules", len(i.module.Exports), len(i.module.Children))
}
func (i moduleItem) FilterValue() string { return i.module.Name }

type browseModel struct {
	project render.ProjectData
	modules list.Model
	// selected указывает на открытый модуль, nil — список модулей
	selected *render.ModuleData
	width    int
	height   int
}

// NewBrowseModel returns a Bubble Tea model that navigates a project: a list
// of modules, with enter opening a module's exports and esc going back.
func NewBrowseModel(project render.ProjectData) tea.Model {
	items := make([]list.Item, 0, len(project.Modules))
	for _, mod := range flattenModules(project.Modules) {
		items = append(items, moduleItem{module: mod})
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = project.Name
	return &browseModel{project: project, modules: l, width: 80, height: 24}
}

func flattenModules(mods []render.ModuleData) []render.ModuleData {
	var out []render.ModuleData
	for _, m := range mods {
		out = append(out, m)
		out = append(out, flattenModules(m.Children)...)
	}
	return out
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.modules.SetSize(msg.Width, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.selected != nil {
				m.selected = nil
				return m, nil
			}
			return m, tea.Quit
		case "enter":
			if m.selected == nil {
				if item, ok := m.modules.SelectedItem().(moduleItem); ok {
					mod := item.module
					m.selected = &mod
				}
				return m, nil
			}
		}
	}

	if m.selected == nil {
		var cmd tea.Cmd
		m.modules, cmd = m.modules.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browseModel) View() string {
	if m.selected == nil {
		return m.modules.View()
	}
	return m.moduleView(*m.selected)
}

func (m *browseModel) moduleView(mod render.ModuleData) string {
	var b strings.Builder
	b.WriteString(browseTitleStyle.Render(mod.Title))
	b.WriteString("\n\n")

	if len(mod.Exports) == 0 {
		b.WriteString(browseDescStyle.Render("  no documented exports"))
		b.WriteString("\n")
	}
	for _, exp := range mod.Exports {
		kind := runewidth.FillRight(exp.Kind, 9)
		b.WriteString("  ")
		b.WriteString(browseKindStyle.Render(kind))
		if exp.Name != "" {
			b.WriteString(" ")
			b.WriteString(exp.Name)
		}
		if exp.Detail != "" {
			b.WriteString(" ")
			b.WriteString(browseDetailStyle.Render(truncate(exp.Detail, m.width-16)))
		}
		b.WriteString("\n")
		for _, field := range exp.Fields {
			b.WriteString("      ")
			b.WriteString(browseDescStyle.Render(field))
			b.WriteString("\n")
		}
		if exp.Desc != "" {
			for _, line := range strings.Split(exp.Desc, "\n") {
				b.WriteString("      ")
				b.WriteString(browseDescStyle.Render(truncate(line, m.width-8)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(browseDescStyle.Render("esc: back  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// truncate обрезает строку по видимой ширине
func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// RunBrowse starts the interactive browser on the current terminal.
func RunBrowse(project render.ProjectData) error {
	_, err := tea.NewProgram(NewBrowseModel(project), tea.WithAltScreen()).Run()
	return err
}
