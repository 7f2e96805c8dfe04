package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"deluded/internal/render"
)

func demoProject() render.ProjectData {
	return render.ProjectData{
		Name: "demo",
		Modules: []render.ModuleData{
			{
				Name:  "car",
				Title: "Car",
				Slug:  "car",
				Exports: []render.Export{
					{Kind: "class", Name: "Car", Detail: ": Vehicle", Fields: []string{"speed: number"}},
				},
				Children: []render.ModuleData{
					{Name: "wheel", Title: "Wheel", Slug: "wheel"},
				},
			},
		},
	}
}

func TestBrowseListsModulesFlattened(t *testing.T) {
	m := NewBrowseModel(demoProject()).(*browseModel)
	if got := len(m.modules.Items()); got != 2 {
		t.Fatalf("items = %d, want 2 (nested modules flattened)", got)
	}
	first, ok := m.modules.Items()[0].(moduleItem)
	if !ok || first.module.Name != "car" {
		t.Errorf("first item = %#v", m.modules.Items()[0])
	}
}

func TestBrowseEnterOpensModule(t *testing.T) {
	m := NewBrowseModel(demoProject()).(*browseModel)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	bm := updated.(*browseModel)
	if bm.selected == nil {
		t.Fatal("enter did not open a module")
	}

	view := bm.View()
	for _, want := range []string{"Car", "class", ": Vehicle", "speed: number"} {
		if !strings.Contains(view, want) {
			t.Errorf("module view missing %q:\n%s", want, view)
		}
	}

	updated, _ = bm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if updated.(*browseModel).selected != nil {
		t.Error("esc did not go back to the module list")
	}
}

func TestBrowseQuitKeys(t *testing.T) {
	m := NewBrowseModel(demoProject()).(*browseModel)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if msg := cmd(); msg == nil {
		t.Error("expected quit message")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	got := truncate("a very long line of text", 10)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncate = %q, want ellipsis suffix", got)
	}
}
