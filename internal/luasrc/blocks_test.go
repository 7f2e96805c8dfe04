package luasrc_test

import (
	"reflect"
	"testing"

	"deluded/internal/luasrc"
	"deluded/internal/source"
)

func blocksOf(t *testing.T, content string) []luasrc.Block {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lua", []byte(content))
	return luasrc.Blocks(fs.Get(id))
}

func TestBlocksGroupsConsecutiveDocLines(t *testing.T) {
	content := "---@class Car\n--- A car.\nlocal Car = {}\n"
	blocks := blocksOf(t, content)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	want := []string{"@class Car", "A car."}
	if !reflect.DeepEqual(blocks[0].Lines, want) {
		t.Errorf("lines = %#v, want %#v", blocks[0].Lines, want)
	}
}

func TestBlocksSplitOnCode(t *testing.T) {
	content := "---@class Car\nlocal Car = {}\n---@class Bike\n"
	blocks := blocksOf(t, content)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Lines[0] != "@class Car" || blocks[1].Lines[0] != "@class Bike" {
		t.Errorf("unexpected blocks: %#v", blocks)
	}
}

// Plain '--' comments are not doc lines and break a block.
func TestBlocksIgnorePlainComments(t *testing.T) {
	content := "-- not a doc comment\n---@type string\n-- separator\n--- prose\n"
	blocks := blocksOf(t, content)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Lines[0] != "@type string" {
		t.Errorf("unexpected first block: %#v", blocks[0])
	}
	if blocks[1].Lines[0] != "prose" {
		t.Errorf("unexpected second block: %#v", blocks[1])
	}
}

func TestBlocksIndentedDocLines(t *testing.T) {
	content := "  ---@field x number\n\t---@field y number\n"
	blocks := blocksOf(t, content)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	want := []string{"@field x number", "@field y number"}
	if !reflect.DeepEqual(blocks[0].Lines, want) {
		t.Errorf("lines = %#v, want %#v", blocks[0].Lines, want)
	}
}

// Only one space after the marker is consumed, keeping indented markdown intact.
func TestBlocksStripSingleSpace(t *testing.T) {
	blocks := blocksOf(t, "---  indented code sample\n")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Lines[0] != " indented code sample" {
		t.Errorf("unexpected body %q", blocks[0].Lines[0])
	}
}

func TestBlocksSpanCoversRun(t *testing.T) {
	content := "local x = 1\n---@class Car\n--- desc\n"
	blocks := blocksOf(t, content)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	sp := blocks[0].Span
	if got := content[sp.Start:sp.End]; got != "---@class Car\n--- desc" {
		t.Errorf("span covers %q", got)
	}
}

func TestBlocksEmptyAndNoDocs(t *testing.T) {
	if blocks := blocksOf(t, ""); len(blocks) != 0 {
		t.Errorf("expected no blocks for empty file, got %d", len(blocks))
	}
	if blocks := blocksOf(t, "local x = 1\nreturn x\n"); len(blocks) != 0 {
		t.Errorf("expected no blocks for plain code, got %d", len(blocks))
	}
}
