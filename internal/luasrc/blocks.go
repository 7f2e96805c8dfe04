// Package luasrc recognizes EmmyLua doc comments in Lua source text. It is
// deliberately not a Lua lexer: the doc pipeline only needs the '---' runs,
// stripped of their comment markers, with byte spans back into the file.
package luasrc

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"deluded/internal/source"
)

// Block is one run of consecutive '---' doc lines attached to whatever
// declaration follows it.
type Block struct {
	// Lines holds each doc line's body with the '---' marker and one
	// optional following space stripped.
	Lines []string
	// Span covers the whole run within the file, markers included.
	Span source.Span
}

// Blocks scans a Lua file and groups consecutive '---' lines into blocks.
// Plain '--' comments and code lines terminate the current block.
func Blocks(f *source.File) []Block {
	var blocks []Block
	var current *Block

	flush := func() {
		if current != nil {
			blocks = append(blocks, *current)
			current = nil
		}
	}

	content := string(f.Content)
	offset := 0
	for offset <= len(content) {
		lineEnd := strings.IndexByte(content[offset:], '\n')
		var line string
		next := len(content) + 1
		if lineEnd >= 0 {
			line = content[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		} else {
			line = content[offset:]
		}

		body, indent, ok := docLine(line)
		if !ok {
			flush()
			offset = next
			continue
		}

		start, err := safecast.Conv[uint32](offset + indent)
		if err != nil {
			panic(fmt.Errorf("offset overflow: %w", err))
		}
		end, err := safecast.Conv[uint32](offset + len(line))
		if err != nil {
			panic(fmt.Errorf("offset overflow: %w", err))
		}
		span := source.Span{File: f.ID, Start: start, End: end}

		if current == nil {
			current = &Block{Span: span}
		} else {
			current.Span = current.Span.Cover(span)
		}
		current.Lines = append(current.Lines, body)
		offset = next
	}
	flush()
	return blocks
}

// docLine распознаёт строку '---...' и возвращает тело без маркера.
// Ровно один пробел после '---' тоже съедается.
func docLine(line string) (body string, indent int, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "---") {
		return "", 0, false
	}
	body = trimmed[3:]
	body = strings.TrimPrefix(body, " ")
	return body, len(line) - len(trimmed), true
}
