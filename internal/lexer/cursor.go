package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в тексте комментария
type Cursor struct {
	src string
	off uint32
	// limit is the exclusive upper bound for off; equals len(src).
	limit uint32
}

// NewCursor creates a new cursor over the provided comment text.
func NewCursor(src string) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("comment length overflow: %w", err))
	}
	return Cursor{
		src:   src,
		off:   0,
		limit: limit,
	}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.off+1 >= c.limit {
		return 0, 0, false
	}
	return c.src[c.off], c.src[c.off+1], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.src[c.off] == b {
		c.off++
		return true
	}
	return false
}

// Mark это метка, что бы быстро получать срез читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SliceFrom возвращает срез исходного текста от метки до текущей позиции.
func (c *Cursor) SliceFrom(m Mark) string {
	return c.src[m:c.off]
}
