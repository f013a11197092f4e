package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"pycheck/internal/source"
)

// cursor представляет собой позицию внутри одной физической строки.
// Сканер построчный, поэтому курсор никогда не пересекает границу строки.
type cursor struct {
	line   []byte
	off    int
	lineNo uint32
}

func newCursor(lineNo uint32, line []byte) cursor {
	return cursor{line: line, lineNo: lineNo}
}

// eof проверяет, достигнут ли конец строки
func (c *cursor) eof() bool {
	return c.off >= len(c.line)
}

// peek читает текущий байт, если есть, иначе возвращает 0
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.line[c.off]
}

// peekAt читает байт на смещении k от текущего, иначе 0
func (c *cursor) peekAt(k int) byte {
	if c.off+k >= len(c.line) {
		return 0
	}
	return c.line[c.off+k]
}

// bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.line[c.off]
	c.off++
	return b
}

// hasPrefix проверяет, начинается ли остаток строки с s
func (c *cursor) hasPrefix(s string) bool {
	if c.off+len(s) > len(c.line) {
		return false
	}
	return string(c.line[c.off:c.off+len(s)]) == s
}

// pos возвращает текущую позицию (1-based колонка в сырой строке)
func (c *cursor) pos() source.Pos {
	col, err := safecast.Conv[uint32](c.off + 1)
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return source.Pos{Line: c.lineNo, Col: col}
}

// mark это смещение, чтобы быстро получать текст читаемого фрагмента
type mark int

func (c *cursor) mark() mark {
	return mark(c.off)
}

func (c *cursor) textFrom(m mark) string {
	return string(c.line[int(m):c.off])
}

func (c *cursor) posAt(m mark) source.Pos {
	col, err := safecast.Conv[uint32](int(m) + 1)
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return source.Pos{Line: c.lineNo, Col: col}
}

// rest возвращает остаток строки от текущей позиции
func (c *cursor) rest() string {
	return string(c.line[c.off:])
}

// toLineEnd сдвигает курсор в конец строки
func (c *cursor) toLineEnd() {
	c.off = len(c.line)
}
