package dotbraille

import (
	"io"
	"strings"
)

// Lines renders each row of the grid as a string of braille symbols.
func (g *CellGrid) Lines() []string {
	lines := make([]string, 0, g.Rows)
	for row := 0; row < g.Rows; row++ {
		lines = append(lines, g.line(row))
	}
	return lines
}

func (g *CellGrid) line(row int) string {
	var b strings.Builder
	// Every braille symbol is three bytes of UTF-8.
	b.Grow(g.Cols * 3)
	for _, c := range g.Cells[row*g.Cols : (row+1)*g.Cols] {
		b.WriteRune(c.Rune())
	}
	return b.String()
}

// String returns the rendered grid with every row terminated by a line feed.
func (g *CellGrid) String() string {
	var b strings.Builder
	g.WriteTo(&b)
	return b.String()
}

// WriteTo writes the grid to w one row at a time, each followed by a line
// feed. A grid without rows writes nothing.
func (g *CellGrid) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for row := 0; row < g.Rows; row++ {
		n, err := io.WriteString(w, g.line(row)+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
