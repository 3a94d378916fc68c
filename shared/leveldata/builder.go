package leveldata

import "strings"

// Builder authors a grid of cell codes programmatically.
type Builder struct {
	width, height int
	cells         [][]Code
}

// NewBuilder creates a width by height grid filled with empty cells.
func NewBuilder(width, height int) *Builder {
	cells := make([][]Code, height)
	for y := range cells {
		row := make([]Code, width)
		for x := range row {
			row[x] = CodeEmpty
		}
		cells[y] = row
	}
	return &Builder{width: width, height: height, cells: cells}
}

// Set writes one cell. Writes outside the grid are ignored.
func (b *Builder) Set(x, y int, c Code) *Builder {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return b
	}
	b.cells[y][x] = c
	return b
}

// Fill writes a w by h block of cells starting at (x, y).
func (b *Builder) Fill(x, y, w, h int, c Code) *Builder {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.Set(xx, yy, c)
		}
	}
	return b
}

// Span writes cells x0..x1 inclusive on row y.
func (b *Builder) Span(x0, x1, y int, c Code) *Builder {
	return b.Fill(x0, y, x1-x0+1, 1, c)
}

// Border walls off the outermost ring of cells.
func (b *Builder) Border() *Builder {
	b.Fill(0, 0, b.width, 1, CodeWall)
	b.Fill(0, b.height-1, b.width, 1, CodeWall)
	b.Fill(0, 0, 1, b.height, CodeWall)
	b.Fill(b.width-1, 0, 1, b.height, CodeWall)
	return b
}

// Grid returns the authoring grid, one string per row.
func (b *Builder) Grid() []string {
	rows := make([]string, b.height)
	var sb strings.Builder
	for y, row := range b.cells {
		sb.Reset()
		for _, c := range row {
			sb.WriteRune(rune(c))
		}
		rows[y] = sb.String()
	}
	return rows
}
