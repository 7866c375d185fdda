// Package maze generates toroidal corridor mazes and answers wall queries.
// A Maze never changes after construction.
package maze

import (
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/rats/torus"
)

// Maze is an immutable wall buffer. Coordinates wrap on both axes.
type Maze struct {
	dims   torus.Dimensions
	buffer []rune

	// cell grid, nil for parsed layouts
	cellRows, cellCols int
	cells              []cell
}

// Parse builds a maze from fixed text rows; any non-space rune is a wall.
// Short rows are padded with open cells.
func Parse(lines []string) *Maze {
	if len(lines) == 0 {
		panic("maze: empty layout")
	}
	cols := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > cols {
			cols = n
		}
	}
	if cols == 0 {
		panic("maze: empty layout")
	}

	m := &Maze{dims: torus.Dimensions{Rows: len(lines), Cols: cols}}
	m.buffer = make([]rune, m.dims.Rows*cols)
	for i := range m.buffer {
		m.buffer[i] = Open
	}
	for row, line := range lines {
		col := 0
		for _, ch := range line {
			m.buffer[row*cols+col] = ch
			col++
		}
	}
	return m
}

// Dimensions returns the size in characters
func (m *Maze) Dimensions() torus.Dimensions {
	return m.dims
}

// Rows returns the character row count
func (m *Maze) Rows() int { return m.dims.Rows }

// Cols returns the character column count
func (m *Maze) Cols() int { return m.dims.Cols }

// Rune returns the glyph at a wrapped position
func (m *Maze) Rune(row, col int) rune {
	row = torus.Wrap(row, m.dims.Rows)
	col = torus.Wrap(col, m.dims.Cols)
	return m.buffer[row*m.dims.Cols+col]
}

// IsWall reports whether the character at (row, col) blocks movement
func (m *Maze) IsWall(row, col int) bool {
	return m.Rune(row, col) != Open
}

// IsWallAt is IsWall for a Position
func (m *Maze) IsWallAt(p torus.Position) bool {
	return m.IsWall(p.Row, p.Col)
}

// IsWallQuad reports whether any cell of the 2x2 block at (row, col) is a wall
func (m *Maze) IsWallQuad(row, col int) bool {
	return m.IsWall(row, col) || m.IsWall(row, col+1) ||
		m.IsWall(row+1, col) || m.IsWall(row+1, col+1)
}

// Buffer returns a copy of the wall buffer in row-major order
func (m *Maze) Buffer() []rune {
	out := make([]rune, len(m.buffer))
	copy(out, m.buffer)
	return out
}

// Lines renders the buffer as text rows, substituting wall glyphs when ascii is set
func (m *Maze) Lines(ascii bool) []string {
	lines := make([]string, m.dims.Rows)
	var sb strings.Builder
	for row := 0; row < m.dims.Rows; row++ {
		sb.Reset()
		for col := 0; col < m.dims.Cols; col++ {
			ch := m.buffer[row*m.dims.Cols+col]
			if ascii && ch != Open {
				ch = asciiWall(ch)
			}
			sb.WriteRune(ch)
		}
		lines[row] = sb.String()
	}
	return lines
}

func asciiWall(ch rune) rune {
	switch ch {
	case Horizontal:
		return '-'
	case Vertical:
		return '|'
	default:
		return '+'
	}
}

// CellGrid returns the generated cell grid size; zero for parsed layouts
func (m *Maze) CellGrid() (rows, cols int) {
	return m.cellRows, m.cellCols
}

// Cell returns the wall flags of a generated cell
func (m *Maze) Cell(row, col int) (top, left bool) {
	c := m.cells[torus.Wrap(row, m.cellRows)*m.cellCols+torus.Wrap(col, m.cellCols)]
	return c.top, c.left
}

// Openings counts inter-cell edges without a wall
func (m *Maze) Openings() int {
	n := 0
	for _, c := range m.cells {
		if !c.top {
			n++
		}
		if !c.left {
			n++
		}
	}
	return n
}

// OpenCount returns the number of open characters
func (m *Maze) OpenCount() int {
	n := 0
	for _, ch := range m.buffer {
		if ch == Open {
			n++
		}
	}
	return n
}

// Reachable counts open characters connected to start by orthogonal steps,
// wrapping at the edges. Returns 0 if start is a wall.
func (m *Maze) Reachable(start torus.Position) int {
	start = m.dims.Normalize(start)
	if m.IsWallAt(start) {
		return 0
	}

	visited := make([]bool, len(m.buffer))
	visited[start.Row*m.dims.Cols+start.Col] = true
	queue := []torus.Position{start}
	count := 0

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		count++

		for _, dir := range torus.Cardinals {
			next := curr.Advance(dir, m.dims)
			idx := next.Row*m.dims.Cols + next.Col
			if visited[idx] || m.buffer[idx] != Open {
				continue
			}
			visited[idx] = true
			queue = append(queue, next)
		}
	}
	return count
}
