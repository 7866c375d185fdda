package render

import (
	"github.com/lixenwraith/rats/entity"
	"github.com/lixenwraith/rats/maze"
	"github.com/lixenwraith/rats/torus"
)

// Cell is one character of the composed frame
type Cell struct {
	Ch     rune
	Wall   bool
	Entity bool
	Kind   entity.Kind
	Color  RGB
}

// Canvas is a per-frame working copy of the maze with entity glyphs painted over it.
// The maze itself is never written.
type Canvas struct {
	dims  torus.Dimensions
	cells []Cell
}

// Compose copies the pristine maze and paints every visible entity.
// The player (index 0) is painted last so it stays on top.
func Compose(m *maze.Maze, entities []entity.Entity) *Canvas {
	dims := m.Dimensions()
	c := &Canvas{dims: dims, cells: make([]Cell, dims.Rows*dims.Cols)}

	buf := m.Buffer()
	for i, ch := range buf {
		c.cells[i] = Cell{Ch: ch, Wall: ch != maze.Open, Color: RGBWall}
	}

	if len(entities) == 0 {
		return c
	}
	for _, e := range entities[1:] {
		c.paint(e)
	}
	c.paint(entities[0])
	return c
}

func (c *Canvas) paint(e entity.Entity) {
	b := e.Common()
	if b.State == entity.Dead {
		return
	}
	glyphs := glyphsFor(e)
	color := colorFor(e)

	if entity.IsQuad(e.Kind()) {
		for i, p := range b.Pos.Quad(c.dims) {
			c.set(p, glyphs[i], e.Kind(), color)
		}
		return
	}
	c.set(b.Pos, glyphs[0], e.Kind(), color)
}

func (c *Canvas) set(p torus.Position, ch rune, k entity.Kind, color RGB) {
	p = c.dims.Normalize(p)
	c.cells[p.Row*c.dims.Cols+p.Col] = Cell{Ch: ch, Entity: true, Kind: k, Color: color}
}

// At returns the cell at a wrapped position
func (c *Canvas) At(row, col int) Cell {
	row = torus.Wrap(row, c.dims.Rows)
	col = torus.Wrap(col, c.dims.Cols)
	return c.cells[row*c.dims.Cols+col]
}

func (c *Canvas) Dimensions() torus.Dimensions { return c.dims }
