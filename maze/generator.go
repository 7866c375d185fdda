package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/rats/torus"
)

// Each maze cell rasterizes to a block of CellRows x CellCols characters:
// one wall row, one wall column, and the open interior
const (
	CellRows = 6
	CellCols = 11
)

// Rand is the subset of *rand.Rand the generator draws from
type Rand interface {
	Intn(n int) int
}

type Config struct {
	// Grid size in maze cells; both must be at least 2
	Rows, Cols int

	// Density is the percentage (0-100) of spanning-tree walls kept.
	// 100 keeps a perfect maze, 0 clears every wall.
	Density int

	Seed int64 // Optional (0 = Random)
	Rand Rand  // Optional, overrides Seed
}

// cell records whether the top and left edges are walls
type cell struct {
	top, left bool
}

// Generate builds a toroidal maze: a random spanning tree over the cell grid,
// thinned by the density pass, then rasterized into a wall buffer.
// Panics if either dimension is below 2 cells.
func Generate(cfg Config) *Maze {
	if cfg.Rows < 2 || cfg.Cols < 2 {
		panic("maze: grid must be at least 2x2 cells")
	}

	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	density := cfg.Density
	if density < 0 {
		density = 0
	}
	if density > 100 {
		density = 100
	}

	cells := huntAndKill(cfg.Rows, cfg.Cols, rng)
	thin(cells, density, rng)

	m := &Maze{
		cellRows: cfg.Rows,
		cellCols: cfg.Cols,
		cells:    cells,
	}
	m.rasterize()
	return m
}

// --- Core Algorithms ---

type step struct {
	dir        torus.Direction
	row, col   int
	nrow, ncol int
}

// huntAndKill carves a spanning tree on the torus of cells.
// Walk: move to a random unvisited neighbor until stuck.
// Hunt: scan row-major for an unvisited cell touching the visited region.
func huntAndKill(rows, cols int, rng Rand) []cell {
	cells := make([]cell, rows*cols)
	for i := range cells {
		cells[i] = cell{top: true, left: true}
	}
	visited := make([]bool, rows*cols)

	row, col := rng.Intn(rows), rng.Intn(cols)
	visited[row*cols+col] = true

	for {
		candidates := neighbors(row, col, rows, cols, func(r, c int) bool { return !visited[r*cols+c] })
		if len(candidates) > 0 {
			s := candidates[rng.Intn(len(candidates))]
			carve(cells, cols, s)
			row, col = s.nrow, s.ncol
			visited[row*cols+col] = true
			continue
		}

		found := false
		for r := 0; r < rows && !found; r++ {
			for c := 0; c < cols && !found; c++ {
				if visited[r*cols+c] {
					continue
				}
				links := neighbors(r, c, rows, cols, func(nr, nc int) bool { return visited[nr*cols+nc] })
				if len(links) == 0 {
					continue
				}
				carve(cells, cols, links[rng.Intn(len(links))])
				row, col = r, c
				visited[r*cols+c] = true
				found = true
			}
		}
		if !found {
			return cells
		}
	}
}

// neighbors lists steps from (row, col) to wrapped neighbors accepted by keep
func neighbors(row, col, rows, cols int, keep func(r, c int) bool) []step {
	out := make([]step, 0, 4)
	for _, dir := range torus.Cardinals {
		nr, nc := row, col
		switch dir {
		case torus.Up:
			nr = torus.Dec(row, rows)
		case torus.Down:
			nr = torus.Inc(row, rows)
		case torus.Left:
			nc = torus.Dec(col, cols)
		case torus.Right:
			nc = torus.Inc(col, cols)
		}
		if keep(nr, nc) {
			out = append(out, step{dir: dir, row: row, col: col, nrow: nr, ncol: nc})
		}
	}
	return out
}

// carve clears the wall flag owned by whichever cell sits below or right of the edge
func carve(cells []cell, cols int, s step) {
	switch s.dir {
	case torus.Up:
		cells[s.row*cols+s.col].top = false
	case torus.Down:
		cells[s.nrow*cols+s.ncol].top = false
	case torus.Left:
		cells[s.row*cols+s.col].left = false
	case torus.Right:
		cells[s.nrow*cols+s.ncol].left = false
	}
}

// thin clears both flags of each cell with probability (100-density)%.
// One percentile draw per cell, in row-major order.
func thin(cells []cell, density int, rng Rand) {
	for i := range cells {
		if rng.Intn(100) >= density {
			cells[i] = cell{}
		}
	}
}

// --- Rasterization ---

// Wall glyphs. The junction table is indexed by the arms meeting at a cell
// corner: bit 0 west, bit 1 east, bit 2 south, bit 3 north.
const (
	Open       = ' '
	Horizontal = '─'
	Vertical   = '│'
)

var junctions = [16]rune{
	' ', '─', '─', '─',
	'│', '┐', '┌', '┬',
	'│', '┘', '└', '┴',
	'│', '┤', '├', '┼',
}

// Junction returns the corner glyph for a 4-bit arm pattern
func Junction(west, east, south, north bool) rune {
	idx := 0
	if west {
		idx |= 1
	}
	if east {
		idx |= 2
	}
	if south {
		idx |= 4
	}
	if north {
		idx |= 8
	}
	return junctions[idx]
}

func (m *Maze) rasterize() {
	m.dims = torus.Dimensions{Rows: m.cellRows * CellRows, Cols: m.cellCols * CellCols}
	m.buffer = make([]rune, m.dims.Rows*m.dims.Cols)
	for i := range m.buffer {
		m.buffer[i] = Open
	}

	for r := 0; r < m.cellRows; r++ {
		for c := 0; c < m.cellCols; c++ {
			here := m.cells[r*m.cellCols+c]
			west := m.cells[r*m.cellCols+torus.Dec(c, m.cellCols)]
			north := m.cells[torus.Dec(r, m.cellRows)*m.cellCols+c]

			row, col := r*CellRows, c*CellCols
			m.set(row, col, Junction(west.top, here.top, here.left, north.left))
			if here.top {
				for k := 1; k < CellCols; k++ {
					m.set(row, col+k, Horizontal)
				}
			}
			if here.left {
				for k := 1; k < CellRows; k++ {
					m.set(row+k, col, Vertical)
				}
			}
		}
	}
}

func (m *Maze) set(row, col int, ch rune) {
	m.buffer[row*m.dims.Cols+col] = ch
}
