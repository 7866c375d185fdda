package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rats/torus"
)

// scriptedRand replays a fixed sequence of draws, each reduced modulo n
type scriptedRand struct {
	values []int
	pos    int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

// interiorStart is an open character inside cell (0, 0)
var interiorStart = torus.Position{Row: CellRows / 2, Col: CellCols / 2}

func TestGenerateRejectsTinyGrids(t *testing.T) {
	assert.Panics(t, func() { Generate(Config{Rows: 1, Cols: 5, Density: 50}) })
	assert.Panics(t, func() { Generate(Config{Rows: 5, Cols: 1, Density: 50}) })
	assert.NotPanics(t, func() { Generate(Config{Rows: 2, Cols: 2, Density: 50, Seed: 1}) })
}

func TestGenerateDimensions(t *testing.T) {
	m := Generate(Config{Rows: 4, Cols: 7, Density: 85, Seed: 42})
	assert.Equal(t, torus.Dimensions{Rows: 4 * CellRows, Cols: 7 * CellCols}, m.Dimensions())
	rows, cols := m.CellGrid()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 7, cols)
}

// A density of 100 keeps the spanning tree: n-1 openings, everything reachable
func TestGenerateFullDensityIsSpanningTree(t *testing.T) {
	sizes := []struct{ rows, cols int }{{2, 2}, {2, 5}, {3, 3}, {6, 4}, {15, 15}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			m := Generate(Config{Rows: size.rows, Cols: size.cols, Density: 100, Seed: seed})
			require.Equal(t, size.rows*size.cols-1, m.Openings(), "size %v seed %d", size, seed)
			assert.Equal(t, m.OpenCount(), m.Reachable(interiorStart), "size %v seed %d", size, seed)
		}
	}
}

func TestGenerateZeroDensityIsOpenArena(t *testing.T) {
	m := Generate(Config{Rows: 5, Cols: 6, Density: 0, Seed: 7})
	assert.Equal(t, 2*5*6, m.Openings())
	assert.Equal(t, len(m.Buffer()), m.OpenCount())
	assert.Equal(t, m.OpenCount(), m.Reachable(torus.Position{}))
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			require.False(t, m.IsWall(row, col))
		}
	}
}

// Thinning only adds openings, so partial densities stay connected
func TestGeneratePartialDensityStaysConnected(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m := Generate(Config{Rows: 8, Cols: 8, Density: 60, Seed: seed})
		assert.GreaterOrEqual(t, m.Openings(), 8*8-1)
		assert.Equal(t, m.OpenCount(), m.Reachable(interiorStart))
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := Generate(Config{Rows: 6, Cols: 9, Density: 70, Seed: 1234})
	b := Generate(Config{Rows: 6, Cols: 9, Density: 70, Seed: 1234})
	assert.Equal(t, a.Buffer(), b.Buffer())
	assert.Equal(t, a.Lines(false), b.Lines(false))
}

func TestGenerateDeterministicWithScriptedDraws(t *testing.T) {
	script := []int{3, 17, 58, 91, 0, 44, 76, 12, 99, 65, 28}
	a := Generate(Config{Rows: 5, Cols: 5, Density: 50, Rand: &scriptedRand{values: script}})
	b := Generate(Config{Rows: 5, Cols: 5, Density: 50, Rand: &scriptedRand{values: script}})
	assert.Equal(t, a.Buffer(), b.Buffer())

	// Rand takes precedence over Seed
	c := Generate(Config{Rows: 5, Cols: 5, Density: 50, Seed: 99, Rand: &scriptedRand{values: script}})
	assert.Equal(t, a.Buffer(), c.Buffer())
}

func TestGenerateWithInjectedRand(t *testing.T) {
	a := Generate(Config{Rows: 4, Cols: 4, Density: 100, Rand: rand.New(rand.NewSource(5))})
	b := Generate(Config{Rows: 4, Cols: 4, Density: 100, Seed: 5})
	assert.Equal(t, a.Buffer(), b.Buffer())
}

func TestThinUsesPercentileDraws(t *testing.T) {
	cells := make([]cell, 4)
	for i := range cells {
		cells[i] = cell{top: true, left: true}
	}
	thin(cells, 50, &scriptedRand{values: []int{10, 90, 49, 50}})

	assert.Equal(t, cell{top: true, left: true}, cells[0])
	assert.Equal(t, cell{}, cells[1])
	assert.Equal(t, cell{top: true, left: true}, cells[2])
	assert.Equal(t, cell{}, cells[3])
}

func TestJunctionTable(t *testing.T) {
	tests := []struct {
		west, east, south, north bool
		want                     rune
	}{
		{false, false, false, false, ' '},
		{true, true, false, false, '─'},
		{false, false, true, true, '│'},
		{false, true, true, false, '┌'},
		{true, false, true, false, '┐'},
		{false, true, false, true, '└'},
		{true, false, false, true, '┘'},
		{true, true, true, false, '┬'},
		{true, true, false, true, '┴'},
		{false, true, true, true, '├'},
		{true, false, true, true, '┤'},
		{true, true, true, true, '┼'},
	}
	for _, tc := range tests {
		assert.Equal(t, string(tc.want), string(Junction(tc.west, tc.east, tc.south, tc.north)))
	}
}

func TestRasterizeAllWalls(t *testing.T) {
	m := &Maze{cellRows: 2, cellCols: 2, cells: []cell{
		{top: true, left: true}, {top: true, left: true},
		{top: true, left: true}, {top: true, left: true},
	}}
	m.rasterize()

	assert.Equal(t, '┼', m.Rune(0, 0))
	assert.Equal(t, '─', m.Rune(0, 1))
	assert.Equal(t, '│', m.Rune(1, 0))
	assert.Equal(t, ' ', m.Rune(1, 1))
	assert.Equal(t, '┼', m.Rune(CellRows, CellCols))
}

func TestRasterizeWrapsJunctionNeighbors(t *testing.T) {
	// only cell (0,0) has a top wall, only cell (1,1) has a left wall
	m := &Maze{cellRows: 2, cellCols: 2, cells: []cell{
		{top: true}, {},
		{}, {left: true},
	}}
	m.rasterize()

	// corner of (0,0): east arm from own top, nothing wraps in from (0,1)
	assert.Equal(t, '─', m.Rune(0, 0))
	// corner of (0,1): west arm is (0,0)'s top, north arm wraps to (1,1)'s left
	assert.Equal(t, '┘', m.Rune(0, CellCols))
	// corner of (1,1): south arm is own left
	assert.Equal(t, '│', m.Rune(CellRows, CellCols))
}

func TestIsWallWraps(t *testing.T) {
	m := Generate(Config{Rows: 3, Cols: 3, Density: 100, Seed: 3})
	rows, cols := m.Rows(), m.Cols()
	assert.Equal(t, m.IsWall(rows-1, cols-1), m.IsWall(-1, -1))
	assert.Equal(t, m.IsWall(0, 0), m.IsWall(rows, cols))
}

func TestParseAndQuad(t *testing.T) {
	m := Parse([]string{
		"#####",
		"#   #",
		"#   ",
		"#####",
	})
	assert.Equal(t, torus.Dimensions{Rows: 4, Cols: 5}, m.Dimensions())
	assert.True(t, m.IsWall(0, 0))
	assert.False(t, m.IsWall(1, 1))
	assert.False(t, m.IsWall(2, 4), "short rows pad open")

	assert.False(t, m.IsWallQuad(1, 1))
	assert.True(t, m.IsWallQuad(1, 3), "right column of block is a wall")
	assert.True(t, m.IsWallQuad(2, 1), "bottom row of block is a wall")

	assert.Equal(t, 7, m.Reachable(torus.Position{Row: 1, Col: 1}))
	assert.Equal(t, 0, m.Reachable(torus.Position{}))
}

func TestLinesASCII(t *testing.T) {
	m := Parse([]string{"┌─┐", "│ │"})
	assert.Equal(t, []string{"+-+", "| |"}, m.Lines(true))
	assert.Equal(t, []string{"┌─┐", "│ │"}, m.Lines(false))
}
