package sim

import (
	"math"

	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

// DefaultTileSize is the edge length of one map tile in world units.
const DefaultTileSize = 32.0

// TileGrid is a solid/empty tile map answering segment queries. Coordinates
// outside the grid resolve to the nearest edge tile.
type TileGrid struct {
	cols     int
	rows     int
	tileSize float64
	solid    []bool
}

var _ world.CollisionSurface = (*TileGrid)(nil)

// NewTileGrid allocates an empty grid of cols by rows tiles.
func NewTileGrid(cols, rows int, tileSize float64) *TileGrid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &TileGrid{
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		solid:    make([]bool, cols*rows),
	}
}

// GridForWorld sizes a grid to cover the configured playable area and walls
// its outer ring.
func GridForWorld(cfg world.Config) *TileGrid {
	cols := int(math.Ceil(cfg.Width / DefaultTileSize))
	rows := int(math.Ceil(cfg.Height / DefaultTileSize))
	grid := NewTileGrid(cols, rows, DefaultTileSize)
	grid.FillBorder()
	return grid
}

func (g *TileGrid) Cols() int            { return g.cols }
func (g *TileGrid) Rows() int            { return g.rows }
func (g *TileGrid) TileSize() float64    { return g.tileSize }
func (g *TileGrid) index(x, y int) int   { return y*g.cols + x }
func (g *TileGrid) inside(x, y int) bool { return x >= 0 && y >= 0 && x < g.cols && y < g.rows }

// SetSolid marks the tile at column x, row y.
func (g *TileGrid) SetSolid(x, y int, solid bool) {
	if !g.inside(x, y) {
		return
	}
	g.solid[g.index(x, y)] = solid
}

// FillRect marks every tile in the inclusive tile range.
func (g *TileGrid) FillRect(x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.SetSolid(x, y, true)
		}
	}
}

// FillBorder walls the outermost ring of tiles.
func (g *TileGrid) FillBorder() {
	g.FillRect(0, 0, g.cols-1, 0)
	g.FillRect(0, g.rows-1, g.cols-1, g.rows-1)
	g.FillRect(0, 0, 0, g.rows-1)
	g.FillRect(g.cols-1, 0, g.cols-1, g.rows-1)
}

// Solid reports whether pos lies in a solid tile.
func (g *TileGrid) Solid(pos state.Vec2) bool {
	x := clampInt(int(math.Floor(pos.X()/g.tileSize)), 0, g.cols-1)
	y := clampInt(int(math.Floor(pos.Y()/g.tileSize)), 0, g.rows-1)
	return g.solid[g.index(x, y)]
}

// IntersectSegment walks p0-p1 in steps of at most one unit and returns the
// first sample inside a solid tile.
func (g *TileGrid) IntersectSegment(p0, p1 state.Vec2) (bool, state.Vec2) {
	steps := int(state.Distance(p0, p1) + 1)
	for i := 0; i <= steps; i++ {
		pos := state.Mix(p0, p1, float64(i)/float64(steps))
		if g.Solid(pos) {
			return true, pos
		}
	}
	return false, p1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
