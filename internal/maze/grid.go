package maze

import (
	"errors"
	"fmt"
)

// MaxCells bounds width*height so allocation stays reasonable and the product
// can never wrap.
const MaxCells = 1 << 24

// ErrInvalidDimension is returned for non-positive or oversized grid dimensions.
var ErrInvalidDimension = errors.New("invalid maze dimension")

// DimensionError reports the dimensions that were rejected.
type DimensionError struct {
	Width, Height int
	Reason        string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %dx%d: %s", ErrInvalidDimension, e.Width, e.Height, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidDimension.
func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}

// CheckDimensions validates width and height before any allocation.
func CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return &DimensionError{Width: width, Height: height, Reason: "width and height must be positive"}
	}
	if width > MaxCells/height {
		return &DimensionError{Width: width, Height: height, Reason: fmt.Sprintf("more than %d cells", MaxCells)}
	}
	return nil
}

// Grid is a rectangular array of cells addressed as Cells[y][x].
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// NewGrid creates a grid with every cell unvisited.
func NewGrid(width, height int) (*Grid, error) {
	if err := CheckDimensions(width, height); err != nil {
		return nil, err
	}

	// One backing array keeps rows contiguous.
	backing := make([]Cell, width*height)
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = backing[y*width : (y+1)*width : (y+1)*width]
	}

	return &Grid{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// Contains returns true if p lies inside the grid.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell at p, or 0 if p is outside the grid.
func (g *Grid) At(p Point) Cell {
	if !g.Contains(p) {
		return 0
	}
	return g.Cells[p.Y][p.X]
}

// open sets bits on the cell at p. Bits are never cleared.
func (g *Grid) open(p Point, bits Cell) {
	g.Cells[p.Y][p.X] |= bits
}

