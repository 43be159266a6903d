package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidMaze is returned when a grid is not a perfect maze.
var ErrInvalidMaze = errors.New("invalid maze")

// ValidationError reports the first cell found breaking a maze property.
type ValidationError struct {
	At     Point
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: cell (%d,%d): %s", ErrInvalidMaze, e.At.X, e.At.Y, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidMaze.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidMaze
}

// boundaryOpening returns true for the only bits allowed to point out of the
// grid: the entrance Down bit and the exit Right bit.
func boundaryOpening(g *Grid, p Point, dir Cell) bool {
	return (p == Entrance && dir == Down) || (p == Exit(g) && dir == Right)
}

// Passages counts the passages joining two cells of the grid. Boundary
// openings are not counted.
func Passages(g *Grid) int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			cell := g.Cells[y][x]
			// Each passage is counted once, from its Up or Right end.
			if cell.Has(Right) && g.Contains(p.Add(Point{X: 1})) {
				count++
			}
			if cell.Has(Up) && g.Contains(p.Add(Point{Y: 1})) {
				count++
			}
		}
	}
	return count
}

// Validate checks that g is a perfect maze: passages are symmetric, only the
// entrance and exit open onto the border, every cell is visited, and the
// passages form a spanning tree.
func Validate(g *Grid) error {
	if err := CheckDimensions(g.Width, g.Height); err != nil {
		return err
	}
	if len(g.Cells) != g.Height {
		return &ValidationError{Reason: fmt.Sprintf("grid has %d rows, want %d", len(g.Cells), g.Height)}
	}

	for y, row := range g.Cells {
		if len(row) != g.Width {
			return &ValidationError{At: Point{Y: y}, Reason: fmt.Sprintf("row has %d cells, want %d", len(row), g.Width)}
		}
		for x, cell := range row {
			p := Point{X: x, Y: y}
			if !cell.Visited() {
				return &ValidationError{At: p, Reason: "cell is unvisited"}
			}
			for _, d := range directions {
				if !cell.Has(d.Passage) {
					continue
				}
				next := p.Add(d.Delta)
				if !g.Contains(next) {
					if !boundaryOpening(g, p, d.Passage) {
						return &ValidationError{At: p, Reason: fmt.Sprintf("%s passage leaves the grid", d.Passage)}
					}
					continue
				}
				if !g.At(next).Has(d.Opposite) {
					return &ValidationError{At: p, Reason: fmt.Sprintf("%s passage has no matching %s on (%d,%d)", d.Passage, d.Opposite, next.X, next.Y)}
				}
			}
		}
	}

	want := g.Width*g.Height - 1
	if got := Passages(g); got != want {
		return &ValidationError{Reason: fmt.Sprintf("%d passages, want %d", got, want)}
	}

	// With n-1 edges, reaching every cell proves the passages form a tree.
	if reached := reachable(g, Entrance); reached != g.Width*g.Height {
		return &ValidationError{At: Entrance, Reason: fmt.Sprintf("%d of %d cells reachable", reached, g.Width*g.Height)}
	}
	return nil
}

// reachable counts the cells connected to start through interior passages.
func reachable(g *Grid, start Point) int {
	seen := make([]bool, g.Width*g.Height)
	seen[start.Y*g.Width+start.X] = true
	stack := []Point{start}
	count := 1

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range directions {
			next := p.Add(d.Delta)
			if !g.At(p).Has(d.Passage) || !g.Contains(next) {
				continue
			}
			idx := next.Y*g.Width + next.X
			if seen[idx] {
				continue
			}
			seen[idx] = true
			count++
			stack = append(stack, next)
		}
	}
	return count
}
