package maze

import "strings"

// Default glyphs. Both are two columns wide so cells stay square in a terminal.
const (
	DefaultWall = "██"
	DefaultOpen = "  "
)

// Renderer draws a grid as text using a fixed-width pair of glyphs.
type Renderer struct {
	Wall string
	Open string
}

// NewRenderer creates a renderer with the given glyphs.
func NewRenderer(wall, open string) *Renderer {
	return &Renderer{Wall: wall, Open: open}
}

// Render draws grid with the default glyphs.
func Render(grid *Grid) string {
	return NewRenderer(DefaultWall, DefaultOpen).Render(grid)
}

// Render draws grid as text. Each row produces two lines followed by a
// closing border line. The grid is not modified.
//
// A Right bit on the last column opens both the corner above the cell and the
// wall beside it, so an exit there joins the cell's interior.
func (r *Renderer) Render(grid *Grid) string {
	var sb strings.Builder
	for _, line := range r.Lines(grid) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Lines returns the rendered diagram one line at a time, without newlines.
func (r *Renderer) Lines(grid *Grid) []string {
	if grid == nil || grid.Width <= 0 || grid.Height <= 0 {
		return nil
	}

	lines := make([]string, 0, 2*grid.Height+1)
	var sb strings.Builder

	for _, row := range grid.Cells {
		// Wall line: openings toward the row printed above.
		sb.Reset()
		for _, cell := range row {
			sb.WriteString(r.Wall)
			sb.WriteString(r.pick(cell.Has(Down)))
		}
		sb.WriteString(r.pick(row[len(row)-1].Has(Right)))
		lines = append(lines, sb.String())

		// Cell line: openings toward the left neighbour. Column 0 has no
		// left neighbour, so its Left bit is clipped.
		sb.Reset()
		for x, cell := range row {
			sb.WriteString(r.pick(x > 0 && cell.Has(Left)))
			sb.WriteString(r.Open)
		}
		// A Right bit on the last column opens the border beside the cell.
		sb.WriteString(r.pick(row[len(row)-1].Has(Right)))
		lines = append(lines, sb.String())
	}

	lines = append(lines, strings.Repeat(r.Wall, 2*grid.Width+1))
	return lines
}

func (r *Renderer) pick(open bool) string {
	if open {
		return r.Open
	}
	return r.Wall
}
