package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/growmaze/internal/maze"
	"github.com/samdwyer/growmaze/internal/theme"
)

// Renderer handles drawing mazes to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the maze with the theme's glyphs and colors, offset by the
// scroll position. The last screen row is reserved for the status line.
func (r *Renderer) Render(grid *maze.Grid, def *theme.Def, scrollX, scrollY int, status string) {
	r.screen.Clear()

	_, screenHeight := r.screen.Size()
	mazeRows := screenHeight - 1

	wallStyle := def.WallStyle()
	openStyle := def.OpenStyle()

	lines := maze.NewRenderer(def.Wall, def.Open).Lines(grid)
	for i := scrollY; i < len(lines) && i-scrollY < mazeRows; i++ {
		r.drawLine(lines[i], i-scrollY, scrollX, def, wallStyle, openStyle)
	}

	r.RenderMessage(status, screenHeight-1)
	r.screen.Show()
}

// drawLine splits a rendered line back into wall and open glyphs so each can
// be styled separately.
func (r *Renderer) drawLine(line string, y, scrollX int, def *theme.Def, wallStyle, openStyle tcell.Style) {
	col := -scrollX
	for len(line) > 0 {
		var glyph string
		var style tcell.Style
		switch {
		case strings.HasPrefix(line, def.Wall):
			glyph, style = def.Wall, wallStyle
		case strings.HasPrefix(line, def.Open):
			glyph, style = def.Open, openStyle
		default:
			return
		}
		for _, ch := range glyph {
			if col >= 0 {
				r.screen.SetContent(col, y, ch, style)
			}
			col++
		}
		line = line[len(glyph):]
	}
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
