// Package viewer provides an interactive terminal view of generated mazes.
package viewer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/growmaze/internal/maze"
	"github.com/samdwyer/growmaze/internal/telemetry"
	"github.com/samdwyer/growmaze/internal/theme"
	"github.com/samdwyer/growmaze/internal/ui"
)

// Options configures a viewer session.
type Options struct {
	Width, Height int
	Seed          int64 // First maze seed; later mazes use fresh seeds
	Exit          bool
	Theme         *theme.Def
}

// Viewer holds the state of an interactive session.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	opts     Options
	grid     *maze.Grid
	stats    maze.Stats
	seed     int64
	scrollX  int
	scrollY  int
	mazes    int
	running  bool
}

// New opens the terminal and creates a viewer.
func New(opts Options) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, opts), nil
}

// NewWithScreen creates a viewer drawing to an existing screen.
func NewWithScreen(screen *ui.Screen, opts Options) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		opts:     opts,
		seed:     opts.Seed,
		running:  true,
	}
}

// Run generates the first maze and processes input until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.session")
	defer span.End()

	defer v.screen.Close()

	if err := v.generate(ctx); err != nil {
		return err
	}

	for v.running {
		v.render()
		if err := v.handleInput(ctx); err != nil {
			return err
		}
	}

	span.SetAttributes(attribute.Int("viewer.mazes", v.mazes))
	return nil
}

// Mazes returns how many mazes have been generated in this session.
func (v *Viewer) Mazes() int {
	return v.mazes
}

// Grid returns the maze currently displayed.
func (v *Viewer) Grid() *maze.Grid {
	return v.grid
}

// generate carves a new maze with the current seed and resets scrolling.
func (v *Viewer) generate(ctx context.Context) error {
	if v.seed == 0 {
		v.seed = time.Now().UnixNano()
	}

	var opts []maze.Option
	if v.opts.Exit {
		opts = append(opts, maze.WithExit())
	}
	carver := maze.NewCarver(newSource(v.seed), opts...)

	grid, stats, err := carver.Carve(ctx, v.opts.Width, v.opts.Height)
	if err != nil {
		return fmt.Errorf("generating maze: %w", err)
	}

	v.grid = grid
	v.stats = stats
	v.scrollX, v.scrollY = 0, 0
	v.mazes++

	// Nothing may write to stderr while the screen owns the terminal.
	trace.SpanFromContext(ctx).AddEvent("maze.generated", trace.WithAttributes(
		attribute.String("maze.id", stats.ID),
		attribute.Int64("maze.seed", v.seed),
		attribute.Int("maze.passages", stats.Passages),
	))
	return nil
}

// Status returns the status line for the current maze.
func (v *Viewer) Status() string {
	return fmt.Sprintf("%dx%d seed %d passages %d id %.8s | r: new  arrows: scroll  q: quit",
		v.grid.Width, v.grid.Height, v.seed, v.stats.Passages, v.stats.ID)
}

func (v *Viewer) render() {
	v.renderer.Render(v.grid, v.opts.Theme, v.scrollX, v.scrollY, v.Status())
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) error {
	switch ev := v.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
		v.clampScroll()
	case nil:
		// Screen finalized
		v.running = false
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.scroll(0, -1)
	case tcell.KeyDown:
		v.scroll(0, 1)
	case tcell.KeyLeft:
		v.scroll(-1, 0)
	case tcell.KeyRight:
		v.scroll(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			v.seed = 0
			return v.generate(ctx)
		}
	}
	return nil
}

// scroll moves the view by one cell in the given direction.
func (v *Viewer) scroll(dx, dy int) {
	v.scrollX += dx * 2 * v.opts.Theme.GlyphWidth()
	v.scrollY += dy * 2
	v.clampScroll()
}

// clampScroll keeps the view within the rendered maze.
func (v *Viewer) clampScroll() {
	screenWidth, screenHeight := v.screen.Size()
	maxX := (2*v.grid.Width+1)*v.opts.Theme.GlyphWidth() - screenWidth
	maxY := (2*v.grid.Height + 1) - (screenHeight - 1)

	v.scrollX = clamp(v.scrollX, 0, max(maxX, 0))
	v.scrollY = clamp(v.scrollY, 0, max(maxY, 0))
}

func newSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}
