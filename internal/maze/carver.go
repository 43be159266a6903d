package maze

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/growmaze/internal/telemetry"
)

// Entrance is the cell whose Down bit is opened before carving starts.
// Down points out through the top border there, so the bit marks the
// entrance rather than a carved passage.
var Entrance = Point{X: 0, Y: 0}

// Shuffler is the random source used to order directions.
// *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Stats describes a single carving run.
type Stats struct {
	ID       string        // Generation id, unique per run
	Pushes   int           // Cells pushed onto the frontier
	Pops     int           // Backtracks
	Passages int           // Carved passages, entrance and exit excluded
	MaxDepth int           // Largest frontier size seen
	Duration time.Duration // Wall time spent carving
}

// Carver generates perfect mazes with the growing-tree algorithm, always
// growing from the most recently added cell.
type Carver struct {
	rng    Shuffler
	tracer trace.Tracer
	exit   bool
}

// Option configures a Carver.
type Option func(*Carver)

// WithExit opens the Right bit of the bottom-right cell after carving.
func WithExit() Option {
	return func(c *Carver) {
		c.exit = true
	}
}

// WithTracer overrides the tracer used for generation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Carver) {
		c.tracer = tracer
	}
}

// NewCarver creates a carver drawing randomness from rng.
// A nil rng gets a time-seeded source.
func NewCarver(rng Shuffler, opts ...Option) *Carver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &Carver{
		rng:    rng,
		tracer: telemetry.Tracer("maze"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Carve generates a width x height maze using rng.
func Carve(width, height int, rng Shuffler) (*Grid, error) {
	grid, _, err := NewCarver(rng).Carve(context.Background(), width, height)
	return grid, err
}

// Carve generates a maze. The returned grid is a spanning tree over all
// cells, with the Down bit of Entrance set.
func (c *Carver) Carve(ctx context.Context, width, height int) (*Grid, Stats, error) {
	_, span := c.tracer.Start(ctx, "maze.carve")
	defer span.End()

	stats := Stats{ID: uuid.NewString()}
	span.SetAttributes(
		attribute.String("maze.id", stats.ID),
		attribute.Int("maze.width", width),
		attribute.Int("maze.height", height),
	)

	grid, err := NewGrid(width, height)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, stats, err
	}

	startTime := time.Now()

	frontier := make([]Point, 0, width*height)
	order := [4]int{0, 1, 2, 3}

	grid.open(Entrance, Down)
	frontier = append(frontier, Entrance)
	stats.Pushes++
	stats.MaxDepth = 1

	for len(frontier) > 0 {
		cell := frontier[len(frontier)-1]

		c.rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		carved := false
		for _, idx := range order {
			dir := directions[idx]
			next := cell.Add(dir.Delta)
			if !grid.Contains(next) || grid.At(next).Visited() {
				continue
			}

			grid.open(cell, dir.Passage)
			grid.open(next, dir.Opposite)
			frontier = append(frontier, next)
			stats.Pushes++
			stats.Passages++
			if len(frontier) > stats.MaxDepth {
				stats.MaxDepth = len(frontier)
			}
			carved = true
			break
		}

		if !carved {
			// Backtrack
			frontier = frontier[:len(frontier)-1]
			stats.Pops++
		}
	}

	if c.exit {
		grid.open(Exit(grid), Right)
	}

	stats.Duration = time.Since(startTime)

	span.SetAttributes(
		attribute.Int("maze.passages", stats.Passages),
		attribute.Int("maze.pushes", stats.Pushes),
		attribute.Int("maze.pops", stats.Pops),
		attribute.Int("maze.max_depth", stats.MaxDepth),
		attribute.Bool("maze.exit", c.exit),
		attribute.Int64("maze.generation_ms", stats.Duration.Milliseconds()),
	)

	return grid, stats, nil
}

// Exit returns the bottom-right cell, whose Right bit opens the exit.
func Exit(g *Grid) Point {
	return Point{X: g.Width - 1, Y: g.Height - 1}
}
