package maze

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/samdwyer/growmaze/internal/telemetry"
)

// inOrder leaves directions in table order: Up, Right, Down, Left.
type inOrder struct{}

func (inOrder) Shuffle(int, func(i, j int)) {}

func TestCarveProducesPerfectMaze(t *testing.T) {
	sizes := []struct{ width, height int }{
		{1, 1}, {2, 1}, {1, 2}, {3, 3}, {10, 4}, {4, 10}, {31, 17}, {64, 64},
	}

	for _, size := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			rng := rand.New(rand.NewSource(seed))
			grid, stats, err := NewCarver(rng).Carve(context.Background(), size.width, size.height)
			if err != nil {
				t.Fatalf("Carve(%d, %d) seed %d: unexpected error: %v", size.width, size.height, seed, err)
			}
			if err := Validate(grid); err != nil {
				t.Errorf("Carve(%d, %d) seed %d: %v", size.width, size.height, seed, err)
			}

			cells := size.width * size.height
			if stats.Pushes != cells || stats.Pops != cells {
				t.Errorf("Carve(%d, %d) pushes=%d pops=%d, want %d each", size.width, size.height, stats.Pushes, stats.Pops, cells)
			}
			if stats.Passages != cells-1 {
				t.Errorf("Carve(%d, %d) passages = %d, want %d", size.width, size.height, stats.Passages, cells-1)
			}
			if !grid.At(Entrance).Has(Down) {
				t.Errorf("Carve(%d, %d) entrance Down bit not set", size.width, size.height)
			}
		}
	}
}

func TestCarveSingleCell(t *testing.T) {
	grid, stats, err := NewCarver(rand.New(rand.NewSource(7))).Carve(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("Carve(1, 1): %v", err)
	}
	if grid.Cells[0][0] != Down {
		t.Errorf("Carve(1, 1) cell = %v, want down only", grid.Cells[0][0])
	}
	if stats.Pushes != 1 || stats.Pops != 1 || stats.Passages != 0 {
		t.Errorf("Carve(1, 1) stats = %+v, want one push, one pop, no passages", stats)
	}
}

func TestCarveTwoByOne(t *testing.T) {
	grid, err := Carve(2, 1, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Carve(2, 1): %v", err)
	}
	if grid.Cells[0][0] != Down|Right {
		t.Errorf("cell (0,0) = %v, want down|right", grid.Cells[0][0])
	}
	if grid.Cells[0][1] != Left {
		t.Errorf("cell (1,0) = %v, want left", grid.Cells[0][1])
	}
}

func TestCarveFixedOrder(t *testing.T) {
	grid, stats, err := NewCarver(inOrder{}).Carve(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("Carve(2, 2): %v", err)
	}

	// Up from the entrance, right along row 1, then down into (1,0).
	want := [][]Cell{
		{Down | Up, Up},
		{Down | Right, Left | Down},
	}
	for y := range want {
		for x := range want[y] {
			if grid.Cells[y][x] != want[y][x] {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, grid.Cells[y][x], want[y][x])
			}
		}
	}
	if stats.MaxDepth != 4 {
		t.Errorf("MaxDepth = %d, want 4", stats.MaxDepth)
	}
}

func TestCarveReproducibility(t *testing.T) {
	seed := int64(12345)

	g1, err := Carve(20, 12, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Carve: %v", err)
	}
	g2, err := Carve(20, 12, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Carve: %v", err)
	}

	for y := 0; y < g1.Height; y++ {
		for x := 0; x < g1.Width; x++ {
			if g1.Cells[y][x] != g2.Cells[y][x] {
				t.Fatalf("Cell mismatch at (%d,%d): %v != %v", x, y, g1.Cells[y][x], g2.Cells[y][x])
			}
		}
	}
}

func TestCarveDifferentSeeds(t *testing.T) {
	g1, _ := Carve(20, 12, rand.New(rand.NewSource(12345)))
	g2, _ := Carve(20, 12, rand.New(rand.NewSource(54321)))

	if Render(g1) == Render(g2) {
		t.Error("Mazes with different seeds should not be identical")
	}
	for _, g := range []*Grid{g1, g2} {
		if err := Validate(g); err != nil {
			t.Errorf("Validate: %v", err)
		}
	}
}

func TestCarveWithExit(t *testing.T) {
	grid, _, err := NewCarver(rand.New(rand.NewSource(3)), WithExit()).Carve(context.Background(), 5, 4)
	if err != nil {
		t.Fatalf("Carve: %v", err)
	}
	if !grid.At(Point{X: 4, Y: 3}).Has(Right) {
		t.Error("Exit cell should have Right bit set")
	}
	if err := Validate(grid); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if got := Passages(grid); got != 19 {
		t.Errorf("Passages = %d, want 19", got)
	}
}

func TestCarveInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
		{"negative height", 5, -3},
		{"overflow", math.MaxInt, 2},
		{"too many cells", MaxCells, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Carve(tt.width, tt.height, inOrder{})
			if !errors.Is(err, ErrInvalidDimension) {
				t.Fatalf("Carve(%d, %d) error = %v, want ErrInvalidDimension", tt.width, tt.height, err)
			}
			var dimErr *DimensionError
			if !errors.As(err, &dimErr) || dimErr.Width != tt.width || dimErr.Height != tt.height {
				t.Errorf("Carve(%d, %d) error = %#v, want DimensionError with dimensions", tt.width, tt.height, err)
			}
			if grid != nil {
				t.Error("Carve should not return a grid on error")
			}
		})
	}
}

func TestNewCarverNilSource(t *testing.T) {
	grid, _, err := NewCarver(nil, WithTracer(telemetry.NoopTracer())).Carve(context.Background(), 6, 6)
	if err != nil {
		t.Fatalf("Carve: %v", err)
	}
	if err := Validate(grid); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
