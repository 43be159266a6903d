// Package maze provides perfect maze generation and text rendering.
package maze

// Cell is a bitmask of open passages leading out of a grid cell.
// A zero cell has not been visited yet.
type Cell uint8

// Passage bits. These values are stable: external consumers may inspect raw
// cell values.
const (
	Up    Cell = 0b0001
	Right Cell = 0b0010
	Down  Cell = 0b0100
	Left  Cell = 0b1000
)

// Has returns true if every bit in dir is open on the cell.
func (c Cell) Has(dir Cell) bool {
	return c&dir == dir && dir != 0
}

// Visited returns true once any passage bit is set.
func (c Cell) Visited() bool {
	return c != 0
}

// Point is an (x, y) grid coordinate. It doubles as a unit delta.
type Point struct {
	X, Y int
}

// Add returns the point offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction describes one of the four carving directions.
type Direction struct {
	Passage  Cell  // Bit opened on the origin cell
	Opposite Cell  // Bit opened on the destination cell
	Delta    Point // Unit step from origin to destination
}

// directions is indexed by the shuffled permutation during carving.
// Down points toward y-1, which is the row printed above.
var directions = [4]Direction{
	{Passage: Up, Opposite: Down, Delta: Point{X: 0, Y: 1}},
	{Passage: Right, Opposite: Left, Delta: Point{X: 1, Y: 0}},
	{Passage: Down, Opposite: Up, Delta: Point{X: 0, Y: -1}},
	{Passage: Left, Opposite: Right, Delta: Point{X: -1, Y: 0}},
}

// Directions returns a copy of the direction table in Up, Right, Down, Left order.
func Directions() [4]Direction {
	return directions
}

// String returns a human-readable list of the open passages, e.g. "up|left".
func (c Cell) String() string {
	if c == 0 {
		return "none"
	}
	names := [...]string{"up", "right", "down", "left"}
	s := ""
	for i, d := range directions {
		if c&d.Passage != 0 {
			if s != "" {
				s += "|"
			}
			s += names[i]
		}
	}
	return s
}
