package theme

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DefaultID is the theme used when none is configured.
const DefaultID = "block"

// ErrUnknownTheme is returned when a theme id is not in the registry.
var ErrUnknownTheme = errors.New("unknown theme")

// widths measures glyphs with ambiguous-width runes as one column, matching
// how tcell lays out box drawing and block characters by default.
var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Def defines a glyph theme loaded from JSON.
type Def struct {
	ID        string `json:"id"`        // Unique identifier (e.g., "block")
	Name      string `json:"name"`      // Display name
	Wall      string `json:"wall"`      // Glyph drawn for walls
	Open      string `json:"open"`      // Glyph drawn for passages and cell interiors
	WallColor string `json:"wallColor"` // Hex foreground for walls in the viewer
	OpenColor string `json:"openColor"` // Hex background for passages in the viewer
}

// Validate checks that the glyphs are usable on a fixed-width grid and the
// colors parse.
func (d *Def) Validate() error {
	wallWidth := widths.StringWidth(d.Wall)
	openWidth := widths.StringWidth(d.Open)
	if wallWidth == 0 || openWidth == 0 {
		return fmt.Errorf("theme %q: glyphs must not be empty", d.ID)
	}
	if wallWidth != openWidth {
		return fmt.Errorf("theme %q: wall glyph is %d columns, open glyph is %d", d.ID, wallWidth, openWidth)
	}
	if _, err := ParseHexColor(d.WallColor); err != nil {
		return fmt.Errorf("theme %q: wall color: %w", d.ID, err)
	}
	if _, err := ParseHexColor(d.OpenColor); err != nil {
		return fmt.Errorf("theme %q: open color: %w", d.ID, err)
	}
	return nil
}

// GlyphWidth returns the display width of one glyph in terminal columns.
func (d *Def) GlyphWidth() int {
	return widths.StringWidth(d.Wall)
}

// WallStyle returns the viewer style for wall glyphs.
func (d *Def) WallStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(MustParseHexColor(d.WallColor)).
		Background(MustParseHexColor(d.OpenColor))
}

// OpenStyle returns the viewer style for passage glyphs.
func (d *Def) OpenStyle() tcell.Style {
	return tcell.StyleDefault.Background(MustParseHexColor(d.OpenColor))
}

// File represents the structure of themes.json.
type File struct {
	Themes []Def `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]Def, error) {
	file, err := Load[File]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}

// Registry holds validated themes by id.
type Registry struct {
	themes []Def
}

// NewRegistry validates defs and builds a registry from them.
func NewRegistry(defs []Def) (*Registry, error) {
	if len(defs) == 0 {
		return nil, errors.New("no themes defined")
	}
	seen := make(map[string]bool, len(defs))
	for i := range defs {
		if err := defs[i].Validate(); err != nil {
			return nil, err
		}
		if seen[defs[i].ID] {
			return nil, fmt.Errorf("duplicate theme id %q", defs[i].ID)
		}
		seen[defs[i].ID] = true
	}
	return &Registry{themes: defs}, nil
}

// LoadRegistry loads and validates the embedded themes.
func LoadRegistry() (*Registry, error) {
	defs, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	return NewRegistry(defs)
}

// MustLoadRegistry loads the registry, panicking on error.
// The embedded themes must be valid for the program to function.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the theme with the given id.
func (r *Registry) Get(id string) (*Def, error) {
	for i := range r.themes {
		if r.themes[i].ID == id {
			return &r.themes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
}

// IDs returns all theme ids in file order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.themes))
	for i := range r.themes {
		ids[i] = r.themes[i].ID
	}
	return ids
}

// Count returns the number of loaded themes.
func (r *Registry) Count() int {
	return len(r.themes)
}
