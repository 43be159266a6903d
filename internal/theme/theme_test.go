package theme

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadThemes(t *testing.T) {
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("Failed to load themes: %v", err)
	}

	expectedIDs := map[string]bool{"block": false, "ascii": false, "shade": false, "compact": false}
	for _, th := range themes {
		if _, ok := expectedIDs[th.ID]; ok {
			expectedIDs[th.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected theme %q not found", id)
		}
	}
}

func TestRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	require.NoError(t, err)
	assert.Equal(t, 4, registry.Count())
	assert.Equal(t, []string{"block", "ascii", "shade", "compact"}, registry.IDs())

	block, err := registry.Get(DefaultID)
	require.NoError(t, err)
	assert.Equal(t, "██", block.Wall)
	assert.Equal(t, "  ", block.Open)
	assert.Equal(t, 2, block.GlyphWidth())

	compact, err := registry.Get("compact")
	require.NoError(t, err)
	assert.Equal(t, 1, compact.GlyphWidth())

	_, err = registry.Get("neon")
	assert.True(t, errors.Is(err, ErrUnknownTheme))
}

func TestDefValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     Def
		wantErr bool
	}{
		{"valid", Def{ID: "ok", Wall: "██", Open: "  ", WallColor: "#FFF", OpenColor: "#000000"}, false},
		{"mismatched widths", Def{ID: "bad", Wall: "#", Open: "  ", WallColor: "#FFF", OpenColor: "#000"}, true},
		{"empty glyph", Def{ID: "bad", Wall: "", Open: "", WallColor: "#FFF", OpenColor: "#000"}, true},
		{"bad color", Def{ID: "bad", Wall: "#", Open: " ", WallColor: "red", OpenColor: "#000"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	def := Def{ID: "dup", Wall: "#", Open: " ", WallColor: "#FFF", OpenColor: "#000"}
	_, err := NewRegistry([]Def{def, def})
	assert.Error(t, err)

	_, err = NewRegistry(nil)
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    tcell.Color
		wantErr bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), false},
		{"00ff80", tcell.NewRGBColor(0, 255, 128), false},
		{"#F00", tcell.NewRGBColor(255, 0, 0), false},
		{"#12345", tcell.ColorDefault, true},
		{"#GG0000", tcell.ColorDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
