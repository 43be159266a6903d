// Package theme provides embedded glyph and color themes for drawing mazes.
package theme

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
