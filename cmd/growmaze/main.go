// Package main is the entry point for growmaze.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/samdwyer/growmaze/internal/config"
	"github.com/samdwyer/growmaze/internal/maze"
	"github.com/samdwyer/growmaze/internal/telemetry"
	"github.com/samdwyer/growmaze/internal/theme"
	"github.com/samdwyer/growmaze/internal/viewer"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Printf("[APP] [ERROR] %v", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("growmaze", flag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	registry, err := theme.LoadRegistry()
	if err != nil {
		return fmt.Errorf("loading themes: %w", err)
	}
	def, err := registry.Get(cfg.Theme)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, registry.IDs())
	}

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - mazes still generate
			log.Printf("[APP] [WARN] telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("[APP] [WARN] telemetry shutdown: %v", err)
				}
			}()
		}
	}

	if useViewer(cfg.View, out) {
		v, err := viewer.New(viewer.Options{
			Width:  cfg.Width,
			Height: cfg.Height,
			Seed:   cfg.Seed,
			Exit:   cfg.Exit,
			Theme:  def,
		})
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		return v.Run(ctx)
	}

	var opts []maze.Option
	if cfg.Exit {
		opts = append(opts, maze.WithExit())
	}
	grid, _, err := maze.NewCarver(cfg.RNG(), opts...).Carve(ctx, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, maze.NewRenderer(def.Wall, def.Open).Render(grid))
	return err
}

// useViewer resolves the view mode against the output writer. Auto mode
// opens the viewer only when out is a terminal.
func useViewer(mode config.ViewMode, out io.Writer) bool {
	switch mode {
	case config.ViewOn:
		return true
	case config.ViewAuto:
		f, ok := out.(interface{ Fd() uintptr })
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return false
	}
}
