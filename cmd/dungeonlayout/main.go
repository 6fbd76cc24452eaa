// Package main is the entry point for the interactive layout viewer. When
// stdout is not a terminal it generates one layout and prints it instead.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/dungeonlayout/internal/config"
	"github.com/samdwyer/dungeonlayout/internal/layout"
	"github.com/samdwyer/dungeonlayout/internal/presets"
	"github.com/samdwyer/dungeonlayout/internal/report"
	"github.com/samdwyer/dungeonlayout/internal/session"
	"github.com/samdwyer/dungeonlayout/internal/telemetry"
	"github.com/samdwyer/dungeonlayout/internal/ui"
	"github.com/samdwyer/dungeonlayout/internal/viewer"
)

func main() {
	asJSON := flag.Bool("json", false, "print the layout as JSON instead of opening the viewer")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	telemetry.ConfigureEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "viewer")
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Running without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	registry, err := presets.LoadRegistryWithFile(os.Getenv("DUNGEON_PRESETS_FILE"))
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}
	cfg, err := config.Load(registry)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *asJSON || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := printLayout(ctx, cfg.Layout, *asJSON); err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		return
	}

	colors, err := cfg.Palette.Resolve()
	if err != nil {
		log.Fatalf("Invalid palette for preset %q: %v", cfg.Preset.ID, err)
	}
	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	if err := viewer.New(screen, cfg.Layout, colors).Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Viewer error: %v", err)
	}
}

func printLayout(ctx context.Context, cfg layout.Config, asJSON bool) error {
	cfg.Seed = layout.ResolveSeed(cfg.Seed)
	s := session.New(cfg, layout.WithTracer(telemetry.Tracer("cli")))
	defer s.Close()

	l, err := s.Run(ctx)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	}
	return report.Write(os.Stdout, l)
}
