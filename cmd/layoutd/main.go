// Package main runs the layout HTTP service.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonlayout/internal/config"
	"github.com/samdwyer/dungeonlayout/internal/presets"
	"github.com/samdwyer/dungeonlayout/internal/server"
	"github.com/samdwyer/dungeonlayout/internal/store"
	"github.com/samdwyer/dungeonlayout/internal/telemetry"
)

// ============================================================
// Layout Service
// ============================================================

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	telemetry.ConfigureEnv()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, "layoutd")
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	svc := config.LoadService()
	registry, err := presets.LoadRegistryWithFile(os.Getenv("DUNGEON_PRESETS_FILE"))
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}
	gen, err := config.Load(registry)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := store.OpenSQLite(svc.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	layouts := store.New(db)
	if err := layouts.Init(ctx); err != nil {
		log.Fatalf("init db: %v", err)
	}

	app := server.New(server.NewLayoutHandler(layouts, registry, gen.Preset.ID, gen.Layout), server.Options{
		AppName:      "Layout Service",
		ReadTimeout:  time.Duration(svc.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(svc.WriteTimeout) * time.Second,
		AccessLog:    true,
	})

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", svc.Port)
	log.Printf("Starting Layout Service on %s (presets: %d, db: %s)", addr, registry.Count(), svc.DBPath)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
