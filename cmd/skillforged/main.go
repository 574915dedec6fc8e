// Command skillforged runs the SkillForge progression service.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arkanite/skillforge/internal/api"
	"github.com/arkanite/skillforge/internal/catalog"
	"github.com/arkanite/skillforge/internal/config"
	"github.com/arkanite/skillforge/internal/engine"
	"github.com/arkanite/skillforge/internal/runegen"
	"github.com/arkanite/skillforge/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("SkillForge — character progression service")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	slog.Info("random source seeded", "seed", seed, "fixed", cfg.Seed != 0)

	// ── Database ──────────────────────────────────────────────────────
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Engine ────────────────────────────────────────────────────────
	cat := catalog.Default()
	eng := engine.New(cat, runegen.NewGenerator(rng, nil), rng, nil)
	slog.Info("class catalog loaded", "classes", len(cat.ClassNames()))

	// ── HTTP API ──────────────────────────────────────────────────────
	if cfg.AdminKey == "" {
		slog.Warn("SKILLFORGE_ADMIN_KEY not set — regression endpoint will be disabled")
	}

	srv := &api.Server{
		Store:    db,
		Engine:   eng,
		Addr:     cfg.Addr,
		AdminKey: cfg.AdminKey,
	}
	srv.Start()

	fmt.Printf("SkillForge is up: http://localhost%s/api/v1/classes\n", cfg.Addr)
	fmt.Println("Serving... (Ctrl+C to stop)")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)

	fmt.Println("Service stopped.")
}
