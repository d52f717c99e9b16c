//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"topoviz/internal/app"
	"topoviz/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Verbose {
		core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	terrainCfg, err := cfg.TerrainConfig()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(terrainCfg, cfg.HUDWidth, cfg.Seed, cfg.Synth)

	ebiten.SetWindowTitle("topoviz")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width+cfg.HUDWidth, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
