package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/unishare-particles/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a gcfg scene file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// Seed 0 picks a fresh layout every run
	seed := cfg.Particles.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting %d particles at %d TPS (seed %d)", cfg.Particles.Count, cfg.Window.TPS, seed)

	game := NewGame(cfg, seed)

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
