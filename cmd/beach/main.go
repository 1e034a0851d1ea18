//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"beach-weather/internal/app"
	"beach-weather/internal/sims/beach"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	worldCfg, err := cfg.WorldConfig()
	if err != nil {
		log.Fatal(err)
	}

	world := beach.NewWithConfig(worldCfg)
	world.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	game := app.New(world, cfg.Tick(), cfg.Panel)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Beach Weather")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
