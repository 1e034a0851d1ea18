package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"beach-weather/internal/core"
	"beach-weather/internal/sims/beach"
	"beach-weather/internal/tty"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file")
	seed := flag.Int64("seed", 0, "seed for new sessions (0 keeps the config seed)")
	tps := flag.Int("tps", 30, "ticks per second")
	logPath := flag.String("log", "", "write session events to this file")
	flag.Parse()

	cfg := beach.DefaultConfig()
	if *configPath != "" {
		loaded, err := beach.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	// stderr belongs to the screen, so events go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	world := beach.NewWithConfig(cfg)
	world.SetLogger(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug})))

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	step := core.NewFixedStep(*tps)
	session := tty.NewSession(screen, world, step.Step())
	session.Draw()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Millisecond * 2)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !session.HandleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			if step.ShouldStep() {
				session.Tick(now)
			}
		}
	}
}
