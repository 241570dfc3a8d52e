package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
)

func main() {
	var (
		configPath = flag.String("config", "", "page file (.toml, .yaml); built-in page when empty")
		device     = flag.String("device", "", "device class: auto, touch or pointer")
		watch      = flag.Bool("watch", false, "reload the page file when it changes")
		debug      = flag.Bool("debug", false, "debug logging and overlay")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*configPath, *device, *watch, *debug); err != nil {
		slog.Error("particle-field", "err", err)
		os.Exit(1)
	}
}

func run(configPath, device string, watch, debug bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return fmt.Errorf("load %s: %w", configPath, err)
		}
	}
	switch device {
	case "", "auto", "touch", "pointer":
	default:
		return fmt.Errorf("%w: device %q", config.ErrInvalidConfig, device)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reload chan *config.File
	if watch && configPath != "" {
		reload = make(chan *config.File, 1)
		if err := config.Watch(ctx, configPath, reload); err != nil {
			slog.Error("config watch disabled", "path", configPath, "err", err)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	h := game.New(cfg, game.Options{Device: device, Debug: debug, Reload: reload})
	defer h.Close()
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
