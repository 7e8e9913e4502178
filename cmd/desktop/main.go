package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/nuggethunt/internal/audio"
	"github.com/tomz197/nuggethunt/internal/config"
	"github.com/tomz197/nuggethunt/internal/desktop"
	"github.com/tomz197/nuggethunt/internal/game"
)

const (
	windowWidth  = 1024
	windowHeight = 768
)

func main() {
	logger := config.NewLogger(os.Stderr, "desktop")
	if err := config.LoadDotEnv(); err != nil {
		logger.Fatal("failed to load .env", "err", err)
	}

	profile, err := config.ResolveProfile(config.GetEnv("NUGGET_PROFILE", ""))
	if err != nil {
		logger.Fatal("bad profile", "err", err)
	}

	opts := []game.Option{
		game.WithLogger(logger),
		game.WithScreen(windowWidth, windowHeight),
	}
	if config.GetEnvBool("NUGGET_AUDIO", true) {
		em := audio.NewEmitter(logger)
		if err := em.Init(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		} else {
			defer em.Close()
			opts = append(opts, game.WithAudio(em))
		}
	}

	g := game.New(profile, opts...)
	sprites := desktop.LoadSprites(config.GetEnv("ASSET_DIR", ""), logger)

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Nugget Hunt")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "profile", profile.Name)
	if err := ebiten.RunGame(desktop.NewApp(g, sprites, logger)); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
