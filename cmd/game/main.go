package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/nuggethunt/internal/audio"
	"github.com/tomz197/nuggethunt/internal/config"
	"github.com/tomz197/nuggethunt/internal/game"
	"github.com/tomz197/nuggethunt/internal/loop/client"
	"github.com/tomz197/nuggethunt/internal/loop/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to LOG_FILE.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")

	profile, err := config.ResolveProfile(config.GetEnv("NUGGET_PROFILE", ""))
	if err != nil {
		return err
	}
	logger.Info("starting", "profile", profile.Name)

	var cues game.AudioCues
	if config.GetEnvBool("NUGGET_AUDIO", false) {
		em := audio.NewEmitter(logger)
		if err := em.Init(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		} else {
			defer em.Close()
			cues = em
		}
	}

	hub := server.NewHub(profile, logger)
	sess := hub.Open(config.GetEnv("USER", "player"))
	defer hub.Close(sess)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sess.Run(ctx)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	c := client.NewClient(sess, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{Audio: cues})
	if err := c.Run(); err != nil {
		logger.Error("client stopped", "err", err)
		return err
	}
	logger.Info("bye", "points", sess.Snapshot().Points)
	return nil
}
