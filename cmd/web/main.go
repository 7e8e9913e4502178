package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/tomz197/nuggethunt/internal/config"
	loopconfig "github.com/tomz197/nuggethunt/internal/loop/config"
	"github.com/tomz197/nuggethunt/internal/loop/server"
	"github.com/tomz197/nuggethunt/internal/web"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = 8080
)

func main() {
	logger := config.NewLogger(os.Stderr, "web")
	if err := config.LoadDotEnv(); err != nil {
		logger.Fatal("failed to load .env", "err", err)
	}

	host := config.GetEnv("WEB_HOST", defaultHost)
	port, err := config.GetEnvInt("WEB_PORT", defaultPort)
	if err != nil {
		logger.Fatal("bad WEB_PORT", "err", err)
	}
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	profile, err := config.ResolveProfile(config.GetEnv("NUGGET_PROFILE", ""))
	if err != nil {
		logger.Fatal("bad profile", "err", err)
	}

	hub := server.NewHub(profile, logger)
	srv := &http.Server{
		Addr:              net.JoinHostPort(host, strconv.Itoa(port)),
		Handler:           web.NewMux(hub, logger, sshHost),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting web server", "addr", "http://"+srv.Addr, "profile", profile.Name)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server", "players", hub.Players())
	hub.Shutdown(loopconfig.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}
