package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/marianozunino/share/internal/app"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the configuration file")
	flag.Parse()

	application, err := app.New(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	application.Start()
	defer application.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
		return
	}

	log.Info().Msg("Server shutdown complete")
}
