package main

import (
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"

	"github.com/khangviet/storefront/config"
	"github.com/khangviet/storefront/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	conf := config.CreateNewConfig()

	server := app.App{
		Config: conf,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		if err := server.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop server cleanly")
		}
	}()

	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
