// Package main runs the in-memory dev backend for the taskify CLI.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"taskify/internal/devserver"
	"taskify/internal/logging"
)

const envSecret = "TASKIFY_DEV_SECRET"

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logging.New(os.Stderr, *debug)
	if !*debug {
		log = log.Level(zerolog.InfoLevel)
	}

	_ = godotenv.Load()
	secret := os.Getenv(envSecret)
	if secret == "" {
		secret = "taskify-dev-secret"
		log.Warn().Msgf("%s not set, using the built-in dev secret", envSecret)
	}

	srv := devserver.New(secret)
	log.Info().Str("addr", *addr).Msg("dev backend listening")
	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
