package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epiday/epiday/internal/api"
	"github.com/epiday/epiday/internal/config"
	"github.com/epiday/epiday/internal/intra"
	"github.com/epiday/epiday/internal/platform/logger"
)

func main() {
	// Optional upstream override, mainly for pointing at a portal stub
	intraURL := flag.String("intra-url", "", "Override EPIDAY_INTRA_BASE_URL")
	flag.Parse()

	log := logger.New("epiday")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *intraURL != "" {
		cfg.IntraBaseURL = *intraURL
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("intra_base_url", cfg.IntraBaseURL).
		Msg("Gateway starting…")

	client := intra.NewClient(cfg.IntraBaseURL, cfg.UpstreamTimeout())

	router := api.NewRouter(client, log)
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
