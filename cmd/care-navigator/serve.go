// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/care-navigator/internal/config"
	"github.com/pdiddy/care-navigator/internal/locator"
	"github.com/pdiddy/care-navigator/internal/qa"
	"github.com/pdiddy/care-navigator/internal/research"
	"github.com/pdiddy/care-navigator/internal/server"
	"github.com/pdiddy/care-navigator/internal/session"
	"github.com/pdiddy/care-navigator/internal/symptoms"
	"github.com/pdiddy/care-navigator/internal/trials"
)

// shutdownGrace bounds in-flight request draining on shutdown.
const shutdownGrace = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the care-navigator API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer() error {
	cfg := config.Load(viper.GetViper())

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Server.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Secrets override configuration where present.
	if email := loadedSecrets["contact-email"]; email != "" {
		ua := cfg.Locator.UserAgent + " (" + email + ")"
		cfg.Locator.UserAgent = ua
		cfg.Research.UserAgent = ua
		cfg.Trials.UserAgent = ua
	}
	if key := loadedSecrets["qa-api-key"]; key != "" && cfg.QA.APIKey == "" {
		cfg.QA.APIKey = key
	}

	store, err := session.NewStore()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open session store")
	}
	defer store.Close()

	checker, err := symptoms.NewChecker()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load symptom rules")
	}

	answering := qa.NewService(cfg.QA)
	probeCtx, probeCancel := context.WithTimeout(context.Background(), cfg.QA.Timeout)
	if err := answering.Probe(probeCtx); err != nil {
		logger.Warn().Err(err).Msg("question answering unavailable for this process")
	}
	probeCancel()

	h := server.NewHandler(
		locator.NewService(cfg.Locator),
		research.NewService(cfg.Research),
		trials.NewService(cfg.Trials),
		answering,
		store,
		checker,
	)
	e := server.New(cfg.Server, h, logger)

	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info().Str("addr", addr).Bool("qa_available", answering.Available()).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
