// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server assembles the HTTP surface: one echo instance with
// structured request logging, panic recovery, session cookies, and
// every pipeline mounted under /api/v1.
package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/pdiddy/care-navigator/pkg/types"
)

// New builds the configured echo instance with h's routes mounted.
func New(cfg types.ServerConfig, h *Handler, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(Recovery(logger))
	e.Use(Logger(logger))
	if len(cfg.CORSOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
		}))
	}
	e.Use(Session(!cfg.IsDev()))

	api := e.Group("/api/v1")
	h.RegisterRoutes(api)

	return e
}
