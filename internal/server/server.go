// Package server exposes the HTTP trigger surface: message submission,
// message cancellation and inline completions.
package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"polaris/internal/llm/client"
	"polaris/internal/store"
	"polaris/internal/suggest"
	"polaris/internal/workflow"
)

type Options struct {
	Store        *store.Store
	Engine       *workflow.Engine
	SuggestModel *client.LLMClient
	// SuggestLimiter bounds completion requests; nil means unlimited.
	SuggestLimiter *suggest.Limiter
	InternalKey    string
}

type Server struct {
	echo           *echo.Echo
	store          *store.Store
	engine         *workflow.Engine
	suggestModel   *client.LLMClient
	suggestLimiter *suggest.Limiter
	internalKey    string
}

func New(opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	s := &Server{
		echo:           e,
		store:          opts.Store,
		engine:         opts.Engine,
		suggestModel:   opts.SuggestModel,
		suggestLimiter: opts.SuggestLimiter,
		internalKey:    opts.InternalKey,
	}

	api := e.Group("/api")
	api.POST("/messages", s.handleCreateMessage)
	api.POST("/messages/:id/cancel", s.handleCancelMessage)
	api.POST("/suggestions", s.handleSuggestion)

	return s
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
