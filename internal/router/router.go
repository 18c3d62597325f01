// Package router builds the echo router: the middleware chain, the
// system routes and the resource routes.
package router

import (
	"github.com/deppfellow/blog-api/internal/handler"
	"github.com/deppfellow/blog-api/internal/middleware"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires the global middleware in order: Recover wraps the whole
// chain, the request id comes next so every later layer can log it, and the
// rate limiter runs after the request logger so denied requests are still
// logged.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerBlogRoutes(router, h, middlewares.Auth)

	return router
}
