package main

import (
	"context"
	"net/http"

	"bookservice/internal/book"
	"bookservice/internal/config"
	"bookservice/internal/httpx"
)

// routes builds the full handler chain. ctx bounds background work started
// by the middleware.
func routes(ctx context.Context, cfg config.Config, repo store) http.Handler {
	service := book.NewService(repo, book.NewLinker(cfg.BaseURL))
	bookHandler := book.NewHTTPHandler(service)

	router := http.NewServeMux()
	router.HandleFunc("GET /healthz", httpx.Healthz)
	router.HandleFunc("GET /readyz", httpx.Readyz(repo))
	bookHandler.Register(router)

	rateLimit := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		rateLimit.Middleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
