package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"bookservice/internal/config"
)

const shutdownTimeout = 20 * time.Second

// serve runs the HTTP server until ctx is cancelled, then gives in-flight
// requests shutdownTimeout to complete.
func serve(ctx context.Context, cfg config.Config, repo store) error {
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      routes(ctx, cfg, repo),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		log.Printf("shutting down server addr=%s", cfg.Addr)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr <- httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("starting server addr=%s store=%s", cfg.Addr, cfg.Store)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}
	log.Printf("server stopped addr=%s", cfg.Addr)
	return nil
}
