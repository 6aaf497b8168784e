// Package api contamprj REST API
//
// @title           contamprj REST API
// @version         1.0.0
// @description     Archive and validate CONTAM PRJ records.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

// Routes builds the router. Metrics are exposed from gatherer at /metrics.
func (s *Server) Routes(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// unprotected for scraping
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/swagger/doc.json", handleSwaggerDoc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		r.Group(func(r chi.Router) {
			r.Use(apiKeyMiddleware(s.config.APIKey))

			r.Get("/projects", s.metrics.InstrumentHandler("GET", "/api/v1/projects", s.handleListProjects))
			r.Post("/projects", s.metrics.InstrumentHandler("POST", "/api/v1/projects", s.handleCreateProject))

			r.Put("/projects/{project}/{kind}",
				s.metrics.InstrumentHandler("PUT", "/api/v1/projects/{project}/{kind}", s.handlePutRecord))
			r.Get("/projects/{project}/{kind}",
				s.metrics.InstrumentHandler("GET", "/api/v1/projects/{project}/{kind}", s.handleListRecords))
			r.Get("/projects/{project}/{kind}/{nr}",
				s.metrics.InstrumentHandler("GET", "/api/v1/projects/{project}/{kind}/{nr}", s.handleGetRecord))
			r.Delete("/projects/{project}/{kind}/{nr}",
				s.metrics.InstrumentHandler("DELETE", "/api/v1/projects/{project}/{kind}/{nr}", s.handleDeleteRecord))

			r.Post("/check/{kind}", s.metrics.InstrumentHandler("POST", "/api/v1/check/{kind}", s.handleCheck))
		})
	})

	return r
}

func handleSwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}

// StartServer serves the API on config.Addr until ctx is cancelled
func StartServer(ctx context.Context, archive RecordArchive, config ServerConfig, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := NewServer(archive, config, NewMetrics(reg), logger)
	httpServer := &http.Server{
		Addr:              config.Addr,
		Handler:           server.Routes(reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting contamprj REST API server", "addr", config.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", config.Addr, err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
