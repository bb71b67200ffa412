package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	httpapi "github.com/yourorg/places-api/http"
	"github.com/yourorg/places-api/internal/enricher"
	"github.com/yourorg/places-api/internal/exporter"
	"github.com/yourorg/places-api/internal/logger"
	"github.com/yourorg/places-api/places"
)

func BuildRouter(client *places.Client, exp *exporter.Exporter, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(logger.Middleware(log))
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(100, 1*time.Minute)) // protect upstream quota
	// Open CORS so browser extensions and external origins can call us.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	httpapi.RegisterHealth(r, httpapi.HealthDeps{Places: client})
	httpapi.RegisterSearch(r, httpapi.SearchDeps{Places: client})
	httpapi.RegisterAllPages(r, httpapi.AllPagesDeps{Places: client, Logger: log})
	httpapi.RegisterEnrich(r, httpapi.EnrichDeps{Enricher: enricher.New(client, log)})
	httpapi.RegisterExport(r, httpapi.ExportDeps{Exporter: exp})

	// Browser UI
	r.Handle("/app/*", http.StripPrefix("/app/", http.FileServer(http.Dir("public"))))

	return r
}
