package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"

	"github.com/yourorg/places-api/internal/config"
	"github.com/yourorg/places-api/internal/exporter"
	"github.com/yourorg/places-api/internal/logger"
	"github.com/yourorg/places-api/places"
)

// portAttempts bounds how far past the configured port we probe when it
// is already taken.
const portAttempts = 10

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if cfg.APIKey == "" {
		log.Warn("GOOGLE_MAPS_API_KEY is not set; upstream calls will fail until it is configured")
	}

	client := places.NewClientWithBaseURL(cfg.APIKey, cfg.BaseURL)
	exp := exporter.New(cfg.TemplatePath)
	router := BuildRouter(client, exp, log)

	ln, port, err := listenWithFallback(cfg.Port)
	if err != nil {
		log.Error("could not find an available port", "start_port", cfg.Port, "attempts", portAttempts, "error", err)
		log.Error("set a different PORT in your .env file or free the port", "hint", fmt.Sprintf("cmd/checkport %d --kill", cfg.Port))
		os.Exit(1)
	}
	log.Info("places-api listening", "port", port)

	if err := http.Serve(ln, router); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// listenWithFallback tries the configured port and walks upward when it
// is in use, the same way the dev tooling expects.
func listenWithFallback(start int) (net.Listener, int, error) {
	var lastErr error
	for i := 0; i < portAttempts; i++ {
		port := start + i
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			return ln, port, nil
		}
		lastErr = err
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, 0, err
		}
	}
	return nil, 0, lastErr
}
