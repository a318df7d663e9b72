package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/augurk/augurk/internal/config"
	"github.com/augurk/augurk/pkg/middleware"
)

func buildRouter(runtime *Runtime, cfg *config.Config, modules *Modules) (http.Handler, error) {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !runtime.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	if err := modules.Mount(mux, cfg); err != nil {
		return nil, err
	}

	handler := middleware.Logger(runtime.Logger)(mux)
	handler = middleware.CORS(&cfg.CORS)(handler)

	return handler, nil
}
