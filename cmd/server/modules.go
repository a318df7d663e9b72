package main

import (
	"net/http"

	"github.com/augurk/augurk/internal/config"
	"github.com/augurk/augurk/internal/expiration"
	"github.com/augurk/augurk/internal/features"
	"github.com/augurk/augurk/pkg/openapi"
	"github.com/augurk/augurk/pkg/routes"
)

// apiBasePath prefixes all domain endpoints.
const apiBasePath = "/api"

// Modules wires the domain systems and their HTTP handlers.
type Modules struct {
	Features   *features.Handler
	Expiration *expiration.Handler

	sweeper *expiration.Sweeper
}

// NewModules builds the domain systems on top of the shared runtime.
func NewModules(runtime *Runtime, cfg *config.Config) *Modules {
	db := runtime.Database.DB()

	featureSys := features.New(db, runtime.Logger, runtime.Pagination)
	featureHandler := features.NewHandler(
		featureSys,
		runtime.Logger,
		runtime.Pagination,
		cfg.Features.MaxPayloadSizeBytes(),
	)

	store := features.NewStore(db, runtime.Logger)
	manager := expiration.NewManager(store, runtime.Logger)
	metrics := expiration.NewMetrics(nil)
	sweeper := expiration.NewSweeper(manager, store, cfg.Expiration, metrics, nil, runtime.Logger)
	expirationHandler := expiration.NewHandler(sweeper, runtime.Logger)

	return &Modules{
		Features:   featureHandler,
		Expiration: expirationHandler,
		sweeper:    sweeper,
	}
}

// Mount registers all module routes on the multiplexer and serves the
// generated API specification at /api/openapi.json.
func (m *Modules) Mount(mux *http.ServeMux, cfg *config.Config) error {
	spec := openapi.NewSpec(cfg.OpenAPI.Title, version)
	spec.SetDescription(cfg.OpenAPI.Description)
	spec.AddServer(apiBasePath)
	spec.Components = apiComponents()

	routes.Register(mux, apiBasePath, spec,
		m.Features.Routes(),
		m.Expiration.Routes(),
	)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return err
	}
	mux.HandleFunc("GET "+apiBasePath+"/openapi.json", openapi.ServeSpec(specBytes))

	return nil
}

// Start begins module background work.
func (m *Modules) Start(runtime *Runtime) error {
	return m.sweeper.Start(runtime.Lifecycle)
}
