package expiration

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/augurk/augurk/pkg/handlers"
	"github.com/augurk/augurk/pkg/routes"
)

// Handler provides HTTP endpoints for expiration operations.
type Handler struct {
	sweeper *Sweeper
	logger  *slog.Logger
}

// NewHandler creates an expiration handler.
func NewHandler(sweeper *Sweeper, logger *slog.Logger) *Handler {
	return &Handler{
		sweeper: sweeper,
		logger:  logger.With("handler", "expiration"),
	}
}

// Routes returns the expiration endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/expiration",
		Tags:        []string{"Expiration"},
		Description: "Expiration policy management",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/sweep", Handler: h.Sweep, OpenAPI: Spec.Sweep},
			{Method: "GET", Pattern: "/schedule", Handler: h.Schedule, OpenAPI: Spec.Schedule},
		},
	}
}

// Sweep triggers an immediate sweep and returns its result.
func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.sweeper.RunOnce(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

type scheduleResponse struct {
	Scheduled bool       `json:"scheduled"`
	NextRun   *time.Time `json:"next_run,omitempty"`
}

// Schedule reports whether sweeps are scheduled and when the next one runs.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	next := h.sweeper.NextRun()
	handlers.RespondJSON(w, http.StatusOK, scheduleResponse{
		Scheduled: next != nil,
		NextRun:   next,
	})
}
