package handler

import (
	"net/http"
	"time"

	"roomly/internal/rooms/store"
	httputil "roomly/pkg/http"
	"roomly/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HealthHandler struct {
	store   *store.Store
	log     *logger.Logger
	started time.Time
}

func NewHealthHandler(st *store.Store, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		store:   st,
		log:     log,
		started: time.Now(),
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rooms, bookings := h.store.Counts()

	if err := httputil.WriteSuccess(w, map[string]any{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"rooms":          rooms,
		"bookings":       bookings,
	}); err != nil {
		h.log.Error("failed to write health response", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Health)
}
