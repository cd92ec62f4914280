// Package handler provides the HTTP handlers for the hoard API.
package handler

import (
	"context"
	"net/http"

	"github.com/mmynk/hoard/internal/models"
	"github.com/mmynk/hoard/internal/service"
)

// Options carries the dependencies of a Handler.
type Options struct {
	Users       *service.UserService
	Items       *service.ItemService
	Collections *service.CollectionService

	// Metrics serves GET /metrics when set.
	Metrics http.Handler

	// Ping reports storage health for GET /health when set.
	Ping func(ctx context.Context) error
}

// Handler holds the server dependencies and registers routes.
type Handler struct {
	opts Options
	mux  *http.ServeMux
}

// New creates a Handler and wires up all routes.
func New(opts Options) *Handler {
	h := &Handler{opts: opts, mux: http.NewServeMux()}
	h.routes()
	return h
}

// ServeHTTP makes Handler an http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.mux.HandleFunc("GET /health", h.health)
	if h.opts.Metrics != nil {
		h.mux.Handle("GET /metrics", h.opts.Metrics)
	}

	registerResource[models.User, models.UserInput](h.mux, "/users", h.opts.Users)
	h.mux.HandleFunc("PUT /users/{id}/items/{itemID}", h.addPossession)
	h.mux.HandleFunc("PUT /users/{id}/collections/{collectionID}", h.addCollector)
	h.mux.HandleFunc("GET /users/items/{id}", h.usersByItem)
	h.mux.HandleFunc("GET /users/collections/{id}", h.usersByCollection)

	registerResource[models.Item, models.ItemInput](h.mux, "/items", h.opts.Items)
	h.mux.HandleFunc("GET /items/owners/{id}", h.itemsByOwner)

	registerResource[models.Collection, models.CollectionInput](h.mux, "/collections", h.opts.Collections)
	h.mux.HandleFunc("GET /collections/owners/{id}", h.collectionsByOwner)
	h.mux.HandleFunc("PUT /collections/{id}/items/{itemID}", h.addItemToCollection)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.opts.Ping != nil {
		if err := h.opts.Ping(r.Context()); err != nil {
			logStoreError(r, err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
