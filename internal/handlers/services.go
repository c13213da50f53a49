// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"analystsite/internal/cache"
	"analystsite/internal/models"
	"analystsite/internal/store"
)

// Services groups the service resource handlers.
type Services struct {
	store *store.ServiceStore
	cache *cache.ListCache
}

// NewServices creates a new Services handler group.
func NewServices(s *store.ServiceStore, c *cache.ListCache) *Services {
	return &Services{store: s, cache: c}
}

// serviceRequest accepts both the canonical snake_case field names and the
// camelCase aliases some admin clients send. Aliases are folded into the
// canonical fields by normalize before use.
type serviceRequest struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	Description      string `json:"description"`
	ValueProposition string `json:"value_proposition"`
	Icon             string `json:"icon"`
	Color            string `json:"color"`
	AccentColor      string `json:"accent_color"`
	DisplayOrder     *int   `json:"display_order"`
	IsActive         *bool  `json:"is_active"`

	ValuePropositionAlias string `json:"valueProposition"`
	AccentColorAlias      string `json:"accentColor"`
	DisplayOrderAlias     *int   `json:"displayOrder"`
	IsActiveAlias         *bool  `json:"isActive"`
}

func (req *serviceRequest) normalize() {
	if req.ValueProposition == "" {
		req.ValueProposition = req.ValuePropositionAlias
	}
	if req.AccentColor == "" {
		req.AccentColor = req.AccentColorAlias
	}
	if req.DisplayOrder == nil {
		req.DisplayOrder = req.DisplayOrderAlias
	}
	if req.IsActive == nil {
		req.IsActive = req.IsActiveAlias
	}
}

// toModel validates the request and builds a Service with defaults applied.
func (req *serviceRequest) toModel() (*models.Service, string) {
	req.normalize()

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, "title and description are required"
	}

	sv := &models.Service{
		ID:               req.ID,
		Title:            req.Title,
		Subtitle:         req.Subtitle,
		Description:      req.Description,
		ValueProposition: req.ValueProposition,
		Icon:             req.Icon,
		Color:            req.Color,
		AccentColor:      req.AccentColor,
		IsActive:         true,
	}
	if req.DisplayOrder != nil {
		sv.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		sv.IsActive = *req.IsActive
	}
	sv.ApplyDefaults()
	return sv, ""
}

// List handles GET /services. Returns active services only, ordered by
// display order.
func (h *Services) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if payload, ok := h.cache.Get(ctx, cache.KeyServices); ok {
		writeCached(w, payload)
		return
	}

	services, err := h.store.ListActive()
	if err != nil {
		slog.Error("service list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load services")
		return
	}
	if services == nil {
		services = []models.Service{}
	}

	payload, err := json.Marshal(services)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load services")
		return
	}

	h.cache.Set(ctx, cache.KeyServices, payload)
	writeCached(w, payload)
}

// ListAll handles GET /services/all for the admin panel, including
// inactive rows.
func (h *Services) ListAll(w http.ResponseWriter, r *http.Request) {
	services, err := h.store.List()
	if err != nil {
		slog.Error("service list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load services")
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// Create handles POST /services.
func (h *Services) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	svc, msg := req.toModel()
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if svc.ID == "" {
		svc.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	created, err := h.store.Create(svc)
	if err != nil {
		slog.Error("service create failed", "error", err, "id", svc.ID)
		writeError(w, http.StatusInternalServerError, "failed to create service")
		return
	}

	h.cache.Invalidate(r.Context(), cache.KeyServices)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "service": created})
}

// Update handles PUT /services. The target id rides in the body.
func (h *Services) Update(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	svc, msg := req.toModel()
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.store.Update(svc)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	if err != nil {
		slog.Error("service update failed", "error", err, "id", req.ID)
		writeError(w, http.StatusInternalServerError, "failed to update service")
		return
	}

	h.cache.Invalidate(r.Context(), cache.KeyServices)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "service": updated})
}

// Delete handles DELETE /services/{id}.
func (h *Services) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	if err != nil {
		slog.Error("service delete failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete service")
		return
	}

	h.cache.Invalidate(r.Context(), cache.KeyServices)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
