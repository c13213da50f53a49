// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"analystsite/internal/cache"
	"analystsite/internal/models"
	"analystsite/internal/store"
)

// ContentItems groups the homepage carousel slide handlers.
type ContentItems struct {
	store *store.ContentItemStore
	cache *cache.ListCache
}

// NewContentItems creates a new ContentItems handler group.
func NewContentItems(s *store.ContentItemStore, c *cache.ListCache) *ContentItems {
	return &ContentItems{store: s, cache: c}
}

// contentItemRequest accepts both snake_case fields and the camelCase
// aliases used by the admin client.
type contentItemRequest struct {
	ID           string                 `json:"id"`
	Type         models.ContentItemType `json:"type"`
	MediaURL     *string                `json:"media_url"`
	Title        *string                `json:"title"`
	Subtitle     *string                `json:"subtitle"`
	Description  *string                `json:"description"`
	Eyebrow      *string                `json:"eyebrow"`
	DisplayOrder *int                   `json:"display_order"`
	IsActive     *bool                  `json:"is_active"`

	MediaURLAlias     *string `json:"mediaUrl"`
	DisplayOrderAlias *int    `json:"displayOrder"`
	IsActiveAlias     *bool   `json:"isActive"`
}

func (req *contentItemRequest) normalize() {
	if req.MediaURL == nil {
		req.MediaURL = req.MediaURLAlias
	}
	if req.DisplayOrder == nil {
		req.DisplayOrder = req.DisplayOrderAlias
	}
	if req.IsActive == nil {
		req.IsActive = req.IsActiveAlias
	}
}

// toModel validates the request and builds a ContentItem. The media URL
// and captions are trimmed and stored nil when blank, so a text-only
// slide has no media and empty captions persist as NULL.
func (req *contentItemRequest) toModel() (*models.ContentItem, string) {
	req.normalize()

	if !req.Type.Valid() {
		return nil, "type must be \"image\" or \"video\""
	}

	item := &models.ContentItem{
		ID:          req.ID,
		Type:        req.Type,
		MediaURL:    req.MediaURL,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Eyebrow:     req.Eyebrow,
		IsActive:    true,
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.Normalize()
	return item, ""
}

// List handles GET /content-items. Returns active slides only, ordered by
// display order ascending then creation descending.
func (h *ContentItems) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if payload, ok := h.cache.Get(ctx, cache.KeyContentItems); ok {
		writeCached(w, payload)
		return
	}

	items, err := h.store.ListActive()
	if err != nil {
		slog.Error("content item list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load content items")
		return
	}
	if items == nil {
		items = []models.ContentItem{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load content items")
		return
	}

	h.cache.Set(ctx, cache.KeyContentItems, payload)
	writeCached(w, payload)
}

// ListAll handles GET /content-items/all for the admin panel, including
// inactive slides.
func (h *ContentItems) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List()
	if err != nil {
		slog.Error("content item list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load content items")
		return
	}
	if items == nil {
		items = []models.ContentItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /content-items/{id}.
func (h *ContentItems) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.store.FindByID(id)
	if err != nil {
		slog.Error("content item lookup failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to load content item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "content item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /content-items. A slide created without an explicit
// display order goes to the end of the carousel.
func (h *ContentItems) Create(w http.ResponseWriter, r *http.Request) {
	var req contentItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item, msg := req.toModel()
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if item.ID == "" {
		item.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	if req.DisplayOrder == nil {
		count, err := h.store.Count()
		if err != nil {
			slog.Error("content item count failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to create content item")
			return
		}
		item.DisplayOrder = count
	}

	created, err := h.store.Create(item)
	if err != nil {
		slog.Error("content item create failed", "error", err, "id", item.ID)
		writeError(w, http.StatusInternalServerError, "failed to create content item")
		return
	}

	h.cache.Invalidate(r.Context(), cache.KeyContentItems)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "item": created})
}

// Update handles PUT /content-items. The target id rides in the body.
func (h *ContentItems) Update(w http.ResponseWriter, r *http.Request) {
	var req contentItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	item, msg := req.toModel()
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.store.Update(item)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "content item not found")
		return
	}
	if err != nil {
		slog.Error("content item update failed", "error", err, "id", req.ID)
		writeError(w, http.StatusInternalServerError, "failed to update content item")
		return
	}

	h.cache.Invalidate(r.Context(), cache.KeyContentItems)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "item": updated})
}

// Delete handles DELETE /content-items/{id}.
func (h *ContentItems) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "content item not found")
		return
	}
	if err != nil {
		slog.Error("content item delete failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete content item")
		return
	}

	h.cache.Invalidate(r.Context(), cache.KeyContentItems)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
