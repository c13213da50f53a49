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
	"analystsite/internal/slug"
	"analystsite/internal/store"
)

// Blogs groups the blog resource handlers.
type Blogs struct {
	store *store.BlogStore
	cache *cache.ListCache
}

// NewBlogs creates a new Blogs handler group.
func NewBlogs(s *store.BlogStore, c *cache.ListCache) *Blogs {
	return &Blogs{store: s, cache: c}
}

// blogRequest is the JSON body accepted by create and update. Everything
// beyond title, excerpt, and content is optional and defaulted.
type blogRequest struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// toModel validates the request and builds a Blog with defaults applied.
func (req *blogRequest) toModel() (*models.Blog, string) {
	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Excerpt) == "" ||
		strings.TrimSpace(req.Content) == "" {
		return nil, "title, excerpt and content are required"
	}

	s := req.Slug
	if s == "" {
		s = slug.Generate(req.Title)
	}
	if s == "" {
		return nil, "could not derive a slug from the title"
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, "date must be formatted as YYYY-MM-DD"
		}
		date = parsed
	}

	b := &models.Blog{
		ID:       req.ID,
		Slug:     s,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Date:     date,
		Category: req.Category,
		Image:    req.Image,
	}
	b.ApplyDefaults()
	return b, ""
}

// List handles GET /blogs. Returns every blog ordered by date descending.
func (h *Blogs) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if payload, ok := h.cache.Get(ctx, cache.KeyBlogs); ok {
		writeCached(w, payload)
		return
	}

	blogs, err := h.store.List()
	if err != nil {
		slog.Error("blog list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load blogs")
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}

	payload, err := json.Marshal(blogs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load blogs")
		return
	}

	h.cache.Set(ctx, cache.KeyBlogs, payload)
	writeCached(w, payload)
}

// Get handles GET /blogs/{slug}. Serves the article page fetch.
func (h *Blogs) Get(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")

	blog, err := h.store.FindBySlug(s)
	if err != nil {
		slog.Error("blog lookup failed", "error", err, "slug", s)
		writeError(w, http.StatusInternalServerError, "failed to load blog")
		return
	}
	if blog == nil {
		writeError(w, http.StatusNotFound, "blog not found")
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

// Create handles POST /blogs.
func (h *Blogs) Create(w http.ResponseWriter, r *http.Request) {
	var req blogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	blog, msg := req.toModel()
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if blog.ID == "" {
		blog.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	created, err := h.store.Create(blog)
	if errors.Is(err, store.ErrSlugTaken) {
		writeError(w, http.StatusConflict, "a blog with this slug already exists")
		return
	}
	if err != nil {
		slog.Error("blog create failed", "error", err, "id", blog.ID)
		writeError(w, http.StatusInternalServerError, "failed to create blog")
		return
	}

	h.cache.Invalidate(r.Context(), cache.KeyBlogs)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "blog": created})
}

// Update handles PUT /blogs. The target id rides in the body.
func (h *Blogs) Update(w http.ResponseWriter, r *http.Request) {
	var req blogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	blog, msg := req.toModel()
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := h.store.Update(blog)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "blog not found")
		return
	case errors.Is(err, store.ErrSlugTaken):
		writeError(w, http.StatusConflict, "a blog with this slug already exists")
		return
	case err != nil:
		slog.Error("blog update failed", "error", err, "id", req.ID)
		writeError(w, http.StatusInternalServerError, "failed to update blog")
		return
	}

	h.cache.Invalidate(r.Context(), cache.KeyBlogs)
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "blog": updated})
}

// Delete handles DELETE /blogs/{id}.
func (h *Blogs) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "blog not found")
		return
	}
	if err != nil {
		slog.Error("blog delete failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete blog")
		return
	}

	h.cache.Invalidate(r.Context(), cache.KeyBlogs)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
