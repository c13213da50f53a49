// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"analystsite/internal/upload"
)

// Uploads handles multipart media uploads for the admin panel.
type Uploads struct {
	saver *upload.Saver
}

// NewUploads creates a new Uploads handler group.
func NewUploads(saver *upload.Saver) *Uploads {
	return &Uploads{saver: saver}
}

// Upload handles POST /upload. Accepts a single multipart file field named
// "file" and returns the public URL plus the detected media class.
func (h *Uploads) Upload(w http.ResponseWriter, r *http.Request) {
	// Limit request body to the video ceiling plus form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxVideoSize+1024)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, "video too large, maximum size is 50 MB")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	res, err := h.saver.Save(file, header)
	if upload.IsValidation(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("upload failed", "error", err, "filename", header.Filename)
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	slog.Info("media uploaded", "url", res.URL, "type", res.Kind, "size", header.Size)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"url":     res.URL,
		"type":    res.Kind,
	})
}
