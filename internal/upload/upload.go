// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

// Package upload validates and persists uploaded media files to the local
// public directory. Images are stored under images/blogs/ and videos under
// videos/, each with a collision-resistant timestamped filename, and served
// back as static files by the router.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxImageSize is the upload ceiling for image files (5 MB).
	MaxImageSize = 5 << 20

	// MaxVideoSize is the upload ceiling for video files (50 MB).
	MaxVideoSize = 50 << 20
)

// Kind classifies an accepted upload by media class.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// allowedImageTypes maps accepted image MIME types to a default extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// allowedVideoTypes maps accepted video MIME types to a default extension.
var allowedVideoTypes = map[string]string{
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
	"video/ogg":  ".ogv",
}

// ValidationError describes a rejected upload (missing, wrong type, too
// large). Handlers map it to a 400 response with the message verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// IsValidation reports whether err is an upload validation failure, as
// opposed to a filesystem fault.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Result describes a stored upload.
type Result struct {
	// URL is the public path the file is served from.
	URL string

	// Kind is the detected media class.
	Kind Kind
}

// Saver validates uploads and writes them under the base directory.
type Saver struct {
	baseDir string
}

// NewSaver creates a Saver rooted at baseDir (the public static directory).
func NewSaver(baseDir string) *Saver {
	return &Saver{baseDir: baseDir}
}

// Save validates the uploaded file and writes it to disk, returning the
// public URL and detected media class. Validation runs in order: content
// type, then size against the per-class ceiling. The content type is
// sniffed from the file bytes, falling back to the client-declared header
// when sniffing is inconclusive.
func (s *Saver) Save(file multipart.File, header *multipart.FileHeader) (*Result, error) {
	contentType, err := detectType(file, header)
	if err != nil {
		return nil, err
	}

	kind, ext, err := classify(contentType, header.Filename)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindImage:
		if header.Size > MaxImageSize {
			return nil, &ValidationError{msg: "image too large, maximum size is 5 MB"}
		}
	case KindVideo:
		if header.Size > MaxVideoSize {
			return nil, &ValidationError{msg: "video too large, maximum size is 50 MB"}
		}
	}

	subdir := "videos"
	if kind == KindImage {
		subdir = filepath.Join("images", "blogs")
	}

	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload mkdir %s: %w", dir, err)
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("upload read: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("upload write %s: %w", name, err)
	}

	url := "/" + filepath.ToSlash(filepath.Join(subdir, name))
	return &Result{URL: url, Kind: kind}, nil
}

// detectType sniffs the content type from the first 512 bytes and rewinds
// the file. Octet-stream sniffs fall back to the client-declared type,
// since WebM/OGG containers are not always recognized by sniffing.
func detectType(file multipart.File, header *multipart.FileHeader) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("upload sniff: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("upload rewind: %w", err)
	}

	contentType := http.DetectContentType(buf[:n])

	// Sniffed OGG containers come back as application/ogg regardless of
	// whether they hold audio or video; the upload surface only accepts
	// video, so treat them as such.
	if contentType == "application/ogg" {
		contentType = "video/ogg"
	}

	if contentType == "application/octet-stream" {
		if declared := header.Header.Get("Content-Type"); declared != "" {
			contentType = declared
		}
	}

	// Strip any parameters, e.g. "video/webm;codecs=vp9".
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}

	return contentType, nil
}

// classify resolves the media class and the stored file extension for an
// accepted content type. The original filename's extension wins when
// present; images without one fall back to .jpg.
func classify(contentType, filename string) (Kind, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if fallback, ok := allowedImageTypes[contentType]; ok {
		if ext == "" {
			ext = fallback
		}
		return KindImage, ext, nil
	}
	if fallback, ok := allowedVideoTypes[contentType]; ok {
		if ext == "" {
			ext = fallback
		}
		return KindVideo, ext, nil
	}

	return "", "", &ValidationError{msg: fmt.Sprintf("file type %q is not allowed", contentType)}
}
