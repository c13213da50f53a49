// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"
)

// ContentItemType selects the media renderer for a homepage carousel slide.
type ContentItemType string

const (
	ContentItemImage ContentItemType = "image"
	ContentItemVideo ContentItemType = "video"
)

// Valid reports whether t is a known content item type.
func (t ContentItemType) Valid() bool {
	return t == ContentItemImage || t == ContentItemVideo
}

// ContentItem is one slide of the homepage media carousel. MediaURL is
// optional: a nil value means a caption-only slide and consumers must not
// render a media panel for it.
type ContentItem struct {
	ID           string          `json:"id"`
	Type         ContentItemType `json:"type"`
	MediaURL     *string         `json:"media_url"`
	Title        *string         `json:"title"`
	Subtitle     *string         `json:"subtitle"`
	Description  *string         `json:"description"`
	Eyebrow      *string         `json:"eyebrow"`
	DisplayOrder int             `json:"display_order"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// HasMedia reports whether the item carries a non-blank media URL.
func (c *ContentItem) HasMedia() bool {
	return c.MediaURL != nil && strings.TrimSpace(*c.MediaURL) != ""
}

// Normalize trims every optional text field and nils it out when blank,
// so a text-only slide and empty captions are stored as NULL rather than
// empty strings.
func (c *ContentItem) Normalize() {
	c.MediaURL = normalizeOptional(c.MediaURL)
	c.Title = normalizeOptional(c.Title)
	c.Subtitle = normalizeOptional(c.Subtitle)
	c.Description = normalizeOptional(c.Description)
	c.Eyebrow = normalizeOptional(c.Eyebrow)
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
