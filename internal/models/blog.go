// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Default values applied when a blog is created without them.
const (
	DefaultAuthor    = "ليث السالمي"
	DefaultCategory  = "تحليل فني"
	DefaultBlogImage = "/placeholder-blog.jpg"
)

// Blog represents a single analysis article. IDs are opaque strings
// (millisecond timestamps when generated server-side) and slugs are
// unique across all blogs.
type Blog struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Date      time.Time `json:"date"`
	Category  string    `json:"category"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// ApplyDefaults fills in the fixed author, category, and placeholder image
// for fields left empty on create or update.
func (b *Blog) ApplyDefaults() {
	if b.Author == "" {
		b.Author = DefaultAuthor
	}
	if b.Category == "" {
		b.Category = DefaultCategory
	}
	if b.Image == "" {
		b.Image = DefaultBlogImage
	}
	if b.Date.IsZero() {
		b.Date = time.Now()
	}
}
