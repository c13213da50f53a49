// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"analystsite/internal/models"
)

// ContentItemStore handles all homepage content item database operations.
type ContentItemStore struct {
	db *sql.DB
}

// NewContentItemStore creates a new ContentItemStore with the given
// database connection.
func NewContentItemStore(db *sql.DB) *ContentItemStore {
	return &ContentItemStore{db: db}
}

const contentItemColumns = `id, type, media_url, title, subtitle, description,
	eyebrow, display_order, is_active, created_at`

// scanContentItem scans a content item row from the result set.
func scanContentItem(scanner interface{ Scan(...any) error }) (*models.ContentItem, error) {
	var c models.ContentItem
	err := scanner.Scan(
		&c.ID, &c.Type, &c.MediaURL, &c.Title, &c.Subtitle, &c.Description,
		&c.Eyebrow, &c.DisplayOrder, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListActive returns active items for the homepage carousel: display_order
// ascending, then creation time descending.
func (s *ContentItemStore) ListActive() ([]models.ContentItem, error) {
	return s.list(`
		SELECT ` + contentItemColumns + `
		FROM content_items
		WHERE is_active = TRUE
		ORDER BY display_order ASC, created_at DESC
	`)
}

// List returns every content item, active or not, for the admin panel.
func (s *ContentItemStore) List() ([]models.ContentItem, error) {
	return s.list(`
		SELECT ` + contentItemColumns + `
		FROM content_items
		ORDER BY display_order ASC, created_at DESC
	`)
}

func (s *ContentItemStore) list(query string) ([]models.ContentItem, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	defer rows.Close()

	var items []models.ContentItem
	for rows.Next() {
		c, err := scanContentItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a content item by id. Returns nil if not found.
func (s *ContentItemStore) FindByID(id string) (*models.ContentItem, error) {
	row := s.db.QueryRow(`SELECT `+contentItemColumns+` FROM content_items WHERE id = $1`, id)
	c, err := scanContentItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content item by id: %w", err)
	}
	return c, nil
}

// Create inserts a new content item and returns the persisted row.
func (s *ContentItemStore) Create(c *models.ContentItem) (*models.ContentItem, error) {
	row := s.db.QueryRow(`
		INSERT INTO content_items (id, type, media_url, title, subtitle,
		                           description, eyebrow, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+contentItemColumns,
		c.ID, c.Type, c.MediaURL, c.Title, c.Subtitle,
		c.Description, c.Eyebrow, c.DisplayOrder, c.IsActive,
	)
	result, err := scanContentItem(row)
	if err != nil {
		return nil, fmt.Errorf("create content item: %w", err)
	}
	return result, nil
}

// Update overwrites all mutable fields of an existing content item and
// returns the persisted row. Returns ErrNotFound when the id does not exist.
func (s *ContentItemStore) Update(c *models.ContentItem) (*models.ContentItem, error) {
	row := s.db.QueryRow(`
		UPDATE content_items SET
			type = $1, media_url = $2, title = $3, subtitle = $4,
			description = $5, eyebrow = $6, display_order = $7, is_active = $8
		WHERE id = $9
		RETURNING `+contentItemColumns,
		c.Type, c.MediaURL, c.Title, c.Subtitle,
		c.Description, c.Eyebrow, c.DisplayOrder, c.IsActive, c.ID,
	)
	result, err := scanContentItem(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update content item: %w", err)
	}
	return result, nil
}

// Delete removes a content item permanently. Returns ErrNotFound when no
// row was affected, matching the blog and service delete semantics.
func (s *ContentItemStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM content_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete content item rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of content items. The admin panel uses it to
// default the display order of a new slide to the end of the carousel.
func (s *ContentItemStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM content_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count content items: %w", err)
	}
	return count, nil
}
