// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"analystsite/internal/models"
)

// BlogStore handles all blog-related database operations.
type BlogStore struct {
	db *sql.DB
}

// NewBlogStore creates a new BlogStore with the given database connection.
func NewBlogStore(db *sql.DB) *BlogStore {
	return &BlogStore{db: db}
}

// blogColumns lists the columns selected in blog queries.
const blogColumns = `id, slug, title, excerpt, content, author, date, category, image, created_at`

// scanBlog scans a blog row from the result set.
func scanBlog(scanner interface{ Scan(...any) error }) (*models.Blog, error) {
	var b models.Blog
	err := scanner.Scan(
		&b.ID, &b.Slug, &b.Title, &b.Excerpt, &b.Content,
		&b.Author, &b.Date, &b.Category, &b.Image, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns all blogs ordered by date descending, then creation time
// descending. The admin panel and the public blog listing share this query.
func (s *BlogStore) List() ([]models.Blog, error) {
	rows, err := s.db.Query(`
		SELECT ` + blogColumns + `
		FROM blogs
		ORDER BY date DESC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	var items []models.Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// FindByID retrieves a blog by its id. Returns nil if not found.
func (s *BlogStore) FindByID(id string) (*models.Blog, error) {
	row := s.db.QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id)
	b, err := scanBlog(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog by id: %w", err)
	}
	return b, nil
}

// FindBySlug retrieves a blog by its slug. Returns nil if not found.
func (s *BlogStore) FindBySlug(slug string) (*models.Blog, error) {
	row := s.db.QueryRow(`SELECT `+blogColumns+` FROM blogs WHERE slug = $1`, slug)
	b, err := scanBlog(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog by slug: %w", err)
	}
	return b, nil
}

// Create inserts a new blog and returns the persisted row. Returns
// ErrSlugTaken when the slug collides with an existing record.
func (s *BlogStore) Create(b *models.Blog) (*models.Blog, error) {
	row := s.db.QueryRow(`
		INSERT INTO blogs (id, slug, title, excerpt, content, author, date, category, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+blogColumns,
		b.ID, b.Slug, b.Title, b.Excerpt, b.Content, b.Author, b.Date, b.Category, b.Image,
	)
	result, err := scanBlog(row)
	if isUniqueViolation(err) {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return result, nil
}

// Update overwrites all mutable fields of an existing blog and returns the
// persisted row. Returns ErrNotFound when the id does not exist and
// ErrSlugTaken when the new slug collides with a different record.
func (s *BlogStore) Update(b *models.Blog) (*models.Blog, error) {
	row := s.db.QueryRow(`
		UPDATE blogs SET
			slug = $1, title = $2, excerpt = $3, content = $4,
			author = $5, date = $6, category = $7, image = $8
		WHERE id = $9
		RETURNING `+blogColumns,
		b.Slug, b.Title, b.Excerpt, b.Content, b.Author, b.Date, b.Category, b.Image, b.ID,
	)
	result, err := scanBlog(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if isUniqueViolation(err) {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return result, nil
}

// Delete removes a blog permanently. Returns ErrNotFound when no row
// was affected.
func (s *BlogStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete blog rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
