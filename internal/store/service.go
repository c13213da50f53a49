// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"analystsite/internal/models"
)

// ServiceStore handles all service-related database operations.
type ServiceStore struct {
	db *sql.DB
}

// NewServiceStore creates a new ServiceStore with the given database connection.
func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

const serviceColumns = `id, title, subtitle, description, value_proposition,
	icon, color, accent_color, display_order, is_active, created_at`

// scanService scans a service row from the result set.
func scanService(scanner interface{ Scan(...any) error }) (*models.Service, error) {
	var sv models.Service
	err := scanner.Scan(
		&sv.ID, &sv.Title, &sv.Subtitle, &sv.Description, &sv.ValueProposition,
		&sv.Icon, &sv.Color, &sv.AccentColor, &sv.DisplayOrder, &sv.IsActive, &sv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

// ListActive returns active services in presentation order: display_order
// ascending, then creation time ascending. This is the public read path.
func (s *ServiceStore) ListActive() ([]models.Service, error) {
	return s.list(`
		SELECT ` + serviceColumns + `
		FROM services
		WHERE is_active = TRUE
		ORDER BY display_order ASC, created_at ASC
	`)
}

// List returns every service, active or not, for the admin panel.
func (s *ServiceStore) List() ([]models.Service, error) {
	return s.list(`
		SELECT ` + serviceColumns + `
		FROM services
		ORDER BY display_order ASC, created_at ASC
	`)
}

func (s *ServiceStore) list(query string) ([]models.Service, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var items []models.Service
	for rows.Next() {
		sv, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, *sv)
	}
	return items, rows.Err()
}

// FindByID retrieves a service by id. Returns nil if not found.
func (s *ServiceStore) FindByID(id string) (*models.Service, error) {
	row := s.db.QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)
	sv, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by id: %w", err)
	}
	return sv, nil
}

// Create inserts a new service and returns the persisted row.
func (s *ServiceStore) Create(sv *models.Service) (*models.Service, error) {
	row := s.db.QueryRow(`
		INSERT INTO services (id, title, subtitle, description, value_proposition,
		                      icon, color, accent_color, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+serviceColumns,
		sv.ID, sv.Title, sv.Subtitle, sv.Description, sv.ValueProposition,
		sv.Icon, sv.Color, sv.AccentColor, sv.DisplayOrder, sv.IsActive,
	)
	result, err := scanService(row)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return result, nil
}

// Update overwrites all mutable fields of an existing service and returns
// the persisted row. Returns ErrNotFound when the id does not exist.
func (s *ServiceStore) Update(sv *models.Service) (*models.Service, error) {
	row := s.db.QueryRow(`
		UPDATE services SET
			title = $1, subtitle = $2, description = $3, value_proposition = $4,
			icon = $5, color = $6, accent_color = $7, display_order = $8, is_active = $9
		WHERE id = $10
		RETURNING `+serviceColumns,
		sv.Title, sv.Subtitle, sv.Description, sv.ValueProposition,
		sv.Icon, sv.Color, sv.AccentColor, sv.DisplayOrder, sv.IsActive, sv.ID,
	)
	result, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return result, nil
}

// Delete removes a service permanently. Returns ErrNotFound when no row
// was affected.
func (s *ServiceStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete service rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
