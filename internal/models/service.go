// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Defaults for service presentation tokens. The color values are opaque
// CSS utility strings consumed by the frontend.
const (
	DefaultServiceIcon   = "🎯"
	DefaultServiceColor  = "from-green-500/20 to-emerald-500/20"
	DefaultServiceAccent = "green-500"
)

// Service is one offering shown on the services page. Only active services
// are exposed publicly, ordered by DisplayOrder ascending.
type Service struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Subtitle         string    `json:"subtitle"`
	Description      string    `json:"description"`
	ValueProposition string    `json:"value_proposition"`
	Icon             string    `json:"icon"`
	Color            string    `json:"color"`
	AccentColor      string    `json:"accent_color"`
	DisplayOrder     int       `json:"display_order"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// ApplyDefaults fills in presentation defaults for empty fields.
func (s *Service) ApplyDefaults() {
	if s.Icon == "" {
		s.Icon = DefaultServiceIcon
	}
	if s.Color == "" {
		s.Color = DefaultServiceColor
	}
	if s.AccentColor == "" {
		s.AccentColor = DefaultServiceAccent
	}
}
