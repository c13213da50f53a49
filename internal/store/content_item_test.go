// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"analystsite/internal/models"
)

// testContentItem builds a valid active image slide with a unique id.
func testContentItem(t *testing.T) *models.ContentItem {
	t.Helper()
	suffix := uuid.New().String()[:8]
	title := "شريحة اختبار " + suffix
	return &models.ContentItem{
		ID:       "test-item-" + suffix,
		Type:     models.ContentItemImage,
		Title:    &title,
		IsActive: true,
	}
}

func TestContentItemCreate_NilMediaURL(t *testing.T) {
	db := testDB(t)
	s := NewContentItemStore(db)

	c := testContentItem(t)
	blank := "   "
	c.MediaURL = &blank
	c.Normalize()
	t.Cleanup(func() { cleanContentItems(t, db, c.ID) })

	created, err := s.Create(c)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.MediaURL != nil {
		t.Errorf("blank media_url should persist as NULL, got %q", *created.MediaURL)
	}
	if created.HasMedia() {
		t.Error("caption-only item should report HasMedia() == false")
	}
}

func TestContentItemCreate_WithMedia(t *testing.T) {
	db := testDB(t)
	s := NewContentItemStore(db)

	c := testContentItem(t)
	c.Type = models.ContentItemVideo
	url := " /videos/intro.mp4 "
	c.MediaURL = &url
	c.Normalize()
	t.Cleanup(func() { cleanContentItems(t, db, c.ID) })

	created, err := s.Create(c)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.MediaURL == nil || *created.MediaURL != "/videos/intro.mp4" {
		t.Errorf("media_url = %v, want trimmed /videos/intro.mp4", created.MediaURL)
	}
}

func TestContentItemListActive_ExcludesInactive(t *testing.T) {
	db := testDB(t)
	s := NewContentItemStore(db)

	active := testContentItem(t)
	inactive := testContentItem(t)
	inactive.IsActive = false
	t.Cleanup(func() { cleanContentItems(t, db, active.ID, inactive.ID) })

	if _, err := s.Create(active); err != nil {
		t.Fatalf("Create active: %v", err)
	}
	if _, err := s.Create(inactive); err != nil {
		t.Fatalf("Create inactive: %v", err)
	}

	list, err := s.ListActive()
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	for _, item := range list {
		if item.ID == inactive.ID {
			t.Error("ListActive should not return the inactive item")
		}
	}

	// Ordering: display_order non-decreasing.
	for i := 1; i < len(list); i++ {
		if list[i].DisplayOrder < list[i-1].DisplayOrder {
			t.Errorf("display_order not non-decreasing at index %d", i)
		}
	}
}

func TestContentItemUpdate(t *testing.T) {
	db := testDB(t)
	s := NewContentItemStore(db)

	c := testContentItem(t)
	t.Cleanup(func() { cleanContentItems(t, db, c.ID) })
	if _, err := s.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Clearing the media URL on update stores NULL.
	blank := ""
	c.MediaURL = &blank
	c.Normalize()
	c.DisplayOrder = 7
	updated, err := s.Update(c)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.MediaURL != nil {
		t.Errorf("cleared media_url should persist as NULL, got %q", *updated.MediaURL)
	}
	if updated.DisplayOrder != 7 {
		t.Errorf("display_order = %d, want 7", updated.DisplayOrder)
	}
}

func TestContentItemUpdate_NotFound(t *testing.T) {
	db := testDB(t)
	s := NewContentItemStore(db)

	c := testContentItem(t)
	c.ID = "missing-" + uuid.New().String()[:8]
	if _, err := s.Update(c); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update missing id: got %v, want ErrNotFound", err)
	}
}

func TestContentItemDelete_NotFound(t *testing.T) {
	db := testDB(t)
	s := NewContentItemStore(db)

	if err := s.Delete("missing-" + uuid.New().String()[:8]); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete missing id: got %v, want ErrNotFound", err)
	}
}

func TestContentItemCount(t *testing.T) {
	db := testDB(t)
	s := NewContentItemStore(db)

	before, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	c := testContentItem(t)
	t.Cleanup(func() { cleanContentItems(t, db, c.ID) })
	if _, err := s.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	after, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if after != before+1 {
		t.Errorf("Count = %d after create, want %d", after, before+1)
	}
}
