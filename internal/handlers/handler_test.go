// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"analystsite/internal/cache"
	"analystsite/internal/database"
	"analystsite/internal/mailer"
	"analystsite/internal/session"
	"analystsite/internal/store"
	"analystsite/internal/upload"
)

// recordingSender implements mailer.Sender and records every message.
type recordingSender struct {
	messages []*mailer.ContactMessage
	err      error
}

func (s *recordingSender) SendContact(msg *mailer.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, msg)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "analystsite")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "analystsite")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	cleanup := func() {
		for _, pattern := range []string{"session:*", "list:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
	}
	cleanup()
	t.Cleanup(func() {
		cleanup()
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB               *sql.DB
	Valkey           *redis.Client
	Sessions         *session.Store
	BlogStore        *store.BlogStore
	ServiceStore     *store.ServiceStore
	ContentItemStore *store.ContentItemStore
	ListCache        *cache.ListCache
	Sender           *recordingSender
	Blogs            *Blogs
	Services         *Services
	ContentItems     *ContentItems
	Uploads          *Uploads
	Auth             *Auth
	Contact          *Contact
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk, false)
	listCache := cache.NewListCache(vk, 1*time.Minute)

	blogStore := store.NewBlogStore(db)
	serviceStore := store.NewServiceStore(db)
	contentItemStore := store.NewContentItemStore(db)
	sender := &recordingSender{}

	return &testEnv{
		DB:               db,
		Valkey:           vk,
		Sessions:         sessions,
		BlogStore:        blogStore,
		ServiceStore:     serviceStore,
		ContentItemStore: contentItemStore,
		ListCache:        listCache,
		Sender:           sender,
		Blogs:            NewBlogs(blogStore, listCache),
		Services:         NewServices(serviceStore, listCache),
		ContentItems:     NewContentItems(contentItemStore, listCache),
		Uploads:          NewUploads(upload.NewSaver(t.TempDir())),
		Auth:             NewAuth(sessions, "test-secret", ""),
		Contact:          NewContact(sender),
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// cleanBlogs removes test blogs by id.
func cleanBlogs(t *testing.T, db *sql.DB, ids ...string) {
	t.Helper()
	for _, id := range ids {
		db.Exec("DELETE FROM blogs WHERE id = $1", id)
	}
}

// cleanServices removes test services by id.
func cleanServices(t *testing.T, db *sql.DB, ids ...string) {
	t.Helper()
	for _, id := range ids {
		db.Exec("DELETE FROM services WHERE id = $1", id)
	}
}

// cleanContentItems removes test content items by id.
func cleanContentItems(t *testing.T, db *sql.DB, ids ...string) {
	t.Helper()
	for _, id := range ids {
		db.Exec("DELETE FROM content_items WHERE id = $1", id)
	}
}
