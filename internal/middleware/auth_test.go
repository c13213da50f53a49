// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"analystsite/internal/session"
)

// ctxWithSession returns a context carrying the given session data using
// the same context key the middleware uses. This allows tests to simulate
// the state after LoadSession has run without needing a real Valkey store.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, SessionKey, data)
}

// okHandler is a simple handler that records whether it was invoked.
func okHandler() (http.Handler, *bool) {
	var called bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return h, &called
}

func TestSessionFromCtx(t *testing.T) {
	t.Run("returns session when present", func(t *testing.T) {
		sess := &session.Data{CreatedAt: time.Now()}
		ctx := ctxWithSession(context.Background(), sess)

		got := SessionFromCtx(ctx)
		if got == nil {
			t.Fatal("expected non-nil session, got nil")
		}
		if !got.CreatedAt.Equal(sess.CreatedAt) {
			t.Errorf("CreatedAt: got %v, want %v", got.CreatedAt, sess.CreatedAt)
		}
	})

	t.Run("returns nil when not present", func(t *testing.T) {
		got := SessionFromCtx(context.Background())
		if got != nil {
			t.Errorf("expected nil session, got %+v", got)
		}
	})

	t.Run("returns nil for wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), SessionKey, "not-a-session")
		got := SessionFromCtx(ctx)
		if got != nil {
			t.Errorf("expected nil for wrong type, got %+v", got)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("returns 401 when no session", func(t *testing.T) {
		inner, called := okHandler()
		handler := RequireAdmin(inner)

		req := httptest.NewRequest(http.MethodPost, "/blogs", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if *called {
			t.Error("next handler should NOT have been called")
		}
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
		}

		// Body must be a JSON error object.
		var body map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal 401 body: %v", err)
		}
		if body["error"] != "unauthorized" {
			t.Errorf("error: got %q, want %q", body["error"], "unauthorized")
		}
	})

	t.Run("returns 401 for wrong type in context", func(t *testing.T) {
		inner, called := okHandler()
		handler := RequireAdmin(inner)

		req := httptest.NewRequest(http.MethodDelete, "/services/1", nil)
		req = req.WithContext(context.WithValue(req.Context(), SessionKey, "invalid"))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if *called {
			t.Error("next handler should NOT have been called")
		}
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
		}
	})

	t.Run("passes through when session exists", func(t *testing.T) {
		inner, called := okHandler()
		handler := RequireAdmin(inner)

		req := httptest.NewRequest(http.MethodPost, "/blogs", nil)
		req = req.WithContext(ctxWithSession(req.Context(), &session.Data{CreatedAt: time.Now()}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if !*called {
			t.Error("next handler should have been called")
		}
		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})
}

func TestSessionPipeline(t *testing.T) {
	t.Run("session in context is accessible by downstream handlers", func(t *testing.T) {
		sess := &session.Data{CreatedAt: time.Now()}

		var gotSession *session.Data
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSession = SessionFromCtx(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		// Simulate LoadSession adding session to context.
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), SessionKey, sess)
			inner.ServeHTTP(w, r.WithContext(ctx))
		})

		req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if gotSession == nil {
			t.Fatal("downstream handler should have received session")
		}
	})
}
