// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"analystsite/internal/session"
)

func TestLoginCorrectPassword(t *testing.T) {
	env := newTestEnv(t)

	req := newJSONRequest(t, http.MethodPost, "/admin/login", map[string]any{
		"password": "test-secret",
	})
	rr := httptest.NewRecorder()
	env.Auth.Login(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body["success"] {
		t.Error("expected success=true for correct password")
	}

	// A session cookie must be set.
	var found bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected session cookie on successful login")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	req := newJSONRequest(t, http.MethodPost, "/admin/login", map[string]any{
		"password": "wrong",
	})
	rr := httptest.NewRecorder()
	env.Auth.Login(rr, req)

	// Wrong password still answers 200 with success=false.
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var body map[string]bool
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["success"] {
		t.Error("expected success=false for wrong password")
	}

	for _, c := range rr.Result().Cookies() {
		if c.Name == session.CookieName {
			t.Error("no session cookie should be set on failed login")
		}
	}
}

func TestLoginBcryptHash(t *testing.T) {
	env := newTestEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	// The hash takes precedence over the plaintext password.
	auth := NewAuth(env.Sessions, "ignored-plaintext", string(hash))

	req := newJSONRequest(t, http.MethodPost, "/admin/login", map[string]any{
		"password": "hashed-secret",
	})
	rr := httptest.NewRecorder()
	auth.Login(rr, req)

	var body map[string]bool
	json.Unmarshal(rr.Body.Bytes(), &body)
	if !body["success"] {
		t.Error("expected success=true against bcrypt hash")
	}

	req2 := newJSONRequest(t, http.MethodPost, "/admin/login", map[string]any{
		"password": "ignored-plaintext",
	})
	rr2 := httptest.NewRecorder()
	auth.Login(rr2, req2)

	json.Unmarshal(rr2.Body.Bytes(), &body)
	if body["success"] {
		t.Error("plaintext password must not match when a hash is configured")
	}
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	// Log in first to get a session cookie.
	login := newJSONRequest(t, http.MethodPost, "/admin/login", map[string]any{
		"password": "test-secret",
	})
	loginRR := httptest.NewRecorder()
	env.Auth.Login(loginRR, login)

	cookies := loginRR.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie from login")
	}

	logout := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	logout.AddCookie(cookies[0])
	rr := httptest.NewRecorder()
	env.Auth.Logout(rr, logout)

	if rr.Code != http.StatusOK {
		t.Fatalf("logout: got %d, want 200", rr.Code)
	}

	// The session must be gone from the store.
	check := httptest.NewRequest(http.MethodGet, "/", nil)
	check.AddCookie(cookies[0])
	data, err := env.Sessions.Get(check.Context(), check)
	if err != nil {
		t.Fatalf("session get: %v", err)
	}
	if data != nil {
		t.Error("session should be destroyed after logout")
	}
}
