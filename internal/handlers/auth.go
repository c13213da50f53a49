// Copyright (c) 2026 Laith Alsalami <contact@laithalsalami.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"analystsite/internal/session"
)

// Auth handles the single-password admin gate. A correct password creates
// a Valkey-backed session; the session cookie is what the admin client
// treats as its "logged in" flag.
type Auth struct {
	sessions     *session.Store
	password     string
	passwordHash string
}

// NewAuth creates a new Auth handler group. When passwordHash is set it
// takes precedence over the plaintext password.
func NewAuth(sessions *session.Store, password, passwordHash string) *Auth {
	return &Auth{
		sessions:     sessions,
		password:     password,
		passwordHash: passwordHash,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /admin/login. Both outcomes answer 200; the body's
// success flag tells the client whether the password matched.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if !a.checkPassword(req.Password) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false})
		return
	}

	if _, err := a.sessions.Create(r.Context(), w); err != nil {
		slog.Error("session create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Logout handles POST /admin/logout.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// checkPassword compares the submitted password against the configured
// secret, preferring the bcrypt hash when one is set.
func (a *Auth) checkPassword(password string) bool {
	if a.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(a.password), []byte(password)) == 1
}
