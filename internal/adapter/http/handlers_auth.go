// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"

	"questlog/internal/app"

	"github.com/coreos/go-oidc/v3/oidc"
)

func setSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid request")
		return
	}

	token, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, app.ErrInvalidCredentials) {
		writeErrors(w, http.StatusUnauthorized, "Username or password not found; try again!")
		return
	}
	if err != nil {
		writeErrors(w, http.StatusInternalServerError, "internal error")
		return
	}

	user, err := s.auth.ValidateSession(r.Context(), token)
	if err != nil {
		writeErrors(w, http.StatusInternalServerError, "internal error")
		return
	}
	profile, err := s.users.Profile(r.Context(), user)
	if err != nil {
		writeErrors(w, http.StatusInternalServerError, "internal error")
		return
	}

	setSessionCookie(w, token, int(app.DefaultSessionTTL.Seconds()))
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req app.SignupInput
	if err := parseJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, token, err := s.auth.Signup(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	profile, err := s.users.Profile(r.Context(), user)
	if err != nil {
		writeErrors(w, http.StatusInternalServerError, "internal error")
		return
	}

	setSessionCookie(w, token, int(app.DefaultSessionTTL.Seconds()))
	writeJSON(w, http.StatusCreated, profile)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		_ = s.auth.Logout(r.Context(), cookie.Value)
	}

	// Ending an anonymous session is a no-op; either way the cookie goes.
	setSessionCookie(w, "", -1)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	profile, err := s.users.Profile(r.Context(), currentUser(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sso_enabled": s.oidc.Enabled,
	})
}

func (s *Server) handleSSOLogin(w http.ResponseWriter, r *http.Request) {
	if !s.oidc.Enabled {
		writeErrors(w, http.StatusNotFound, "sso disabled")
		return
	}
	state := generateState()
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode, // Lax required for cross-site redirect returns
		MaxAge:   300,
	})
	http.Redirect(w, r, s.oidc.OAuth2Config.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) handleSSOCallback(w http.ResponseWriter, r *http.Request) {
	if !s.oidc.Enabled {
		writeErrors(w, http.StatusNotFound, "sso disabled")
		return
	}

	state, err := r.Cookie("oauth_state")
	if err != nil || r.URL.Query().Get("state") != state.Value {
		writeErrors(w, http.StatusBadRequest, "invalid state")
		return
	}

	http.SetCookie(w, &http.Cookie{Name: "oauth_state", MaxAge: -1, Path: "/"})

	token, err := s.oidc.OAuth2Config.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeErrors(w, http.StatusInternalServerError, "failed to exchange token")
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		writeErrors(w, http.StatusInternalServerError, "no id_token")
		return
	}

	idToken, err := s.oidc.Provider.Verifier(&oidc.Config{ClientID: s.oidc.OAuth2Config.ClientID}).Verify(r.Context(), rawIDToken)
	if err != nil {
		writeErrors(w, http.StatusInternalServerError, "failed to verify token")
		return
	}

	var claims struct {
		Email string `json:"email"`
		Sub   string `json:"sub"`
	}
	if err = idToken.Claims(&claims); err != nil {
		writeErrors(w, http.StatusInternalServerError, "failed to parse claims")
		return
	}

	username := claims.Email
	if username == "" {
		username = claims.Sub
	}

	sessionToken, err := s.auth.LoginSSO(r.Context(), username)
	if err != nil {
		writeErrors(w, http.StatusInternalServerError, "login failed")
		return
	}

	setSessionCookie(w, sessionToken, int(app.DefaultSessionTTL.Seconds()))
	http.Redirect(w, r, "/", http.StatusFound)
}

func generateState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
