package adapthttp

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"questlog/internal/app"
	"questlog/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

const sessionCookieName = "session"

// authMiddleware resolves the session cookie to a user and rejects the
// request before the handler runs if it cannot. A session whose user has
// been deleted is treated exactly like no session at all.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			writeErrors(w, http.StatusUnauthorized, "Not authorized")
			return
		}

		user, err := s.auth.ValidateSession(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, app.ErrSessionNotFound) || errors.Is(err, app.ErrSessionExpired) ||
				errors.Is(err, app.ErrUserNotFound) {
				writeErrors(w, http.StatusUnauthorized, "Not authorized")
				return
			}
			writeErrors(w, http.StatusInternalServerError, "internal error")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser returns the authenticated user placed in the request context by
// authMiddleware.
func currentUser(r *http.Request) *domain.User {
	user, _ := r.Context().Value(userContextKey).(*domain.User)
	return user
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs one line per request: method, path, status, duration.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}
