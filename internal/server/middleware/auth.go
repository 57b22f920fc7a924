// Package middleware provides HTTP middleware guarding the resume-editing routes.
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const editorIDKey ContextKey = "editorID"

// TokenValidator validates bearer tokens. The server's JWT service satisfies it through
// an adapter, keeping this package free of the jwt dependency.
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

// Principal is whoever a valid token was issued to.
type Principal interface {
	GetEditorID() uuid.UUID
}

// RequireEditor rejects requests without a valid bearer token and stores the editor ID
// in the request context.
func RequireEditor(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}

			principal, err := validator.ValidateToken(token)
			if err != nil {
				log.Printf("[auth] rejected token for %s %s: %v", r.Method, r.URL.Path, err)
				unauthorized(w, "invalid token")
				return
			}

			ctx := WithEditorID(r.Context(), principal.GetEditorID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an Authorization header. The scheme is
// case-insensitive.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="resume-studio"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// WithEditorID returns a copy of ctx carrying the editor ID.
func WithEditorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, editorIDKey, id)
}

// EditorID returns the authenticated editor from the request context.
func EditorID(r *http.Request) (uuid.UUID, error) {
	id, ok := r.Context().Value(editorIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("editor ID not found in request context")
	}
	return id, nil
}
