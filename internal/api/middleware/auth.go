package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"Postboard/internal/auth"
)

// Context keys for storing caller information
type contextKey string

// IdentityKey holds the verified auth.Identity
const IdentityKey contextKey = "identity"

// AuthCookieName is the cookie that may carry "Bearer <token>" instead of the header
const AuthCookieName = "Authorization"

// AuthMiddleware enforces token authentication for protected routes.
// Tokens come from the Authorization header, falling back to the cookie.
type AuthMiddleware struct {
	verifier auth.Verifier
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware around a verifier
func NewAuthMiddleware(verifier auth.Verifier, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth middleware ensures the caller presents a valid token.
// If not authenticated, returns 401.
// If authenticated, injects the identity into context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, source := extractToken(r)
		if token == "" {
			writeAuthError(w, "Missing credentials")
			return
		}

		identity, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			m.logger.Warn("[AUTH_FAILURE] token verification failed",
				"ip", r.RemoteAddr,
				"method", r.Method,
				"path", r.URL.Path,
				"source", source,
				"error", err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, *identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken returns the bearer token and where it came from ("header" or "cookie").
// A header with another scheme does not hide the cookie.
func extractToken(r *http.Request) (string, string) {
	if token := bearerToken(r.Header.Get("Authorization")); token != "" {
		return token, "header"
	}

	if cookie, err := r.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
		value, err := url.PathUnescape(cookie.Value)
		if err != nil {
			return "", "cookie"
		}
		return bearerToken(value), "cookie"
	}

	return "", ""
}

// bearerToken strips a case-insensitive "Bearer " scheme. Anything else yields "".
func bearerToken(value string) string {
	value = strings.TrimSpace(value)
	scheme, token, ok := strings.Cut(value, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// GetIdentity extracts the caller's identity from the request context.
// Returns the zero Identity if not authenticated.
func GetIdentity(r *http.Request) auth.Identity {
	identity, _ := r.Context().Value(IdentityKey).(auth.Identity)
	return identity
}

// SetTestIdentity sets the identity in the context for testing purposes.
// This function should ONLY be used in tests to mock authenticated users.
func SetTestIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

type authErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(authErrorResponse{
		Success: false,
		Error:   "AuthenticationRequired",
		Message: message,
	}); err != nil {
		slog.Error("failed to write auth error response", "error", err)
	}
}
