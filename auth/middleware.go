package auth

import (
	"context"
	stderrors "errors"
	"list-sync/domain"
	"list-sync/errors"
	"log/slog"
	"net/http"
	"strings"
)

type contextKey string

// UserIDKey carries the authenticated domain.UserID. List roles are checked
// per list by the services, so token roles are not propagated.
const UserIDKey contextKey = "user_id"

// TokenQueryParam carries the bearer token for clients which cannot set headers
// (browser EventSource).
const TokenQueryParam = "token"

// BearerToken reads the token from the Authorization header, falling back to the query string.
func BearerToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return "", errors.ErrInvalidToken
		}
		return strings.TrimSpace(token), nil
	}
	if token := r.URL.Query().Get(TokenQueryParam); token != "" {
		return token, nil
	}
	return "", errors.ErrMissingToken
}

// Middleware handles JWT validation for incoming HTTP requests.
// On success the user identity is injected into the request context.
func Middleware(tokens *TokenService, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := BearerToken(r)
			if err != nil {
				writeUnauthorized(w, err)
				return
			}

			claims, err := tokens.ValidateToken(tokenStr)
			if err != nil {
				log.Debug("Rejected bearer token", "path", r.URL.Path, "error", err)
				writeUnauthorized(w, errors.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, domain.UserID(claims.UserID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user placed by Middleware.
func UserIDFromContext(ctx context.Context) (domain.UserID, bool) {
	id, ok := ctx.Value(UserIDKey).(domain.UserID)
	return id, ok && id != ""
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	msg := errors.ErrInvalidToken.Error()
	if stderrors.Is(err, errors.ErrMissingToken) {
		msg = errors.ErrMissingToken.Error()
	}
	http.Error(w, msg, http.StatusUnauthorized)
}
