package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/venturebridge/backend/internal/models"
	jwtutil "github.com/venturebridge/backend/pkg/jwt"
	"github.com/venturebridge/backend/pkg/logger"
)

type contextKey string

const userContextKey contextKey = "user"

// AuthMiddleware verifies the bearer token and stores the claims in the
// request context.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				logger.Log.Warn("Missing bearer token")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			claims, err := jwtutil.ParseToken(tokenString, jwtSecret)
			if err != nil {
				logger.Log.WithError(err).Warn("Token verification failed")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), claims)))
		})
	}
}

// RequireRole rejects requests whose authenticated user is not of the given
// user type. Must run after AuthMiddleware.
func RequireRole(userType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetUserFromContext(r.Context())
			if claims == nil || claims.UserType != userType {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ContextWithUser returns a context carrying the given claims.
func ContextWithUser(ctx context.Context, claims *jwtutil.Claims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}

// GetUserFromContext returns the claims stored by AuthMiddleware, or nil.
func GetUserFromContext(ctx context.Context) *jwtutil.Claims {
	claims, _ := ctx.Value(userContextKey).(*jwtutil.Claims)
	return claims
}

// IdentityFromContext resolves the acting identity from the request context.
// Returns nil when the request is unauthenticated.
func IdentityFromContext(ctx context.Context) *models.Identity {
	claims := GetUserFromContext(ctx)
	if claims == nil {
		return nil
	}
	return &models.Identity{
		UserID:    claims.UserID,
		Name:      claims.Name,
		Email:     claims.Email,
		UserType:  claims.UserType,
		ProfileID: claims.ProfileID,
	}
}
