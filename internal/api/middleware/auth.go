package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/playably/arcade/internal/api/apierr"
	"github.com/playably/arcade/internal/model"
)

type contextKey string

const userContextKey contextKey = "user"

// Auth creates authentication middleware. Tokens are HS256 JWTs issued
// by the upstream account service; this layer only verifies the
// signature and extracts the pre-validated user ID from the subject
// claim.
func Auth(secret []byte) func(http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractToken(r)
			if tokenStr == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			claims := &jwt.RegisteredClaims{}
			_, err := parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || claims.Subject == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, model.UserID(claims.Subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the request
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUserID returns the authenticated user ID from the request context
func GetUserID(ctx context.Context) model.UserID {
	userID, _ := ctx.Value(userContextKey).(model.UserID)
	return userID
}

// MustGetUserID returns the authenticated user ID or panics
func MustGetUserID(ctx context.Context) model.UserID {
	userID := GetUserID(ctx)
	if userID == "" {
		panic("no user in context - auth middleware not applied?")
	}
	return userID
}
