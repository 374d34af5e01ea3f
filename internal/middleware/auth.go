package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/utils"
	jwt_internal "github.com/diskusi-dev/diskusi/internal/utils/jwt"
)

// Key to store the user claims in the request context
type key int

const userClaimsKey key = 0

// NeedAuth enforces a bearer access token and stores the authenticated user
// in the request context.
func NeedAuth(jwtService jwt_internal.JwtService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Missing authentication", http.StatusUnauthorized)
				return
			}
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}

			token, err := jwtService.DecodeToken(tokenStr)
			if err != nil {
				utils.WriteError(w, err)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}
			uid, ok := claims["uid"].(string)
			if !ok || uid == "" {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}
			username, _ := claims["username"].(string)

			user := &domain.User{Id: uid, Username: username}

			next(w, WithUser(r, user))
		}
	}
}

// WithUser returns a shallow copy of the request carrying the user in its
// context.
func WithUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userClaimsKey, user))
}

// GetUserFromContext retrieves the authenticated user, or nil when the
// request passed through no auth middleware.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
