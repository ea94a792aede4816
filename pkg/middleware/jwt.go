package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/DCSlucifer/quickblog-backend/pkg/auth"
	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
)

type jwtContextKey string

const JWTClaimsKey jwtContextKey = "jwt.claims"

// JWTMiddleware validates Authorization Bearer tokens and injects claims
// into the request context. Missing, malformed, forged and expired tokens
// are all rejected with 401; role decisions happen downstream.
type JWTMiddleware struct {
	Handler auth.JWTHandler
}

// Handle checks the Authorization header for a valid JWT token.
func (m JWTMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return &endpoint.ApiError{Message: "missing or invalid authorization header", Status: http.StatusUnauthorized}
		}

		tokenStr := strings.TrimSpace(header[len("bearer "):])
		if tokenStr == "" {
			return &endpoint.ApiError{Message: "no token provided", Status: http.StatusUnauthorized}
		}

		claims, err := m.Handler.Validate(tokenStr)
		if err != nil {
			return &endpoint.ApiError{Message: "invalid or expired token", Status: http.StatusUnauthorized}
		}

		ctx := context.WithValue(r.Context(), JWTClaimsKey, claims)
		return next(w, r.WithContext(ctx))
	}
}

// GetJWTClaims extracts JWT claims from the context.
func GetJWTClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(JWTClaimsKey).(*auth.Claims)
	return claims, ok
}
