package middleware

import (
	"fmt"
	"net/http"

	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
)

// AllowRoles gates an operation on the role carried by the token's claims.
// A valid token with a role outside the allowed set yields 403, distinct
// from the 401 the JWT middleware answers for credential failures.
func AllowRoles(allowed ...string) endpoint.Middleware {
	allowedSet := make(map[string]bool, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = true
	}

	return func(next endpoint.ApiHandler) endpoint.ApiHandler {
		return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
			claims, ok := GetJWTClaims(r.Context())
			if !ok {
				return &endpoint.ApiError{Message: "missing authentication context", Status: http.StatusUnauthorized}
			}

			if !allowedSet[claims.Role] {
				return &endpoint.ApiError{
					Message: fmt.Sprintf("Role (%s) is not allowed to access this resource", claims.Role),
					Status:  http.StatusForbidden,
				}
			}

			return next(w, r)
		}
	}
}
