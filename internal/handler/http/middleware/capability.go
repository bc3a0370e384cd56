package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklens/worklens-backend-go/internal/domain/user"
	"github.com/worklens/worklens-backend-go/internal/handler/http/response"
)

// RequireCapability gates a route on membership in the token's resolved
// capability set. The set is computed once by the authentication
// collaborator; no role names are inspected here.
func RequireCapability(capability user.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", capability))
				return
			}

			caps := user.CapabilitiesFromClaims(claims)
			if !caps.Has(capability) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", capability))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnyCapability passes when the token holds at least one of the given
// capabilities.
func RequireAnyCapability(capabilities ...user.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			caps := user.CapabilitiesFromClaims(claims)
			for _, c := range capabilities {
				if caps.Has(c) {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, "Insufficient permissions")
		})
	}
}
