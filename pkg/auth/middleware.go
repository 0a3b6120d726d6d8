package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/coderr/internal/domain"
	"github.com/GlebRadaev/coderr/pkg/utils"
)

type ContextKey string

const CallerKey ContextKey = "caller"

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, CallerKey, caller)
}

// CallerFrom returns the request principal, or the anonymous caller.
func CallerFrom(ctx context.Context) domain.Caller {
	caller, _ := ctx.Value(CallerKey).(domain.Caller)
	return caller
}

// Middleware rejects requests without a valid bearer token.
func Middleware(v TokenValidator) func(http.Handler) http.Handler {
	return authenticate(v, true)
}

// OptionalMiddleware lets anonymous requests through but still rejects bad tokens.
func OptionalMiddleware(v TokenValidator) func(http.Handler) http.Handler {
	return authenticate(v, false)
}

func authenticate(v TokenValidator, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" && !required {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := v.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), claims.Caller())))
		})
	}
}
