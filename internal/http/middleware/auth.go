package middleware

import (
	"context"
	"net/http"
	"strings"

	"risuwork/internal/common"
	"risuwork/internal/http/response"
	"risuwork/internal/security"
)

type contextKey string

const ContextEmailKey contextKey = "email"

// AuthMiddleware is the identity gate: it resolves a bearer token to the
// principal's email and puts it in the request context. Nothing downstream
// touches transport credentials; an absent or invalid token always yields
// 401, never a null identity.
type AuthMiddleware struct {
	tokens *security.TokenProvider
}

func NewAuthMiddleware(tokens *security.TokenProvider) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "not logged in", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			response.Error(w, common.NewError(common.CodeUnauthorized, "not logged in", nil))
			return
		}
		claims, err := m.tokens.Parse(parts[1])
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "not logged in", err))
			return
		}
		ctx := context.WithValue(r.Context(), ContextEmailKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextEmailKey).(string)
	return email, ok && email != ""
}
