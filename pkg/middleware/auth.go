package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/event-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/event-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// rotas que não exigem token
var publicPaths = map[string]struct{}{
	"/healthcheck": {},
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Token de acesso ausente", nil)
				return
			}

			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || strings.TrimSpace(tokenString) == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(strings.TrimSpace(tokenString))
			if err != nil {
				code := apiErrors.ErrInvalidToken
				message := "Token inválido"

				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}
				if authenticating.IsExpired(err) {
					message = "Token expirado"
				}

				log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path).Warn("Token rejeitado")
				apiErrors.WriteError(w, code, message, nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext devolve as claims gravadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
