package middleware

import (
	"net/http"

	"github.com/vfg2006/event-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/event-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/event-dashboard-api/pkg/log"
)

// AdminOnly restringe a rota ao papel de administrador configurado em AUTH_ADMIN_ROLE
func AdminOnly(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Usuário não autenticado", nil)
				return
			}

			if !authService.IsAdmin(claims) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_email": claims.Email,
					"user_role":  claims.Role,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
