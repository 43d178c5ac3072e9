package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-hourly-insights/internal/domain"
	"github.com/vfg2006/meta-hourly-insights/pkg/apiErrors"
)

// RequireScope restringe a rota a tokens que concedem o escopo informado.
// Depende de AuthMiddleware ter colocado as claims no contexto.
func RequireScope(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !claims.HasScope(scope) {
				logrus.Warningf("Acesso negado para operador=%s, escopo=%s", claims.Operator, scope)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CanRunSync permite disparar sincronizações
func CanRunSync() func(http.Handler) http.Handler {
	return RequireScope(domain.ScopeSyncRun)
}

// CanReadSync permite consultar status e insights
func CanReadSync() func(http.Handler) http.Handler {
	return RequireScope(domain.ScopeSyncRead)
}

// ClaimsFromContext devolve as claims gravadas por AuthMiddleware
func ClaimsFromContext(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}
