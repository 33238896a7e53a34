package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// UserFromContext devolve o usuário autenticado colocado por AuthenticatedOnly
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(ContextKeyUser).(*domain.User)
	return user, ok && user != nil
}

// WithUser coloca o usuário no contexto da requisição
func WithUser(ctx context.Context, user *domain.User) context.Context {
	ctx = log.WithUserID(ctx, user.ID)
	return context.WithValue(ctx, ContextKeyUser, user)
}

// AuthenticatedOnly exige um access token válido de um usuário ativo.
// O usuário é recarregado do banco a cada requisição.
func AuthenticatedOnly(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				if errors.Is(err, authenticating.ErrExpiredToken) {
					code = apiErrors.ErrExpiredToken
				}
				apiErrors.WriteError(w, code, "Token inválido", nil)
				return
			}

			user, err := authService.GetUser(r.Context(), claims.UserID())
			if err != nil {
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code == apiErrors.ErrUserNotFound {
					apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário do token não existe", nil)
					return
				}
				log.ForContext(r.Context()).WithError(err).Error("Erro ao carregar usuário autenticado")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar usuário", nil)
				return
			}

			if !user.IsActive {
				apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
