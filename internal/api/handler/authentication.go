package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		pair, err := service.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, pair)
	}
}

func Refresh(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RefreshRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.RefreshToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "refresh_token é obrigatório", nil)
			return
		}

		pair, err := service.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			writeServiceError(w, r, err, "Erro interno ao renovar token")
			return
		}

		writeJSON(w, http.StatusOK, pair)
	}
}

// ChangePassword altera a senha do próprio usuário ou, para admins, de qualquer usuário
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := currentUser(w, r)
		if !ok {
			return
		}

		targetUserID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if targetUserID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		var req ChangePasswordRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.NewPassword == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "new_password é obrigatório", nil)
			return
		}

		if err := service.ChangePassword(r.Context(), requester, targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeServiceError(w, r, err, "Erro ao alterar senha")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Senha alterada com sucesso"})
	}
}

// GeneratePassword gera uma senha forte para o usuário. Apenas admins.
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := currentUser(w, r)
		if !ok {
			return
		}

		targetUserID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if targetUserID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		newPassword, err := service.GeneratePassword(r.Context(), requester, targetUserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar senha")
			return
		}

		writeJSON(w, http.StatusOK, GeneratePasswordResponse{Password: newPassword})
	}
}
