package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/advertising"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

func FacebookAuthStatus(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		status, err := service.GetAuthStatus(r.Context(), user)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar conexão com o facebook")
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

// ExchangeToken salva o token de longa duração a partir do token curto do login do facebook
func ExchangeToken(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ExchangeTokenRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.ExchangeToken(r.Context(), user, req); err != nil {
			writeServiceError(w, r, err, "Erro ao trocar token do facebook")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Token salvo com sucesso"})
	}
}

// ExchangeCode conclui o fluxo OAuth do facebook
func ExchangeCode(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ExchangeCodeRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.ExchangeCode(r.Context(), user, req); err != nil {
			writeServiceError(w, r, err, "Erro ao trocar código do facebook")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Token salvo com sucesso"})
	}
}

func AdAccountList(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		accounts, err := service.GetAdAccounts(r.Context(), user)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar contas de anúncios")
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}
