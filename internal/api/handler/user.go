package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

// ListUsers lista os usuários paginados, com busca opcional por username
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		params := domain.UserListParams{
			UsernameSearch: query.Get("username__search"),
		}

		if page := query.Get("page"); page != "" {
			value, err := strconv.Atoi(page)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page deve ser numérico", nil)
				return
			}
			params.Page = value
		}

		if pageSize := query.Get("page_size"); pageSize != "" {
			value, err := strconv.Atoi(pageSize)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page_size deve ser numérico", nil)
				return
			}
			params.PageSize = value
		}

		page, err := service.ListUsers(r.Context(), params)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar usuários")
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

// GetUser retorna o usuário por ID. Usuários comuns só podem consultar a si mesmos.
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := currentUser(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		if !requester.IsAdmin && requester.ID != id {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este usuário", nil)
			return
		}

		user, err := service.GetUser(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user.ToResponse())
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creator, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.CreateUserRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), creator, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, user.ToResponse())
	}
}

// UpdateUser altera a conta de anúncios vinculada ao usuário
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateUserRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		user, err := service.UpdateUser(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user.ToResponse())
	}
}
