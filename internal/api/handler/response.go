package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/advertising"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/notifying"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// currentUser devolve o usuário autenticado ou responde AUTH_006
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return user, true
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		details := map[string]any(nil)
		if authErr.UserID != "" {
			details = map[string]any{"user_id": authErr.UserID}
		}
		logServiceError(logger, authErr.Code)
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	var adErr *advertising.AdvertisingError
	if errors.As(err, &adErr) {
		logServiceError(logger, adErr.Code)
		apiErrors.WriteError(w, adErr.Code, adErr.Error(), nil)
		return
	}

	var notifyErr *notifying.NotifyingError
	if errors.As(err, &notifyErr) {
		logServiceError(logger, notifyErr.Code)
		apiErrors.WriteError(w, notifyErr.Code, notifyErr.Error(), nil)
		return
	}

	logger.Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func logServiceError(logger log.Logger, code string) {
	logger = logger.WithField("error_code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("Erro ao processar requisição")
		return
	}
	logger.Warn("Requisição rejeitada")
}
