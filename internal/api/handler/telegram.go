package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/notifying"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

type BroadcastResponse struct {
	Sent   bool                `json:"sent"`
	Period domain.ReportPeriod `json:"period"`
}

// TelegramRegister gera o deep link de vínculo com o bot. Aceita ?locale=ua|ru.
func TelegramRegister(service notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		link, err := service.GetRegistrationLink(r.Context(), user, r.URL.Query().Get("locale"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar link do telegram")
			return
		}

		writeJSON(w, http.StatusOK, link)
	}
}

func TelegramLogout(service notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := service.Logout(r.Context(), user); err != nil {
			writeServiceError(w, r, err, "Erro ao desconectar telegram")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Telegram desconectado"})
	}
}

func TelegramChatID(service notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		chat, err := service.GetChatID(r.Context(), user)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar chat do telegram")
			return
		}

		writeJSON(w, http.StatusOK, chat)
	}
}

func TelegramDaily(service notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.TelegramDailyRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.ToggleDaily(r.Context(), user, req.Enabled); err != nil {
			writeServiceError(w, r, err, "Erro ao alterar envio diário")
			return
		}

		writeJSON(w, http.StatusOK, domain.TelegramDailyRequest{Enabled: req.Enabled})
	}
}

// TelegramBroadcast envia na hora o relatório do período para o chat de quem chamou
func TelegramBroadcast(service notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		period := domain.ParseReportPeriod(r.URL.Query().Get("period"))

		sent, err := service.Broadcast(r.Context(), user, period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao enviar relatório")
			return
		}

		writeJSON(w, http.StatusOK, BroadcastResponse{Sent: sent, Period: period})
	}
}
