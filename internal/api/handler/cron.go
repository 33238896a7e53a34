package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

const CronJobTypeDailyBroadcast = "daily-broadcast"

// CronJob é implementado pelos serviços agendados que aceitam execução manual
type CronJob interface {
	TriggerManualRun(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém as jobs disponíveis para execução manual
type CronJobServices struct {
	DailyBroadcast CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case CronJobTypeDailyBroadcast:
		return s.DailyBroadcast, s.DailyBroadcast != nil
	default:
		return nil, false
	}
}

// RunCronJob dispara manualmente uma job agendada
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: daily-broadcast", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron: execução manual solicitada")

		if !job.TriggerManualRun(r.Context()) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message": "Cron job já está em execução",
				"type":    cronType,
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DailyBroadcast != nil {
			status[CronJobTypeDailyBroadcast] = services.DailyBroadcast.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
