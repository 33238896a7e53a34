package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/advertising"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// dateRangeFromQuery lê since/until da query string
func dateRangeFromQuery(w http.ResponseWriter, r *http.Request) (domain.DateRange, bool) {
	query := r.URL.Query()

	dateRange, err := advertising.ResolveDateRange(query.Get("since"), query.Get("until"), time.Now())
	if err != nil {
		writeServiceError(w, r, err, "Intervalo de datas inválido")
		return domain.DateRange{}, false
	}

	return dateRange, true
}

func GetCampaigns(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		dateRange, ok := dateRangeFromQuery(w, r)
		if !ok {
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("account_id")
		log.ForContext(r.Context()).WithFields(log.Fields{
			"account_id": accountID,
			"since":      dateRange.SinceString(),
			"until":      dateRange.UntilString(),
		}).Debug("insights: fetching campaigns")

		campaigns, err := service.GetCampaigns(r.Context(), user, accountID, dateRange)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	}
}

// GetObjectives devolve as campanhas da conta agrupadas por objetivo
func GetObjectives(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		dateRange, ok := dateRangeFromQuery(w, r)
		if !ok {
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("account_id")

		groups, err := service.GetCampaignGroups(r.Context(), user, accountID, dateRange)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agrupar campanhas")
			return
		}

		writeJSON(w, http.StatusOK, groups)
	}
}

func GetAdSets(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		dateRange, ok := dateRangeFromQuery(w, r)
		if !ok {
			return
		}

		params := httprouter.ParamsFromContext(r.Context())

		adSets, err := service.GetAdSets(r.Context(), user, params.ByName("account_id"), params.ByName("campaign_id"), dateRange)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar conjuntos de anúncios")
			return
		}

		writeJSON(w, http.StatusOK, adSets)
	}
}

func GetAds(service advertising.Advertiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		dateRange, ok := dateRangeFromQuery(w, r)
		if !ok {
			return
		}

		adSetID := httprouter.ParamsFromContext(r.Context()).ByName("adset_id")

		ads, err := service.GetAds(r.Context(), user, adSetID, dateRange)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar anúncios")
			return
		}

		writeJSON(w, http.StatusOK, ads)
	}
}
