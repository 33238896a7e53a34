package advertising

import (
	"time"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// ResolveDateRange monta o intervalo inclusivo a partir de since/until. Sem
// datas usa o mês corrente até hoje; uma data ausente assume o limite padrão.
func ResolveDateRange(since, until string, now time.Time) (domain.DateRange, error) {
	monthStart, today := utils.MonthToDate(now)

	sinceDate, err := utils.ParseDate(since)
	if err != nil {
		return domain.DateRange{}, NewAdvertisingError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "since")
	}

	untilDate, err := utils.ParseDate(until)
	if err != nil {
		return domain.DateRange{}, NewAdvertisingError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "until")
	}

	dateRange := domain.DateRange{Since: monthStart, Until: today}
	if !sinceDate.IsZero() {
		dateRange.Since = *sinceDate
	}
	if !untilDate.IsZero() {
		dateRange.Until = *untilDate
	}

	if dateRange.SinceString() > dateRange.UntilString() {
		return domain.DateRange{}, NewAdvertisingError(ErrInvalidTimeRange, apiErrors.ErrInvalidTimeRange, "")
	}

	return dateRange, nil
}
