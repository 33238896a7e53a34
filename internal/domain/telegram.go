package domain

type TelegramRegisterResponse struct {
	RegistrationLink string `json:"registration_link"`
}

type TelegramChatIDResponse struct {
	ChatID               *int64  `json:"chat_id"`
	TelegramUsername     *string `json:"telegram_username"`
	TelegramDailyEnabled bool    `json:"telegram_daily_enabled"`
}

type TelegramDailyRequest struct {
	Enabled bool `json:"enabled"`
}

// StartCommand representa um /start recebido pelo bot
type StartCommand struct {
	ChatID       int64
	Username     string
	LanguageCode string
	Payload      string
}

type ReportPeriod string

const (
	PeriodToday     ReportPeriod = "today"
	PeriodYesterday ReportPeriod = "yesterday"
	PeriodWeek      ReportPeriod = "week"
	PeriodMonth     ReportPeriod = "month"
	PeriodLast30    ReportPeriod = "last30"
)

// ParseReportPeriod valida o período informado, usando "today" para valores desconhecidos
func ParseReportPeriod(s string) ReportPeriod {
	switch ReportPeriod(s) {
	case PeriodYesterday, PeriodWeek, PeriodMonth, PeriodLast30:
		return ReportPeriod(s)
	default:
		return PeriodToday
	}
}
