package notifying

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const separator = "· · · · · · · · · · ·"

var labels = map[string]map[domain.Locale]string{
	"period_today":     {domain.LocaleUA: "Сьогодні", domain.LocaleRU: "Сегодня"},
	"period_yesterday": {domain.LocaleUA: "Вчора", domain.LocaleRU: "Вчера"},
	"period_week":      {domain.LocaleUA: "За тиждень", domain.LocaleRU: "За неделю"},
	"period_month":     {domain.LocaleUA: "За місяць", domain.LocaleRU: "За месяц"},
	"period_last30":    {domain.LocaleUA: "За 30 днів", domain.LocaleRU: "За 30 дней"},
	"period_default":   {domain.LocaleUA: "Звіт", domain.LocaleRU: "Отчёт"},
	"spend":            {domain.LocaleUA: "Витрати", domain.LocaleRU: "Расходы"},
	"impressions":      {domain.LocaleUA: "Покази", domain.LocaleRU: "Показы"},
	"clicks":           {domain.LocaleUA: "Кліки", domain.LocaleRU: "Клики"},
	"cpc":              {domain.LocaleUA: "Ціна/клік", domain.LocaleRU: "Цена/клик"},
	"ctr":              {domain.LocaleUA: "CTR", domain.LocaleRU: "CTR"},
	"reach":            {domain.LocaleUA: "Охоплення", domain.LocaleRU: "Охват"},
	"conversations":    {domain.LocaleUA: "Запити", domain.LocaleRU: "Запросы"},
}

var currencySymbols = map[string]string{
	"USD": "$",
	"UAH": "₴",
	"ILS": "₪",
	"EUR": "€",
	"GBP": "£",
}

func label(key string, locale domain.Locale) string {
	entry, ok := labels[key]
	if !ok {
		return key
	}
	if text, ok := entry[locale]; ok {
		return text
	}
	return entry[domain.LocaleUA]
}

func periodLabel(period domain.ReportPeriod, locale domain.Locale) string {
	key := "period_" + string(period)
	if _, ok := labels[key]; ok {
		return label(key, locale)
	}
	return label("period_default", locale)
}

// PeriodRange converte o período do relatório no intervalo inclusivo de datas
func PeriodRange(period domain.ReportPeriod, now time.Time) domain.DateRange {
	today := utils.StartOfDay(now)

	switch period {
	case domain.PeriodYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return domain.DateRange{Since: yesterday, Until: yesterday}
	case domain.PeriodWeek:
		return domain.DateRange{Since: today.AddDate(0, 0, -6), Until: today}
	case domain.PeriodMonth:
		since, until := utils.MonthToDate(now)
		return domain.DateRange{Since: since, Until: until}
	case domain.PeriodLast30:
		return domain.DateRange{Since: today.AddDate(0, 0, -29), Until: today}
	default:
		return domain.DateRange{Since: today, Until: today}
	}
}

func formatNumber(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	return utils.FormatGrouped(d)
}

func formatCurrency(d decimal.Decimal, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	if d.IsZero() {
		return symbol + "0"
	}
	return symbol + utils.FormatGroupedFixed(d, 2)
}

func formatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// objectiveName transforma OUTCOME_SALES em "Outcome Sales"
func objectiveName(objective string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(objective, "_", " "))
}

// AccountReport reúne as campanhas com entrega de uma conta no período
type AccountReport struct {
	Name      string
	Currency  string
	Campaigns []*domain.Campaign
}

type reportTotals struct {
	spend         decimal.Decimal
	impressions   decimal.Decimal
	clicks        decimal.Decimal
	cpc           decimal.Decimal
	ctr           decimal.Decimal
	reach         decimal.Decimal
	conversations decimal.Decimal
}

func totalsOf(campaigns []*domain.Campaign) reportTotals {
	insights := insighting.AccountTotals(campaigns)

	return reportTotals{
		spend:         insighting.ParseMetric(insights.Spend),
		impressions:   insighting.ParseMetric(insights.Impressions),
		clicks:        insighting.ParseMetric(insights.Clicks),
		cpc:           insighting.ParseMetric(insights.CPC),
		ctr:           insighting.ParseMetric(insights.CTR),
		reach:         insighting.ParseMetric(insights.Reach),
		conversations: insighting.ParseMetric(insights.Conversations),
	}
}

func metricsLines(t reportTotals, indent, currency string, locale domain.Locale) []string {
	lines := []string{
		fmt.Sprintf("%s💰 %s: %s", indent, label("spend", locale), formatCurrency(t.spend, currency)),
		fmt.Sprintf("%s👁 %s: %s", indent, label("impressions", locale), formatNumber(t.impressions)),
		fmt.Sprintf("%s🖱 %s: %s", indent, label("clicks", locale), formatNumber(t.clicks)),
		fmt.Sprintf("%s💵 %s: %s", indent, label("cpc", locale), formatCurrency(t.cpc, currency)),
		fmt.Sprintf("%s📈 %s: %s", indent, label("ctr", locale), formatPercent(t.ctr)),
		fmt.Sprintf("%s👥 %s: %s", indent, label("reach", locale), formatNumber(t.reach)),
	}

	if t.conversations.IsPositive() {
		lines = append(lines, fmt.Sprintf("%s💬 %s: %s", indent, label("conversations", locale), formatNumber(t.conversations.Truncate(0))))
	}

	return lines
}

func countLabel(campaigns []*domain.Campaign) string {
	active := 0
	for _, c := range campaigns {
		if c.IsActive() {
			active++
		}
	}
	paused := len(campaigns) - active

	switch {
	case paused > 0 && active > 0:
		return fmt.Sprintf("%d ✅ / %d ⏸", active, paused)
	case paused > 0:
		return fmt.Sprintf("%d ⏸", len(campaigns))
	default:
		return fmt.Sprintf("%d", len(campaigns))
	}
}

func objectiveBlock(objective string, campaigns []*domain.Campaign, indent, currency string, locale domain.Locale) []string {
	lines := []string{fmt.Sprintf("%s🎯 <b>%s</b> (%s)", indent, objectiveName(objective), countLabel(campaigns))}
	return append(lines, metricsLines(totalsOf(campaigns), indent, currency, locale)...)
}

func header(period domain.ReportPeriod, dateRange domain.DateRange, now time.Time, locale domain.Locale) []string {
	parts := []string{fmt.Sprintf("📊 <b>%s</b> | %s", periodLabel(period, locale), now.Format("02.01.2006"))}
	if !dateRange.SingleDay() {
		parts = append(parts, fmt.Sprintf("📅 %s — %s", dateRange.SinceString(), dateRange.UntilString()))
	}
	return parts
}

// FormatAdminReport monta o relatório HTML com todas as contas que tiveram entrega
func FormatAdminReport(accounts []AccountReport, period domain.ReportPeriod, dateRange domain.DateRange, now time.Time, locale domain.Locale) string {
	parts := header(period, dateRange, now, locale)

	for i, account := range accounts {
		t := totalsOf(account.Campaigns)

		parts = append(parts,
			"",
			fmt.Sprintf("▎<b>%d. %s</b>", i+1, html.EscapeString(account.Name)),
			fmt.Sprintf("   💰 %s  🖱 %s  📈 %s",
				formatCurrency(t.spend, account.Currency),
				formatNumber(t.clicks),
				formatPercent(t.ctr)),
		)

		for _, p := range insighting.PartitionByObjective(account.Campaigns) {
			parts = append(parts, "")
			parts = append(parts, objectiveBlock(p.Objective, p.Members, "   ", account.Currency, locale)...)
		}

		if i < len(accounts)-1 {
			parts = append(parts, "", separator)
		}
	}

	return strings.Join(parts, "\n")
}

// FormatUserReport monta o relatório HTML da conta do usuário. O detalhamento
// por objetivo só aparece quando há mais de um objetivo.
func FormatUserReport(account AccountReport, period domain.ReportPeriod, dateRange domain.DateRange, now time.Time, locale domain.Locale) string {
	parts := header(period, dateRange, now, locale)

	parts = append(parts, "", fmt.Sprintf("<b>%s</b>", html.EscapeString(account.Name)), "")
	parts = append(parts, metricsLines(totalsOf(account.Campaigns), "", account.Currency, locale)...)

	partitions := insighting.PartitionByObjective(account.Campaigns)
	if len(partitions) > 1 {
		parts = append(parts, "", separator)
		for _, p := range partitions {
			parts = append(parts, "")
			parts = append(parts, objectiveBlock(p.Objective, p.Members, "", account.Currency, locale)...)
		}
	}

	return strings.Join(parts, "\n")
}
