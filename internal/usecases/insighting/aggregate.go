package insighting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type totals struct {
	spend         decimal.Decimal
	impressions   decimal.Decimal
	clicks        decimal.Decimal
	reach         decimal.Decimal
	conversations decimal.Decimal
}

func (t *totals) add(insights *domain.InsightsData) {
	if insights == nil {
		return
	}

	t.spend = t.spend.Add(ParseMetric(insights.Spend))
	t.impressions = t.impressions.Add(ParseMetric(insights.Impressions))
	t.clicks = t.clicks.Add(ParseMetric(insights.Clicks))
	t.reach = t.reach.Add(ParseMetric(insights.Reach))
	t.conversations = t.conversations.Add(ParseMetric(insights.Conversations))
}

// Aggregate soma as métricas de várias entidades e recalcula CPC, CPM e CTR.
// CPC, CPM e CTR recebidos são ignorados. Conversas somando zero viram nulo.
func Aggregate(entities []*domain.InsightsData) domain.InsightsData {
	var t totals
	for _, insights := range entities {
		t.add(insights)
	}

	return t.insights()
}

// AccountTotals consolida os insights de todas as campanhas informadas
func AccountTotals(campaigns []*domain.Campaign) domain.InsightsData {
	var t totals
	for _, c := range campaigns {
		if c == nil {
			continue
		}
		t.add(c.Insights)
	}

	return t.insights()
}

func (t totals) insights() domain.InsightsData {
	result := domain.InsightsData{
		Spend:       formatMoney(t.spend),
		Impressions: formatCount(t.impressions),
		Clicks:      formatCount(t.clicks),
		Reach:       formatCount(t.reach),
		CPC:         formatMoney(ratio(t.spend, t.clicks, decimal.NewFromInt(1))),
		CPM:         formatMoney(ratio(t.spend, t.impressions, thousand)),
		CTR:         formatMoney(ratio(t.clicks, t.impressions, hundred)),
	}

	if !t.conversations.IsZero() {
		result.Conversations = formatCount(t.conversations)
	}

	return result
}
