package domain

// UnknownObjective agrupa campanhas sem objetivo definido
const UnknownObjective = "UNKNOWN"

// InsightsData é o formato de métricas trafegado na API. Os valores numéricos
// chegam como string e podem ser nulos.
type InsightsData struct {
	Spend         *string `json:"spend"`
	Impressions   *string `json:"impressions"`
	Clicks        *string `json:"clicks"`
	CPC           *string `json:"cpc"`
	CPM           *string `json:"cpm"`
	CTR           *string `json:"ctr"`
	Reach         *string `json:"reach"`
	Conversations *string `json:"conversations"`
}

// ObjectiveGroup reúne campanhas com o mesmo objetivo e o consolidado das métricas
type ObjectiveGroup struct {
	Objective          string       `json:"objective"`
	Campaigns          []*Campaign  `json:"campaigns"`
	AggregatedInsights InsightsData `json:"aggregatedInsights"`
}

// StringPtr devolve um ponteiro para a string informada
func StringPtr(s string) *string {
	return &s
}
