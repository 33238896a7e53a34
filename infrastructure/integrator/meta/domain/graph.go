package metadomain

import (
	"github.com/shopspring/decimal"
)

// ConversationsActionType é a ação usada como contagem de conversas iniciadas
const ConversationsActionType = "onsite_conversion.messaging_conversation_started_7d"

type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next"`
}

// Page é uma página genérica das listagens da Graph API
type Page[T any] struct {
	Data   []T       `json:"data"`
	Paging *Paging   `json:"paging,omitempty"`
	Error  *APIError `json:"error,omitempty"`
}

type AdAccount struct {
	ID            string  `json:"id"`
	AccountID     string  `json:"account_id"`
	Name          *string `json:"name"`
	Currency      *string `json:"currency"`
	AccountStatus *int    `json:"account_status"`
}

type Campaign struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Objective   *string `json:"objective"`
	UpdatedTime *string `json:"updated_time"`
}

type AdSet struct {
	ID        string         `json:"id"`
	Name      *string        `json:"name"`
	Targeting map[string]any `json:"targeting"`
	Status    *string        `json:"status"`
}

type Creative struct {
	ID           *string `json:"id"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Body         *string `json:"body"`
	Title        *string `json:"title"`
	LinkURL      *string `json:"link_url"`
	ImageURL     *string `json:"image_url"`
	VideoID      *string `json:"video_id"`
}

type Ad struct {
	ID       string    `json:"id"`
	Name     *string   `json:"name"`
	Status   *string   `json:"status"`
	Creative *Creative `json:"creative"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é uma linha de /insights. Os valores numéricos chegam como texto.
type Insight struct {
	CampaignID  string   `json:"campaign_id,omitempty"`
	AdSetID     string   `json:"adset_id,omitempty"`
	AdID        string   `json:"ad_id,omitempty"`
	Spend       *string  `json:"spend"`
	Impressions *string  `json:"impressions"`
	Clicks      *string  `json:"clicks"`
	CPC         *string  `json:"cpc"`
	CPM         *string  `json:"cpm"`
	CTR         *string  `json:"ctr"`
	Reach       *string  `json:"reach"`
	Actions     []Action `json:"actions,omitempty"`
	DateStart   string   `json:"date_start,omitempty"`
	DateStop    string   `json:"date_stop,omitempty"`
}

// Conversations devolve o valor da ação de conversas iniciadas, se existir
func (i *Insight) Conversations() *string {
	for _, action := range i.Actions {
		if action.ActionType == ConversationsActionType {
			value := action.Value
			return &value
		}
	}
	return nil
}

// HasDelivery indica se houve gasto ou impressões no período
func (i *Insight) HasDelivery() bool {
	return !parse(i.Spend).IsZero() || !parse(i.Impressions).IsZero()
}

func parse(raw *string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.Zero
	}
	// expoentes gigantes ("1e500000000") não são métricas reais
	if exp := d.Exponent(); exp > 30 || exp < -30 {
		return decimal.Zero
	}
	return d
}
