package domain

import "time"

type AdAccount struct {
	AccountID     string  `json:"account_id"`
	Name          *string `json:"name"`
	Currency      *string `json:"currency"`
	AccountStatus *int    `json:"account_status"`
}

// DisplayName devolve o nome da conta ou o ID quando o nome não existe
func (a *AdAccount) DisplayName() string {
	if a.Name != nil && *a.Name != "" {
		return *a.Name
	}
	return a.AccountID
}

// CurrencyOrDefault devolve a moeda da conta, USD quando não informada
func (a *AdAccount) CurrencyOrDefault() string {
	if a.Currency != nil && *a.Currency != "" {
		return *a.Currency
	}
	return "USD"
}

type Campaign struct {
	CampaignID   string        `json:"campaign_id"`
	CampaignName *string       `json:"campaign_name"`
	Objective    *string       `json:"objective"`
	Status       *string       `json:"status"`
	UpdatedTime  *string       `json:"updated_time"`
	Insights     *InsightsData `json:"insights"`
}

func (c *Campaign) GetObjective() *string {
	return c.Objective
}

func (c *Campaign) GetInsights() *InsightsData {
	return c.Insights
}

// IsActive indica se a campanha está com status ACTIVE
func (c *Campaign) IsActive() bool {
	return c.Status != nil && *c.Status == "ACTIVE"
}

type AdSet struct {
	AdSetID   string         `json:"adset_id"`
	AdSetName *string        `json:"adset_name"`
	Targeting map[string]any `json:"targeting"`
	Status    *string        `json:"status"`
	Insights  *InsightsData  `json:"insights"`
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
	AdID     string        `json:"ad_id"`
	AdName   *string       `json:"ad_name"`
	Status   *string       `json:"status"`
	Creative Creative      `json:"creative"`
	Insights *InsightsData `json:"insights"`
}

// DateRange representa o intervalo inclusivo de datas (YYYY-MM-DD) usado nos insights
type DateRange struct {
	Since time.Time
	Until time.Time
}

func (d DateRange) SinceString() string {
	return d.Since.Format(time.DateOnly)
}

func (d DateRange) UntilString() string {
	return d.Until.Format(time.DateOnly)
}

// SingleDay indica se o intervalo cobre apenas um dia
func (d DateRange) SingleDay() bool {
	return d.SinceString() == d.UntilString()
}

type FacebookAuth struct {
	OwnerID   string     `json:"owner_id"`
	LongToken string     `json:"-"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type FacebookAuthStatus struct {
	Connected bool   `json:"connected"`
	AppID     string `json:"app_id"`
}

type ExchangeCodeRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

type ExchangeTokenRequest struct {
	ShortLivedToken string `json:"short_lived_token"`
}

type FacebookTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
