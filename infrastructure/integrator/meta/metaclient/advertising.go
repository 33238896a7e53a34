package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const (
	adAccountFields = "account_id,name,currency,account_status"
	campaignFields  = "id,name,status,objective,updated_time"
	adSetFields     = "id,name,targeting,status"
	adFields        = "id,name,status,creative{id,thumbnail_url,body,title,link_url,image_url,video_id}"
)

func (c *MetaClient) GetAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", adAccountFields)

	return fetchWithPagination[metadomain.AdAccount](ctx, c, "me/adaccounts", accessToken, params)
}

func (c *MetaClient) GetCampaigns(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", campaignFields)
	params.Add("filtering", c.activeFilter())

	return fetchWithPagination[metadomain.Campaign](ctx, c, fmt.Sprintf("act_%s/campaigns", accountID), accessToken, params)
}

// GetCampaignInsights busca os insights de todas as campanhas da conta em uma única listagem
func (c *MetaClient) GetCampaignInsights(ctx context.Context, accessToken, accountID string, dateRange domain.DateRange) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Add("level", "campaign")
	params.Add("fields", "campaign_id,"+c.Cfg.CampaignInsightFields)
	params.Add("time_range", timeRange(dateRange))

	return fetchWithPagination[metadomain.Insight](ctx, c, fmt.Sprintf("act_%s/insights", accountID), accessToken, params)
}

func (c *MetaClient) GetAdSets(ctx context.Context, accessToken, campaignID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Add("fields", adSetFields)
	params.Add("filtering", c.activeFilter())

	return fetchWithPagination[metadomain.AdSet](ctx, c, fmt.Sprintf("%s/adsets", campaignID), accessToken, params)
}

func (c *MetaClient) GetAdSetInsights(ctx context.Context, accessToken, accountID, campaignID string, dateRange domain.DateRange) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Add("level", "adset")
	params.Add("fields", "adset_id,"+c.Cfg.AdInsightFields)
	params.Add("time_range", timeRange(dateRange))
	params.Add("filtering", equalFilter("campaign.id", campaignID))

	return fetchWithPagination[metadomain.Insight](ctx, c, fmt.Sprintf("act_%s/insights", accountID), accessToken, params)
}

func (c *MetaClient) GetAds(ctx context.Context, accessToken, adSetID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", adFields)
	params.Add("filtering", c.activeFilter())

	return fetchWithPagination[metadomain.Ad](ctx, c, fmt.Sprintf("%s/ads", adSetID), accessToken, params)
}

func (c *MetaClient) GetAdInsights(ctx context.Context, accessToken, adID string, dateRange domain.DateRange) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Add("fields", c.Cfg.AdInsightFields)
	params.Add("time_range", timeRange(dateRange))

	return fetchWithPagination[metadomain.Insight](ctx, c, fmt.Sprintf("%s/insights", adID), accessToken, params)
}
