package meta

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type Integrator interface {
	ExchangeToken(ctx context.Context, shortLivedToken string) (*domain.FacebookTokenResponse, error)
	ExchangeCode(ctx context.Context, code, redirectURI string) (*domain.FacebookTokenResponse, error)
	GetAdAccounts(ctx context.Context, accessToken string) ([]*domain.AdAccount, error)
	GetCampaigns(ctx context.Context, accessToken, accountID string, dateRange domain.DateRange) ([]*domain.Campaign, error)
	GetAdSets(ctx context.Context, accessToken, accountID, campaignID string, dateRange domain.DateRange) ([]*domain.AdSet, error)
	GetAds(ctx context.Context, accessToken, adSetID string, dateRange domain.DateRange) ([]*domain.Ad, error)
}

type MetaIntegrator struct {
	cfg    config.Meta
	Client metaclient.Client
}

func New(cfg config.Meta, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) ExchangeToken(ctx context.Context, shortLivedToken string) (*domain.FacebookTokenResponse, error) {
	resp, err := s.Client.ExchangeToken(ctx, shortLivedToken)
	if err != nil {
		logrus.WithError(err).Error("meta: failed to exchange short lived token")
		return nil, err
	}
	return toTokenResponse(resp), nil
}

func (s *MetaIntegrator) ExchangeCode(ctx context.Context, code, redirectURI string) (*domain.FacebookTokenResponse, error) {
	resp, err := s.Client.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		logrus.WithError(err).WithField("redirect_uri", redirectURI).Error("meta: failed to exchange authorization code")
		return nil, err
	}
	return toTokenResponse(resp), nil
}

func (s *MetaIntegrator) GetAdAccounts(ctx context.Context, accessToken string) ([]*domain.AdAccount, error) {
	accounts, err := s.Client.GetAdAccounts(ctx, accessToken)
	if err != nil {
		logrus.WithError(err).Error("meta: failed to get ad accounts")
		return nil, err
	}

	result := make([]*domain.AdAccount, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, &domain.AdAccount{
			AccountID:     account.AccountID,
			Name:          account.Name,
			Currency:      account.Currency,
			AccountStatus: account.AccountStatus,
		})
	}

	return result, nil
}

// GetCampaigns junta as campanhas ativas com os insights do período. Campanhas
// sem insight ou sem entrega (gasto e impressões zerados) ficam de fora.
func (s *MetaIntegrator) GetCampaigns(ctx context.Context, accessToken, accountID string, dateRange domain.DateRange) ([]*domain.Campaign, error) {
	campaigns, err := s.Client.GetCampaigns(ctx, accessToken, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaigns for ad account")
		return nil, err
	}

	if len(campaigns) == 0 {
		return []*domain.Campaign{}, nil
	}

	insights, err := s.Client.GetCampaignInsights(ctx, accessToken, accountID, dateRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign insights")
		return nil, err
	}

	byCampaign := make(map[string]*metadomain.Insight, len(insights))
	for i := range insights {
		if _, exists := byCampaign[insights[i].CampaignID]; !exists {
			byCampaign[insights[i].CampaignID] = &insights[i]
		}
	}

	result := make([]*domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		insight, ok := byCampaign[campaign.ID]
		if !ok || !insight.HasDelivery() {
			continue
		}

		result = append(result, &domain.Campaign{
			CampaignID:   campaign.ID,
			CampaignName: campaign.Name,
			Objective:    campaign.Objective,
			Status:       campaign.Status,
			UpdatedTime:  campaign.UpdatedTime,
			Insights:     toInsightsData(insight),
		})
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"campaigns":  len(result),
	}).Debug("insights: successfully retrieved campaigns")

	return result, nil
}

func (s *MetaIntegrator) GetAdSets(ctx context.Context, accessToken, accountID, campaignID string, dateRange domain.DateRange) ([]*domain.AdSet, error) {
	adSets, err := s.Client.GetAdSets(ctx, accessToken, campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("insights: failed to get ad sets for campaign")
		return nil, err
	}

	if len(adSets) == 0 {
		return []*domain.AdSet{}, nil
	}

	insights, err := s.Client.GetAdSetInsights(ctx, accessToken, accountID, campaignID, dateRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("insights: failed to get ad set insights")
		return nil, err
	}

	byAdSet := make(map[string]*metadomain.Insight, len(insights))
	for i := range insights {
		if _, exists := byAdSet[insights[i].AdSetID]; !exists {
			byAdSet[insights[i].AdSetID] = &insights[i]
		}
	}

	result := make([]*domain.AdSet, 0, len(adSets))
	for _, adSet := range adSets {
		insight, ok := byAdSet[adSet.ID]
		if !ok {
			continue
		}

		targeting := adSet.Targeting
		if targeting == nil {
			targeting = map[string]any{}
		}

		result = append(result, &domain.AdSet{
			AdSetID:   adSet.ID,
			AdSetName: adSet.Name,
			Targeting: targeting,
			Status:    adSet.Status,
			Insights:  toInsightsData(insight),
		})
	}

	return result, nil
}

// GetAds busca os insights de cada anúncio em paralelo, limitado por
// MaxConcurrentRequests. A ordem da listagem é preservada.
func (s *MetaIntegrator) GetAds(ctx context.Context, accessToken, adSetID string, dateRange domain.DateRange) ([]*domain.Ad, error) {
	ads, err := s.Client.GetAds(ctx, accessToken, adSetID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adSetID,
			"error":    err.Error(),
		}).Error("insights: failed to get ads for ad set")
		return nil, err
	}

	limit := s.cfg.MaxConcurrentRequests
	if limit <= 0 {
		limit = 5
	}

	results := make([]*domain.Ad, len(ads))
	errs := make([]error, len(ads))
	semaphore := make(chan struct{}, limit)

	var wg sync.WaitGroup
	for i, ad := range ads {
		wg.Add(1)
		go func(i int, ad metadomain.Ad) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}
			defer func() { <-semaphore }()

			insights, err := s.Client.GetAdInsights(ctx, accessToken, ad.ID, dateRange)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"ad_id": ad.ID,
					"error": err.Error(),
				}).Error("insights: failed to get ad insights")
				errs[i] = err
				return
			}

			if len(insights) == 0 {
				return
			}

			results[i] = &domain.Ad{
				AdID:     ad.ID,
				AdName:   ad.Name,
				Status:   ad.Status,
				Creative: toCreative(ad.Creative),
				Insights: toInsightsData(&insights[0]),
			}
		}(i, ad)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	result := make([]*domain.Ad, 0, len(ads))
	for _, ad := range results {
		if ad != nil {
			result = append(result, ad)
		}
	}

	return result, nil
}

func toInsightsData(insight *metadomain.Insight) *domain.InsightsData {
	return &domain.InsightsData{
		Spend:         insight.Spend,
		Impressions:   insight.Impressions,
		Clicks:        insight.Clicks,
		CPC:           insight.CPC,
		CPM:           insight.CPM,
		CTR:           insight.CTR,
		Reach:         insight.Reach,
		Conversations: insight.Conversations(),
	}
}

func toCreative(creative *metadomain.Creative) domain.Creative {
	if creative == nil {
		return domain.Creative{}
	}
	return domain.Creative{
		ID:           creative.ID,
		ThumbnailURL: creative.ThumbnailURL,
		Body:         creative.Body,
		Title:        creative.Title,
		LinkURL:      creative.LinkURL,
		ImageURL:     creative.ImageURL,
		VideoID:      creative.VideoID,
	}
}

func toTokenResponse(resp *metaclient.TokenResponse) *domain.FacebookTokenResponse {
	return &domain.FacebookTokenResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresIn:   resp.ExpiresIn,
	}
}

// ExpiresAt calcula a expiração do token trocado a partir de agora
func ExpiresAt(resp *domain.FacebookTokenResponse) *time.Time {
	return metaclient.TokenExpiration(time.Now(), resp.ExpiresIn)
}
