package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ExchangeToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error)
	ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error)
	GetAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error)
	GetCampaigns(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error)
	GetCampaignInsights(ctx context.Context, accessToken, accountID string, dateRange domain.DateRange) ([]metadomain.Insight, error)
	GetAdSets(ctx context.Context, accessToken, campaignID string) ([]metadomain.AdSet, error)
	GetAdSetInsights(ctx context.Context, accessToken, accountID, campaignID string, dateRange domain.DateRange) ([]metadomain.Insight, error)
	GetAds(ctx context.Context, accessToken, adSetID string) ([]metadomain.Ad, error)
	GetAdInsights(ctx context.Context, accessToken, adID string, dateRange domain.DateRange) ([]metadomain.Insight, error)
}

type MetaClient struct {
	Cfg        config.Meta
	HTTPClient *http.Client
}

func NewClient(cfg config.Meta) Client {
	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

func (c *MetaClient) endpoint(path string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(c.Cfg.URL, "/"), strings.TrimLeft(path, "/"))
}

// get executa um GET e devolve o corpo. Corpos com "error" viram *metadomain.APIError.
func (c *MetaClient) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return HandleResponse(resp)
}

// HandleResponse lê a resposta HTTP e converte erros da Graph API
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	var errorResp metadomain.ErrorResponse
	if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil && errorResp.Error != nil {
		errorResp.Error.StatusCode = resp.StatusCode
		if errorResp.Error.IsTokenExpired() {
			logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d",
				errorResp.Error.Code, errorResp.Error.ErrorSubcode)
		}
		return nil, errorResp.Error
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// fetchWithPagination percorre todas as páginas seguindo paging.next. Os
// parâmetros só são enviados na primeira requisição, as próximas URLs já os contêm.
func fetchWithPagination[T any](ctx context.Context, c *MetaClient, path, accessToken string, params url.Values) ([]T, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", accessToken)

	items := make([]T, 0)
	next := c.endpoint(path) + "?" + params.Encode()

	for next != "" {
		body, err := c.get(ctx, next)
		if err != nil {
			return nil, err
		}

		var page metadomain.Page[T]
		if err := json.Unmarshal(body, &page); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		if page.Error != nil {
			return nil, page.Error
		}

		items = append(items, page.Data...)

		next = ""
		if page.Paging != nil {
			next = page.Paging.Next
		}
	}

	return items, nil
}

func (c *MetaClient) activeFilter() string {
	statuses, _ := json.Marshal(c.Cfg.ActiveStatuses)
	return fmt.Sprintf(`[{"field":"effective_status","operator":"IN","value":%s}]`, statuses)
}

func timeRange(dateRange domain.DateRange) string {
	return fmt.Sprintf(`{"since":"%s","until":"%s"}`, dateRange.SinceString(), dateRange.UntilString())
}

func equalFilter(field, value string) string {
	encoded, _ := json.Marshal(value)
	return fmt.Sprintf(`[{"field":"%s","operator":"EQUAL","value":%s}]`, field, encoded)
}
