package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func newTestClient(serverURL string) Client {
	return NewClient(config.Meta{
		URL:                   serverURL + "/v22.0",
		AppID:                 "app-id",
		AppSecret:             "app-secret",
		ActiveStatuses:        []string{"ACTIVE", "PAUSED"},
		CampaignInsightFields: "spend,impressions,actions",
		AdInsightFields:       "spend,impressions",
		RequestTimeout:        5 * time.Second,
	})
}

func TestGetCampaigns_FollowsPagination(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []url.Values
		server   *httptest.Server
	)

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.URL.Query())
		mu.Unlock()
		assert.Equal(t, "/v22.0/act_123/campaigns", r.URL.Path)

		if r.URL.Query().Get("after") == "" {
			fmt.Fprintf(w, `{"data":[{"id":"1","name":"Primeira","objective":"OUTCOME_SALES","status":"ACTIVE"}],"paging":{"next":"%s/v22.0/act_123/campaigns?after=c1&access_token=tok"}}`, server.URL)
			return
		}

		fmt.Fprint(w, `{"data":[{"id":"2","name":"Segunda","status":"PAUSED"}],"paging":{"cursors":{"before":"c1"}}}`)
	}))
	defer server.Close()

	campaigns, err := newTestClient(server.URL).GetCampaigns(context.Background(), "tok", "123")
	require.NoError(t, err)

	require.Len(t, campaigns, 2)
	assert.Equal(t, "1", campaigns[0].ID)
	assert.Equal(t, "OUTCOME_SALES", *campaigns[0].Objective)
	assert.Equal(t, "2", campaigns[1].ID)
	assert.Nil(t, campaigns[1].Objective)

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, requests, 2)
	first := requests[0]
	assert.Equal(t, "tok", first.Get("access_token"))
	assert.Equal(t, campaignFields, first.Get("fields"))
	assert.Equal(t, `[{"field":"effective_status","operator":"IN","value":["ACTIVE","PAUSED"]}]`, first.Get("filtering"))

	second := requests[1]
	assert.Empty(t, second.Get("fields"))
	assert.Equal(t, "c1", second.Get("after"))
}

func TestGetCampaignInsights_Params(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/v22.0/act_9/insights", r.URL.Path)
		assert.Equal(t, "campaign", query.Get("level"))
		assert.Equal(t, "campaign_id,spend,impressions,actions", query.Get("fields"))
		assert.Equal(t, `{"since":"2025-03-01","until":"2025-03-15"}`, query.Get("time_range"))

		fmt.Fprint(w, `{"data":[{"campaign_id":"1","spend":"10.50","impressions":"100","actions":[{"action_type":"link_click","value":"4"},{"action_type":"onsite_conversion.messaging_conversation_started_7d","value":"3"}],"date_start":"2025-03-01","date_stop":"2025-03-15"}]}`)
	}))
	defer server.Close()

	dateRange := domain.DateRange{
		Since: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	insights, err := newTestClient(server.URL).GetCampaignInsights(context.Background(), "tok", "9", dateRange)
	require.NoError(t, err)
	require.Len(t, insights, 1)

	assert.Equal(t, "1", insights[0].CampaignID)
	assert.Equal(t, "10.50", *insights[0].Spend)
	require.NotNil(t, insights[0].Conversations())
	assert.Equal(t, "3", *insights[0].Conversations())
	assert.True(t, insights[0].HasDelivery())
}

func TestGetAdSetInsights_FiltersByCampaign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "adset", query.Get("level"))
		assert.Equal(t, "adset_id,spend,impressions", query.Get("fields"))
		assert.Equal(t, `[{"field":"campaign.id","operator":"EQUAL","value":"77"}]`, query.Get("filtering"))

		fmt.Fprint(w, `{"data":[]}`)
	}))
	defer server.Close()

	insights, err := newTestClient(server.URL).GetAdSetInsights(context.Background(), "tok", "9", "77", domain.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, insights)
}

func TestFetch_GraphErrorBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"error_subcode":463}}`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetAdAccounts(context.Background(), "expired")
	require.Error(t, err)

	var apiErr *metadomain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 190, apiErr.Code)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.True(t, apiErr.IsTokenExpired())
}

func TestFetch_ErrorWithOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"message":"Unsupported get request","type":"GraphMethodException","code":100}}`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetAds(context.Background(), "tok", "5")

	var apiErr *metadomain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 100, apiErr.Code)
	assert.False(t, apiErr.IsTokenExpired())
}

func TestExchangeToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/v22.0/oauth/access_token", r.URL.Path)
		assert.Equal(t, "fb_exchange_token", query.Get("grant_type"))
		assert.Equal(t, "app-id", query.Get("client_id"))
		assert.Equal(t, "app-secret", query.Get("client_secret"))
		assert.Equal(t, "short", query.Get("fb_exchange_token"))

		fmt.Fprint(w, `{"access_token":"long","token_type":"bearer","expires_in":5184000}`)
	}))
	defer server.Close()

	token, err := newTestClient(server.URL).ExchangeToken(context.Background(), "short")
	require.NoError(t, err)
	assert.Equal(t, "long", token.AccessToken)
	assert.Equal(t, int64(5184000), token.ExpiresIn)
}

func TestExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Empty(t, query.Get("grant_type"))
		assert.Equal(t, "the-code", query.Get("code"))
		assert.Equal(t, "https://app.example.com/callback", query.Get("redirect_uri"))

		fmt.Fprint(w, `{"access_token":"user-token","token_type":"bearer"}`)
	}))
	defer server.Close()

	token, err := newTestClient(server.URL).ExchangeCode(context.Background(), "the-code", "https://app.example.com/callback")
	require.NoError(t, err)
	assert.Equal(t, "user-token", token.AccessToken)
}

func TestExchangeToken_Empty(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:0").ExchangeToken(context.Background(), "")
	assert.Error(t, err)
}

func TestTokenExpiration(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, TokenExpiration(now, 0))

	expiresAt := TokenExpiration(now, 3600)
	require.NotNil(t, expiresAt)
	assert.Equal(t, now.Add(time.Hour), *expiresAt)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1 dias, 2 horas e 3 minutos", FormatDuration(93780))
}
