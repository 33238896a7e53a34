package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/session"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 60 * time.Second

// Error é a resposta não-2xx da API
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// IsUnauthorized indica se a API recusou as credenciais
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Client fala com a API do dashboard usando os tokens da sessão
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	session    *session.Manager
	refreshMu  sync.Mutex
}

func New(baseURL string, sess *session.Manager) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		session:    sess,
	}
}

// Login autentica e grava os tokens na sessão
func (c *Client) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	var pair domain.TokenPair
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", nil, domain.LoginRequest{Username: username, Password: password}, "", &pair)
	if err != nil {
		return nil, err
	}

	c.session.SetTokens(ctx, pair.AccessToken, pair.RefreshToken)
	return &pair, nil
}

// Refresh troca o refresh token da sessão por um novo par. Em caso de falha a
// sessão é encerrada.
func (c *Client) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	refreshToken := c.session.State().RefreshToken
	if refreshToken == "" {
		return &Error{Status: http.StatusUnauthorized, Message: "sessão sem refresh token"}
	}

	var pair domain.TokenPair
	err := c.do(ctx, http.MethodPost, "/v1/auth/refresh", nil, domain.RefreshRequest{RefreshToken: refreshToken}, "", &pair)
	if err != nil {
		logrus.WithError(err).Warn("apiclient: refresh failed, clearing session")
		c.session.ClearAuth(ctx)
		return err
	}

	c.session.SetTokens(ctx, pair.AccessToken, pair.RefreshToken)
	return nil
}

func (c *Client) GetUserByID(ctx context.Context, id string) (*domain.UserResponse, error) {
	var user domain.UserResponse
	if err := c.authed(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetAdAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	var accounts []*domain.AdAccount
	if err := c.authed(ctx, http.MethodGet, "/v1/facebook/ad-accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *Client) GetCampaigns(ctx context.Context, accountID, since, until string) ([]*domain.Campaign, error) {
	var campaigns []*domain.Campaign
	path := fmt.Sprintf("/v1/facebook/ad-accounts/%s/campaigns", url.PathEscape(accountID))
	if err := c.authed(ctx, http.MethodGet, path, dateQuery(since, until), &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (c *Client) GetAdSets(ctx context.Context, accountID, campaignID, since, until string) ([]*domain.AdSet, error) {
	var adSets []*domain.AdSet
	path := fmt.Sprintf("/v1/facebook/ad-accounts/%s/campaigns/%s/adsets", url.PathEscape(accountID), url.PathEscape(campaignID))
	if err := c.authed(ctx, http.MethodGet, path, dateQuery(since, until), &adSets); err != nil {
		return nil, err
	}
	return adSets, nil
}

func (c *Client) GetAds(ctx context.Context, adSetID, since, until string) ([]*domain.Ad, error) {
	var ads []*domain.Ad
	path := fmt.Sprintf("/v1/facebook/adsets/%s/ads", url.PathEscape(adSetID))
	if err := c.authed(ctx, http.MethodGet, path, dateQuery(since, until), &ads); err != nil {
		return nil, err
	}
	return ads, nil
}

func dateQuery(since, until string) url.Values {
	query := url.Values{}
	if since != "" {
		query.Set("since", since)
	}
	if until != "" {
		query.Set("until", until)
	}
	return query
}

// authed envia a requisição com o access token. Um 401 dispara uma única
// renovação seguida de uma nova tentativa.
func (c *Client) authed(ctx context.Context, method, path string, query url.Values, out any) error {
	err := c.do(ctx, method, path, query, nil, c.session.State().AccessToken, out)
	if !IsUnauthorized(err) || c.session.State().RefreshToken == "" {
		return err
	}

	if refreshErr := c.Refresh(ctx); refreshErr != nil {
		return err
	}

	return c.do(ctx, method, path, query, nil, c.session.State().AccessToken, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, accessToken string, out any) error {
	requestURL := c.BaseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return handleResponse(resp, out)
}

func handleResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(data, apiErr); jsonErr != nil || (apiErr.Code == "" && apiErr.Message == "") {
			apiErr.Message = strings.TrimSpace(string(data))
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	return nil
}
