package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenResponse representa a resposta da API do Meta ao trocar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExchangeToken troca um token de curta duração por um de longa duração
func (c *MetaClient) ExchangeToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error) {
	if shortLivedToken == "" {
		return nil, fmt.Errorf("token de acesso não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "fb_exchange_token")
	params.Add("client_id", c.Cfg.AppID)
	params.Add("client_secret", c.Cfg.AppSecret)
	params.Add("fb_exchange_token", shortLivedToken)

	return c.requestToken(ctx, params)
}

// ExchangeCode troca o código OAuth por um token de acesso
func (c *MetaClient) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("código de autorização não pode ser vazio")
	}

	params := url.Values{}
	params.Add("client_id", c.Cfg.AppID)
	params.Add("client_secret", c.Cfg.AppSecret)
	params.Add("redirect_uri", redirectURI)
	params.Add("code", code)

	return c.requestToken(ctx, params)
}

func (c *MetaClient) requestToken(ctx context.Context, params url.Values) (*TokenResponse, error) {
	body, err := c.get(ctx, c.endpoint("oauth/access_token")+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token de acesso: %w", err)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	if tokenResp.ExpiresIn > 0 {
		logrus.Infof("Token obtido com sucesso. Expira em %s.", FormatDuration(tokenResp.ExpiresIn))
	} else {
		logrus.Info("Token obtido com sucesso, sem data de expiração informada")
	}

	return &tokenResp, nil
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

// TokenExpiration calcula o instante de expiração; nil quando a API não informa
func TokenExpiration(now time.Time, expiresIn int64) *time.Time {
	if expiresIn <= 0 {
		return nil
	}
	expiresAt := now.Add(time.Duration(expiresIn) * time.Second)
	return &expiresAt
}
