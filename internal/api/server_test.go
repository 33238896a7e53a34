package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	admocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/advertising/mocks"
	authmocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating/mocks"
	notifymocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/notifying/mocks"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (http.Handler, *authmocks.MockAuthenticator, *admocks.MockAdvertiser) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	ad := admocks.NewMockAdvertiser(ctrl)

	cfg := &config.Config{
		LoginRateLimit: config.LoginRateLimit{RequestsPerMinute: 1, Burst: 1},
		Cors:           config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	h := NewHandler(cfg, Services{
		Authenticator: auth,
		Advertiser:    ad,
		Notifier:      notifymocks.NewMockNotifier(ctrl),
	})

	return h, auth, ad
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_RequireAuthentication(t *testing.T) {
	h, _, _ := newTestHandler(t)

	for _, path := range []string{"/v1/users", "/v1/facebook/ad-accounts", "/v1/telegram/chat_id", "/v1/cron/status"} {
		rec := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidToken, path)
	}
}

func TestRoutes_AdminOnlyRejectsRegularUser(t *testing.T) {
	h, auth, _ := newTestHandler(t)

	auth.EXPECT().ValidateToken("tok").Return(&domain.Claims{
		Type:             domain.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}, nil)
	auth.EXPECT().GetUser(gomock.Any(), "user-1").Return(&domain.User{ID: "user-1", IsActive: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/facebook/auth/exchange-token", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer tok")

	rec := serve(h, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInsufficientPrivilege)
}

func TestRoutes_AuthenticatedAdAccounts(t *testing.T) {
	h, auth, ad := newTestHandler(t)

	user := &domain.User{ID: "user-1", IsActive: true, AdAccountID: domain.StringPtr("42")}
	auth.EXPECT().ValidateToken("tok").Return(&domain.Claims{
		Type:             domain.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}, nil)
	auth.EXPECT().GetUser(gomock.Any(), "user-1").Return(user, nil)
	ad.EXPECT().GetAdAccounts(gomock.Any(), user).Return([]*domain.AdAccount{{AccountID: "42"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/facebook/ad-accounts", nil)
	req.Header.Set("Authorization", "Bearer tok")

	rec := serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"account_id":"42"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRoutes_LoginIsRateLimited(t *testing.T) {
	h, auth, _ := newTestHandler(t)

	auth.EXPECT().Login(gomock.Any(), "loja", "x").Return(&domain.TokenPair{AccessToken: "a"}, nil)

	newLogin := func() *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"username":"loja","password":"x"}`))
		req.RemoteAddr = "10.1.1.1:4000"
		return req
	}

	assert.Equal(t, http.StatusOK, serve(h, newLogin()).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, newLogin()).Code)
}

func TestRoutes_NotFoundAndPreflight(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrNotFound)

	req := httptest.NewRequest(http.MethodOptions, "/v1/users", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec = serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
