package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/advertising"
	admocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/advertising/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/notifying"
	notifymocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/notifying/mocks"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var (
	admin   = &domain.User{ID: "admin-1", Username: "admin", IsActive: true, IsAdmin: true}
	regular = &domain.User{ID: "user-1", Username: "loja", IsActive: true, AdAccountID: domain.StringPtr("42")}
)

// newRequest monta a requisição com o usuário autenticado e os parâmetros de rota
func newRequest(method, target, body string, user *domain.User, params ...httprouter.Param) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := req.Context()
	if user != nil {
		ctx = middleware.WithUser(ctx, user)
	}
	if len(params) > 0 {
		ctx = context.WithValue(ctx, httprouter.ParamsKey, httprouter.Params(params))
	}
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *authmocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "json inválido",
			body:       "{",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "credenciais inválidas",
			body: `{"username":"loja","password":"errada"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "loja", "errada").
					Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "sucesso",
			body: `{"username":"loja","password":"Senha@123"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "loja", "Senha@123").
					Return(&domain.TokenPair{AccessToken: "a", RefreshToken: "r", TokenType: "bearer"}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authmocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			rec := httptest.NewRecorder()
			Login(auth).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/auth/login", tt.body, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}

			var pair domain.TokenPair
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
			assert.Equal(t, "a", pair.AccessToken)
			assert.Equal(t, "r", pair.RefreshToken)
		})
	}
}

func TestRefresh_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	rec := httptest.NewRecorder()
	Refresh(auth).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/auth/refresh", `{}`, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
}

func TestGetUser(t *testing.T) {
	tests := []struct {
		name       string
		requester  *domain.User
		targetID   string
		setup      func(m *authmocks.MockAuthenticator)
		wantStatus int
	}{
		{
			name:       "usuário comum consultando outro usuário",
			requester:  regular,
			targetID:   "user-2",
			wantStatus: http.StatusForbidden,
		},
		{
			name:      "usuário comum consultando a si mesmo",
			requester: regular,
			targetID:  "user-1",
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().GetUser(gomock.Any(), "user-1").Return(regular, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "admin consultando usuário inexistente",
			requester: admin,
			targetID:  "nope",
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().GetUser(gomock.Any(), "nope").
					Return(nil, authenticating.NewUserAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, "nope", ""))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authmocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			req := newRequest(http.MethodGet, "/v1/users/"+tt.targetID, "", tt.requester,
				httprouter.Param{Key: "id", Value: tt.targetID})
			rec := httptest.NewRecorder()
			GetUser(auth).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetUser_HidesPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	stored := *regular
	stored.PasswordHash = "$2a$10$hash"
	auth.EXPECT().GetUser(gomock.Any(), "user-1").Return(&stored, nil)

	req := newRequest(http.MethodGet, "/v1/users/user-1", "", regular, httprouter.Param{Key: "id", Value: "user-1"})
	rec := httptest.NewRecorder()
	GetUser(auth).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.Contains(t, rec.Body.String(), `"ad_account_id":"42"`)
}

func TestListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().
		ListUsers(gomock.Any(), domain.UserListParams{Page: 2, PageSize: 10, UsernameSearch: "lo"}).
		Return(domain.NewUsersPage(nil, 11, domain.UserListParams{Page: 2, PageSize: 10}), nil)

	rec := httptest.NewRecorder()
	ListUsers(auth).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/users?page=2&page_size=10&username__search=lo", "", admin))

	require.Equal(t, http.StatusOK, rec.Code)

	var page domain.UsersPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 11, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
	assert.NotNil(t, page.Items)
}

func TestListUsers_InvalidPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	rec := httptest.NewRecorder()
	ListUsers(auth).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/users?page=x", "", admin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	req := domain.CreateUserRequest{Username: "nova", Password: "Senha@123", AdAccountID: domain.StringPtr("99")}
	auth.EXPECT().CreateUser(gomock.Any(), admin, req).
		Return(&domain.User{ID: "u9", Username: "nova", AdAccountID: domain.StringPtr("99")}, nil)

	rec := httptest.NewRecorder()
	CreateUser(auth).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/users",
		`{"username":"nova","password":"Senha@123","ad_account_id":"99"}`, admin))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body domain.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u9", body.ID)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().ChangePassword(gomock.Any(), regular, "user-1", "velha", "Nova@1234").
		Return(authenticating.NewUserAuthError(authenticating.ErrPasswordMismatch, apiErrors.ErrInvalidCredentials, "user-1", ""))

	req := newRequest(http.MethodPost, "/v1/users/user-1/change-password",
		`{"current_password":"velha","new_password":"Nova@1234"}`, regular,
		httprouter.Param{Key: "id", Value: "user-1"})
	rec := httptest.NewRecorder()
	ChangePassword(auth).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, body.Code)
	assert.Equal(t, map[string]any{"user_id": "user-1"}, body.Details)
}

func TestGeneratePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)

	auth.EXPECT().GeneratePassword(gomock.Any(), admin, "user-1").Return("Xy9#abcdEFGH", nil)

	req := newRequest(http.MethodPost, "/v1/users/user-1/generate-password", "", admin,
		httprouter.Param{Key: "id", Value: "user-1"})
	rec := httptest.NewRecorder()
	GeneratePassword(auth).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"password":"Xy9#abcdEFGH"}`, rec.Body.String())
}

func TestGetCampaigns(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(m *admocks.MockAdvertiser)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "data inválida",
			query:      "?since=01-02-2025",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "intervalo invertido",
			query:      "?since=2025-02-10&until=2025-02-01",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidTimeRange,
		},
		{
			name:  "conta de outro usuário",
			query: "?since=2025-02-01&until=2025-02-10",
			setup: func(m *admocks.MockAdvertiser) {
				m.EXPECT().GetCampaigns(gomock.Any(), regular, "42", gomock.Any()).
					Return(nil, advertising.NewAdvertisingError(advertising.ErrAccessDenied, apiErrors.ErrAdAccountForbidden, ""))
			},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrAdAccountForbidden,
		},
		{
			name:  "token do facebook expirado",
			query: "?since=2025-02-01&until=2025-02-10",
			setup: func(m *admocks.MockAdvertiser) {
				m.EXPECT().GetCampaigns(gomock.Any(), regular, "42", gomock.Any()).
					Return(nil, advertising.NewAdvertisingError(advertising.ErrFacebookTokenExpired, apiErrors.ErrFacebookTokenExpired, ""))
			},
			wantStatus: http.StatusFailedDependency,
			wantCode:   apiErrors.ErrFacebookTokenExpired,
		},
		{
			name:  "sucesso",
			query: "?since=2025-02-01&until=2025-02-10",
			setup: func(m *admocks.MockAdvertiser) {
				m.EXPECT().GetCampaigns(gomock.Any(), regular, "42", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *domain.User, _ string, dr domain.DateRange) ([]*domain.Campaign, error) {
						assert.Equal(t, "2025-02-01", dr.SinceString())
						assert.Equal(t, "2025-02-10", dr.UntilString())
						return []*domain.Campaign{{CampaignID: "c1"}}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ad := admocks.NewMockAdvertiser(ctrl)
			if tt.setup != nil {
				tt.setup(ad)
			}

			req := newRequest(http.MethodGet, "/v1/facebook/ad-accounts/42/campaigns"+tt.query, "", regular,
				httprouter.Param{Key: "account_id", Value: "42"})
			rec := httptest.NewRecorder()
			GetCampaigns(ad).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestGetObjectives(t *testing.T) {
	ctrl := gomock.NewController(t)
	ad := admocks.NewMockAdvertiser(ctrl)

	ad.EXPECT().GetCampaignGroups(gomock.Any(), admin, "42", gomock.Any()).
		Return([]*domain.ObjectiveGroup{{Objective: "OUTCOME_SALES"}}, nil)

	req := newRequest(http.MethodGet, "/v1/facebook/ad-accounts/42/objectives", "", admin,
		httprouter.Param{Key: "account_id", Value: "42"})
	rec := httptest.NewRecorder()
	GetObjectives(ad).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"objective":"OUTCOME_SALES"`)
}

func TestGetAdSetsAndAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	ad := admocks.NewMockAdvertiser(ctrl)

	ad.EXPECT().GetAdSets(gomock.Any(), admin, "42", "c1", gomock.Any()).
		Return([]*domain.AdSet{{AdSetID: "s1"}}, nil)
	ad.EXPECT().GetAds(gomock.Any(), admin, "s1", gomock.Any()).
		Return([]*domain.Ad{{AdID: "a1"}}, nil)

	rec := httptest.NewRecorder()
	GetAdSets(ad).ServeHTTP(rec, newRequest(http.MethodGet, "/", "", admin,
		httprouter.Param{Key: "account_id", Value: "42"},
		httprouter.Param{Key: "campaign_id", Value: "c1"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"adset_id":"s1"`)

	rec = httptest.NewRecorder()
	GetAds(ad).ServeHTTP(rec, newRequest(http.MethodGet, "/", "", admin,
		httprouter.Param{Key: "adset_id", Value: "s1"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ad_id":"a1"`)
}

func TestExchangeCode_NotConnectedErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ad := admocks.NewMockAdvertiser(ctrl)

	ad.EXPECT().ExchangeCode(gomock.Any(), admin, domain.ExchangeCodeRequest{Code: "c", RedirectURI: "https://app/cb"}).
		Return(advertising.NewAdvertisingError(advertising.ErrFacebookAPI, apiErrors.ErrFacebookAPI, "invalid code"))

	rec := httptest.NewRecorder()
	ExchangeCode(ad).ServeHTTP(rec, newRequest(http.MethodPost, "/", `{"code":"c","redirect_uri":"https://app/cb"}`, admin))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, apiErrors.ErrFacebookAPI, decodeError(t, rec).Code)
}

func TestAdAccountList_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ad := admocks.NewMockAdvertiser(ctrl)

	ad.EXPECT().GetAdAccounts(gomock.Any(), admin).Return(nil, errors.New("boom"))

	rec := httptest.NewRecorder()
	AdAccountList(ad).ServeHTTP(rec, newRequest(http.MethodGet, "/", "", admin))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
}

func TestTelegramHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := notifymocks.NewMockNotifier(ctrl)

	notifier.EXPECT().GetRegistrationLink(gomock.Any(), regular, "ru").
		Return(&domain.TelegramRegisterResponse{RegistrationLink: "https://t.me/bot?start=tok_ru"}, nil)
	notifier.EXPECT().GetRegistrationLink(gomock.Any(), regular, "en").
		Return(nil, notifying.NewNotifyingError(notifying.ErrInvalidLocale, apiErrors.ErrInvalidFormat, "en"))
	notifier.EXPECT().ToggleDaily(gomock.Any(), regular, true).Return(nil)
	notifier.EXPECT().Logout(gomock.Any(), regular).Return(nil)

	rec := httptest.NewRecorder()
	TelegramRegister(notifier).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/telegram/register?locale=ru", "", regular))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"registration_link":"https://t.me/bot?start=tok_ru"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	TelegramRegister(notifier).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/telegram/register?locale=en", "", regular))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)

	rec = httptest.NewRecorder()
	TelegramDaily(notifier).ServeHTTP(rec, newRequest(http.MethodPut, "/v1/telegram/daily", `{"enabled":true}`, regular))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"enabled":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	TelegramLogout(notifier).ServeHTTP(rec, newRequest(http.MethodDelete, "/v1/telegram/logout", "", regular))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTelegramBroadcast(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		period     domain.ReportPeriod
		result     bool
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "período padrão",
			period:     domain.PeriodToday,
			result:     true,
			wantStatus: http.StatusOK,
			wantBody:   `{"sent":true,"period":"today"}`,
		},
		{
			name:       "sem dados no período",
			query:      "?period=week",
			period:     domain.PeriodWeek,
			wantStatus: http.StatusOK,
			wantBody:   `{"sent":false,"period":"week"}`,
		},
		{
			name:       "chat não vinculado",
			query:      "?period=month",
			period:     domain.PeriodMonth,
			err:        notifying.NewNotifyingError(notifying.ErrTelegramNotLinked, apiErrors.ErrTelegramNotLinked, ""),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bot desativado",
			query:      "?period=yesterday",
			period:     domain.PeriodYesterday,
			err:        notifying.NewNotifyingError(notifying.ErrSendFailed, apiErrors.ErrTelegramUnavailable, ""),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			notifier := notifymocks.NewMockNotifier(ctrl)
			notifier.EXPECT().Broadcast(gomock.Any(), admin, tt.period).Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			TelegramBroadcast(notifier).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/telegram/broadcast"+tt.query, "", admin))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

type fakeCronJob struct {
	accept    bool
	triggered int
}

func (f *fakeCronJob) TriggerManualRun(context.Context) bool {
	f.triggered++
	return f.accept
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"running": !f.accept}
}

func TestRunCronJob(t *testing.T) {
	job := &fakeCronJob{accept: true}
	services := CronJobServices{DailyBroadcast: job}

	rec := httptest.NewRecorder()
	RunCronJob(services).ServeHTTP(rec, newRequest(http.MethodPost, "/", "", admin,
		httprouter.Param{Key: "type", Value: CronJobTypeDailyBroadcast}))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, job.triggered)

	job.accept = false
	rec = httptest.NewRecorder()
	RunCronJob(services).ServeHTTP(rec, newRequest(http.MethodPost, "/", "", admin,
		httprouter.Param{Key: "type", Value: CronJobTypeDailyBroadcast}))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	RunCronJob(services).ServeHTTP(rec, newRequest(http.MethodPost, "/", "", admin,
		httprouter.Param{Key: "type", Value: "meta"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 2, job.triggered)

	rec = httptest.NewRecorder()
	GetCronStatus(services).ServeHTTP(rec, newRequest(http.MethodGet, "/", "", admin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"daily-broadcast":{"running":true}}`, rec.Body.String())
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealthcheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthcheckHandler(fakePinger{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	HealthcheckHandler(fakePinger{err: errors.New("down")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
