package advertising

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service    *Service
	authRepo   *mocks.MockFacebookAuthRepository
	integrator *metamocks.MockIntegrator
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	authRepo := mocks.NewMockFacebookAuthRepository(ctrl)
	integrator := metamocks.NewMockIntegrator(ctrl)

	return &fixture{
		service:    NewService(config.Meta{AppID: "app-123"}, authRepo, integrator),
		authRepo:   authRepo,
		integrator: integrator,
	}
}

func admin() *domain.User {
	return &domain.User{ID: "admin-1", IsAdmin: true, IsActive: true}
}

func regular(accountID string) *domain.User {
	return &domain.User{
		ID:          "user-1",
		IsActive:    true,
		AdAccountID: domain.StringPtr(accountID),
		CreatedByID: domain.StringPtr("admin-1"),
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var advErr *AdvertisingError
	require.True(t, errors.As(err, &advErr), "esperava AdvertisingError, veio %v", err)
	assert.Equal(t, code, advErr.Code)
}

func TestGetAuthStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.authRepo.EXPECT().GetByOwner(ctx, "admin-1").Return(&domain.FacebookAuth{OwnerID: "admin-1", LongToken: "long"}, nil)

	status, err := f.service.GetAuthStatus(ctx, admin())
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "app-123", status.AppID)
}

func TestGetAuthStatus_NotConnected(t *testing.T) {
	f := newFixture(t)

	f.authRepo.EXPECT().GetByOwner(gomock.Any(), "admin-1").Return(nil, nil)

	status, err := f.service.GetAuthStatus(context.Background(), admin())
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestExchangeToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.integrator.EXPECT().ExchangeToken(ctx, "short").
		Return(&domain.FacebookTokenResponse{AccessToken: "long", ExpiresIn: 3600}, nil)
	f.authRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, auth *domain.FacebookAuth) error {
		assert.Equal(t, "admin-1", auth.OwnerID)
		assert.Equal(t, "long", auth.LongToken)
		require.NotNil(t, auth.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(time.Hour), *auth.ExpiresAt, time.Minute)
		return nil
	})

	err := f.service.ExchangeToken(ctx, admin(), domain.ExchangeTokenRequest{ShortLivedToken: "short"})
	require.NoError(t, err)
}

func TestExchangeToken_Empty(t *testing.T) {
	f := newFixture(t)

	err := f.service.ExchangeToken(context.Background(), admin(), domain.ExchangeTokenRequest{})
	assertCode(t, err, apiErrors.ErrMissingRequiredData)
}

func TestExchangeCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.integrator.EXPECT().ExchangeCode(ctx, "code", "https://app/cb").
			Return(&domain.FacebookTokenResponse{AccessToken: "user-token"}, nil),
		f.integrator.EXPECT().ExchangeToken(ctx, "user-token").
			Return(&domain.FacebookTokenResponse{AccessToken: "long"}, nil),
	)
	f.authRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, auth *domain.FacebookAuth) error {
		assert.Equal(t, "long", auth.LongToken)
		assert.Nil(t, auth.ExpiresAt)
		return nil
	})

	err := f.service.ExchangeCode(ctx, admin(), domain.ExchangeCodeRequest{Code: "code", RedirectURI: "https://app/cb"})
	require.NoError(t, err)
}

func TestExchangeCode_GraphError(t *testing.T) {
	f := newFixture(t)

	f.integrator.EXPECT().ExchangeCode(gomock.Any(), "code", "https://app/cb").
		Return(nil, &metadomain.APIError{Message: "Invalid verification code", Code: 100})

	err := f.service.ExchangeCode(context.Background(), admin(), domain.ExchangeCodeRequest{Code: "code", RedirectURI: "https://app/cb"})
	assertCode(t, err, apiErrors.ErrFacebookAPI)
}

func TestAccessToken(t *testing.T) {
	t.Run("usuário sem criador não tem dono de token", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.AccessToken(context.Background(), &domain.User{ID: "orphan"})
		assertCode(t, err, apiErrors.ErrFacebookNotConnected)
	})

	t.Run("usuário comum usa o token do admin criador", func(t *testing.T) {
		f := newFixture(t)

		f.authRepo.EXPECT().GetByOwner(gomock.Any(), "admin-1").Return(&domain.FacebookAuth{LongToken: "long"}, nil)

		token, err := f.service.AccessToken(context.Background(), regular("42"))
		require.NoError(t, err)
		assert.Equal(t, "long", token)
	})

	t.Run("admin sem token salvo", func(t *testing.T) {
		f := newFixture(t)

		f.authRepo.EXPECT().GetByOwner(gomock.Any(), "admin-1").Return(nil, nil)

		_, err := f.service.AccessToken(context.Background(), admin())
		assertCode(t, err, apiErrors.ErrFacebookNotConnected)
		assert.ErrorIs(t, err, ErrFacebookNotConnected)
	})
}

func TestGetAdAccounts(t *testing.T) {
	accounts := []*domain.AdAccount{
		{AccountID: "42", Name: domain.StringPtr("Loja")},
		{AccountID: "77", Name: domain.StringPtr("Outra")},
	}

	t.Run("admin vê todas", func(t *testing.T) {
		f := newFixture(t)

		f.authRepo.EXPECT().GetByOwner(gomock.Any(), "admin-1").Return(&domain.FacebookAuth{LongToken: "long"}, nil)
		f.integrator.EXPECT().GetAdAccounts(gomock.Any(), "long").Return(accounts, nil)

		result, err := f.service.GetAdAccounts(context.Background(), admin())
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("usuário vê só a própria", func(t *testing.T) {
		f := newFixture(t)

		f.authRepo.EXPECT().GetByOwner(gomock.Any(), "admin-1").Return(&domain.FacebookAuth{LongToken: "long"}, nil)
		f.integrator.EXPECT().GetAdAccounts(gomock.Any(), "long").Return(accounts, nil)

		result, err := f.service.GetAdAccounts(context.Background(), regular("77"))
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "77", result[0].AccountID)
	})

	t.Run("usuário sem conta recebe lista vazia", func(t *testing.T) {
		f := newFixture(t)
		user := regular("")
		user.AdAccountID = nil

		f.authRepo.EXPECT().GetByOwner(gomock.Any(), "admin-1").Return(&domain.FacebookAuth{LongToken: "long"}, nil)
		f.integrator.EXPECT().GetAdAccounts(gomock.Any(), "long").Return(accounts, nil)

		result, err := f.service.GetAdAccounts(context.Background(), user)
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestGetCampaigns_Forbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GetCampaigns(context.Background(), regular("42"), "77", domain.DateRange{})
	assertCode(t, err, apiErrors.ErrAdAccountForbidden)
}

func TestGetCampaigns_TokenExpired(t *testing.T) {
	f := newFixture(t)

	f.authRepo.EXPECT().GetByOwner(gomock.Any(), "admin-1").Return(&domain.FacebookAuth{LongToken: "long"}, nil)
	f.integrator.EXPECT().GetCampaigns(gomock.Any(), "long", "42", gomock.Any()).
		Return(nil, &metadomain.APIError{Type: "OAuthException", Code: 190, Message: "Session has expired"})

	_, err := f.service.GetCampaigns(context.Background(), regular("42"), "42", domain.DateRange{})
	assertCode(t, err, apiErrors.ErrFacebookTokenExpired)
	assert.ErrorIs(t, err, ErrFacebookTokenExpired)
}

func TestGetCampaignGroups(t *testing.T) {
	f := newFixture(t)

	campaigns := []*domain.Campaign{
		{CampaignID: "1", Objective: domain.StringPtr("OUTCOME_SALES"), Insights: &domain.InsightsData{Spend: domain.StringPtr("10")}},
		{CampaignID: "2", Objective: domain.StringPtr("OUTCOME_SALES"), Insights: &domain.InsightsData{Spend: domain.StringPtr("5.5")}},
		{CampaignID: "3", Insights: &domain.InsightsData{Spend: domain.StringPtr("1")}},
	}

	f.authRepo.EXPECT().GetByOwner(gomock.Any(), "admin-1").Return(&domain.FacebookAuth{LongToken: "long"}, nil)
	f.integrator.EXPECT().GetCampaigns(gomock.Any(), "long", "42", gomock.Any()).Return(campaigns, nil)

	groups, err := f.service.GetCampaignGroups(context.Background(), admin(), "42", domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	objectives := map[string]int{}
	for _, group := range groups {
		objectives[group.Objective] = len(group.Campaigns)
	}
	assert.Equal(t, 2, objectives["OUTCOME_SALES"])
	assert.Equal(t, 1, objectives[domain.UnknownObjective])
}

func TestGetAdSets(t *testing.T) {
	f := newFixture(t)
	dateRange := domain.DateRange{Since: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Until: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)}

	f.authRepo.EXPECT().GetByOwner(gomock.Any(), "admin-1").Return(&domain.FacebookAuth{LongToken: "long"}, nil)
	f.integrator.EXPECT().GetAdSets(gomock.Any(), "long", "42", "c1", dateRange).
		Return([]*domain.AdSet{{AdSetID: "s1"}}, nil)

	adSets, err := f.service.GetAdSets(context.Background(), regular("42"), "42", "c1", dateRange)
	require.NoError(t, err)
	require.Len(t, adSets, 1)
}

func TestGetAds_GenericError(t *testing.T) {
	f := newFixture(t)

	f.authRepo.EXPECT().GetByOwner(gomock.Any(), "admin-1").Return(&domain.FacebookAuth{LongToken: "long"}, nil)
	f.integrator.EXPECT().GetAds(gomock.Any(), "long", "s1", gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := f.service.GetAds(context.Background(), regular("42"), "s1", domain.DateRange{})
	assertCode(t, err, apiErrors.ErrExternalService)
}
