package advertising

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

type Advertiser interface {
	GetAuthStatus(ctx context.Context, user *domain.User) (*domain.FacebookAuthStatus, error)
	ExchangeToken(ctx context.Context, user *domain.User, req domain.ExchangeTokenRequest) error
	ExchangeCode(ctx context.Context, user *domain.User, req domain.ExchangeCodeRequest) error
	AccessToken(ctx context.Context, user *domain.User) (string, error)
	GetAdAccounts(ctx context.Context, user *domain.User) ([]*domain.AdAccount, error)
	GetCampaigns(ctx context.Context, user *domain.User, accountID string, dateRange domain.DateRange) ([]*domain.Campaign, error)
	GetCampaignGroups(ctx context.Context, user *domain.User, accountID string, dateRange domain.DateRange) ([]*domain.ObjectiveGroup, error)
	GetAdSets(ctx context.Context, user *domain.User, accountID, campaignID string, dateRange domain.DateRange) ([]*domain.AdSet, error)
	GetAds(ctx context.Context, user *domain.User, adSetID string, dateRange domain.DateRange) ([]*domain.Ad, error)
}

type Service struct {
	cfg      config.Meta
	authRepo repository.FacebookAuthRepository
	meta     meta.Integrator
	now      func() time.Time
}

func NewService(cfg config.Meta, authRepo repository.FacebookAuthRepository, integrator meta.Integrator) *Service {
	return &Service{
		cfg:      cfg,
		authRepo: authRepo,
		meta:     integrator,
		now:      time.Now,
	}
}

func (s *Service) GetAuthStatus(ctx context.Context, user *domain.User) (*domain.FacebookAuthStatus, error) {
	auth, err := s.authRepo.GetByOwner(ctx, user.FacebookOwnerID())
	if err != nil {
		return nil, NewAdvertisingError(err, apiErrors.ErrDatabaseOperation, "")
	}

	return &domain.FacebookAuthStatus{
		Connected: auth != nil && auth.LongToken != "",
		AppID:     s.cfg.AppID,
	}, nil
}

// ExchangeToken troca o token curto do login do Facebook por um de longa
// duração e o salva para o admin
func (s *Service) ExchangeToken(ctx context.Context, user *domain.User, req domain.ExchangeTokenRequest) error {
	if req.ShortLivedToken == "" {
		return NewAdvertisingError(errors.New("short_lived_token é obrigatório"), apiErrors.ErrMissingRequiredData, "")
	}

	token, err := s.meta.ExchangeToken(ctx, req.ShortLivedToken)
	if err != nil {
		return s.wrapGraphError(err)
	}

	return s.saveToken(ctx, user, token)
}

// ExchangeCode conclui o fluxo OAuth: código ⇒ token de usuário ⇒ token de longa duração
func (s *Service) ExchangeCode(ctx context.Context, user *domain.User, req domain.ExchangeCodeRequest) error {
	if req.Code == "" || req.RedirectURI == "" {
		return NewAdvertisingError(errors.New("code e redirect_uri são obrigatórios"), apiErrors.ErrMissingRequiredData, "")
	}

	userToken, err := s.meta.ExchangeCode(ctx, req.Code, req.RedirectURI)
	if err != nil {
		return s.wrapGraphError(err)
	}

	token, err := s.meta.ExchangeToken(ctx, userToken.AccessToken)
	if err != nil {
		return s.wrapGraphError(err)
	}

	return s.saveToken(ctx, user, token)
}

func (s *Service) saveToken(ctx context.Context, user *domain.User, token *domain.FacebookTokenResponse) error {
	auth := &domain.FacebookAuth{
		OwnerID:   user.ID,
		LongToken: token.AccessToken,
		ExpiresAt: meta.ExpiresAt(token),
	}

	if err := s.authRepo.Upsert(ctx, auth); err != nil {
		return NewAdvertisingError(err, apiErrors.ErrDatabaseOperation, "Erro ao salvar token do facebook")
	}

	logrus.WithField("user_id", user.ID).Info("facebook: token de longa duração salvo")

	return nil
}

// AccessToken devolve o token de longa duração do dono da conta do usuário
func (s *Service) AccessToken(ctx context.Context, user *domain.User) (string, error) {
	ownerID := user.FacebookOwnerID()
	if ownerID == "" {
		return "", NewAdvertisingError(ErrFacebookNotConnected, apiErrors.ErrFacebookNotConnected, "")
	}

	auth, err := s.authRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return "", NewAdvertisingError(err, apiErrors.ErrDatabaseOperation, "")
	}

	if auth == nil || auth.LongToken == "" {
		return "", NewAdvertisingError(ErrFacebookNotConnected, apiErrors.ErrFacebookNotConnected, "")
	}

	if auth.ExpiresAt != nil && s.now().After(*auth.ExpiresAt) {
		logrus.WithFields(logrus.Fields{
			"owner_id":   ownerID,
			"expires_at": auth.ExpiresAt,
		}).Warn("facebook: token salvo já passou da expiração")
	}

	return auth.LongToken, nil
}

func (s *Service) checkAccountAccess(user *domain.User, accountID string) error {
	if !user.CanAccessAdAccount(accountID) {
		return NewAdvertisingError(ErrAccessDenied, apiErrors.ErrAdAccountForbidden, "")
	}
	return nil
}

// GetAdAccounts lista todas as contas para admins; usuários comuns só veem a própria
func (s *Service) GetAdAccounts(ctx context.Context, user *domain.User) ([]*domain.AdAccount, error) {
	token, err := s.AccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	accounts, err := s.meta.GetAdAccounts(ctx, token)
	if err != nil {
		return nil, s.wrapGraphError(err)
	}

	if user.IsAdmin {
		return accounts, nil
	}

	result := make([]*domain.AdAccount, 0, 1)
	if user.AdAccountID == nil {
		return result, nil
	}

	for _, account := range accounts {
		if account.AccountID == *user.AdAccountID {
			result = append(result, account)
		}
	}

	return result, nil
}

func (s *Service) GetCampaigns(ctx context.Context, user *domain.User, accountID string, dateRange domain.DateRange) ([]*domain.Campaign, error) {
	if err := s.checkAccountAccess(user, accountID); err != nil {
		return nil, err
	}

	token, err := s.AccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.meta.GetCampaigns(ctx, token, accountID, dateRange)
	if err != nil {
		return nil, s.wrapGraphError(err)
	}

	return campaigns, nil
}

// GetCampaignGroups agrupa as campanhas da conta por objetivo
func (s *Service) GetCampaignGroups(ctx context.Context, user *domain.User, accountID string, dateRange domain.DateRange) ([]*domain.ObjectiveGroup, error) {
	campaigns, err := s.GetCampaigns(ctx, user, accountID, dateRange)
	if err != nil {
		return nil, err
	}

	return insighting.GroupByObjective(campaigns), nil
}

func (s *Service) GetAdSets(ctx context.Context, user *domain.User, accountID, campaignID string, dateRange domain.DateRange) ([]*domain.AdSet, error) {
	if err := s.checkAccountAccess(user, accountID); err != nil {
		return nil, err
	}

	token, err := s.AccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	adSets, err := s.meta.GetAdSets(ctx, token, accountID, campaignID, dateRange)
	if err != nil {
		return nil, s.wrapGraphError(err)
	}

	return adSets, nil
}

// GetAds não verifica a conta dona do conjunto: o ID do conjunto só é obtido
// através de uma conta permitida.
func (s *Service) GetAds(ctx context.Context, user *domain.User, adSetID string, dateRange domain.DateRange) ([]*domain.Ad, error) {
	token, err := s.AccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	ads, err := s.meta.GetAds(ctx, token, adSetID, dateRange)
	if err != nil {
		return nil, s.wrapGraphError(err)
	}

	return ads, nil
}

func (s *Service) wrapGraphError(err error) error {
	var apiErr *metadomain.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsTokenExpired() {
			return NewAdvertisingError(ErrFacebookTokenExpired, apiErrors.ErrFacebookTokenExpired, apiErr.Message)
		}
		return NewAdvertisingError(ErrFacebookAPI, apiErrors.ErrFacebookAPI, apiErr.Message)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NewAdvertisingError(err, apiErrors.ErrCommunication, "")
	}

	return NewAdvertisingError(ErrFacebookAPI, apiErrors.ErrExternalService, err.Error())
}
