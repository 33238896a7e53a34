package notifying

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/advertising"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

const registrationTokenSize = 32

type Notifier interface {
	GetRegistrationLink(ctx context.Context, user *domain.User, locale string) (*domain.TelegramRegisterResponse, error)
	Logout(ctx context.Context, user *domain.User) error
	GetChatID(ctx context.Context, user *domain.User) (*domain.TelegramChatIDResponse, error)
	ToggleDaily(ctx context.Context, user *domain.User, enabled bool) error
	Broadcast(ctx context.Context, user *domain.User, period domain.ReportPeriod) (bool, error)
	SendReport(ctx context.Context, user *domain.User, period domain.ReportPeriod) (bool, error)
	DailyRecipients(ctx context.Context) ([]*domain.User, error)
	HandleStart(ctx context.Context, cmd domain.StartCommand) string
}

type Service struct {
	cfg          config.Telegram
	telegramRepo repository.TelegramRepository
	userRepo     repository.UserRepository
	advertiser   advertising.Advertiser
	sender       telegram.Sender
	now          func() time.Time
}

func NewService(
	cfg config.Telegram,
	telegramRepo repository.TelegramRepository,
	userRepo repository.UserRepository,
	advertiser advertising.Advertiser,
	sender telegram.Sender,
) *Service {
	return &Service{
		cfg:          cfg,
		telegramRepo: telegramRepo,
		userRepo:     userRepo,
		advertiser:   advertiser,
		sender:       sender,
		now:          time.Now,
	}
}

// GetRegistrationLink gera um novo token de vínculo e devolve o deep link do bot
func (s *Service) GetRegistrationLink(ctx context.Context, user *domain.User, locale string) (*domain.TelegramRegisterResponse, error) {
	loc, err := ParseRegistrationLocale(locale)
	if err != nil {
		return nil, NewNotifyingError(err, apiErrors.ErrInvalidFormat, locale)
	}

	token, err := utils.GenerateID(registrationTokenSize)
	if err != nil {
		return nil, NewNotifyingError(err, apiErrors.ErrInternalServer, "")
	}

	if err := s.telegramRepo.SetRegistrationToken(ctx, user.ID, token); err != nil {
		return nil, NewNotifyingError(err, apiErrors.ErrDatabaseOperation, "")
	}

	return &domain.TelegramRegisterResponse{
		RegistrationLink: fmt.Sprintf("%s?start=%s_%s", s.cfg.BotLink, token, loc),
	}, nil
}

func (s *Service) Logout(ctx context.Context, user *domain.User) error {
	if err := s.telegramRepo.Logout(ctx, user.ID); err != nil {
		return NewNotifyingError(err, apiErrors.ErrDatabaseOperation, "")
	}
	return nil
}

func (s *Service) GetChatID(ctx context.Context, user *domain.User) (*domain.TelegramChatIDResponse, error) {
	current, err := s.userRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, NewNotifyingError(err, apiErrors.ErrDatabaseOperation, "")
	}

	if current == nil {
		return &domain.TelegramChatIDResponse{}, nil
	}

	return &domain.TelegramChatIDResponse{
		ChatID:               current.TelegramChatID,
		TelegramUsername:     current.TelegramUsername,
		TelegramDailyEnabled: current.TelegramDailyEnabled,
	}, nil
}

func (s *Service) ToggleDaily(ctx context.Context, user *domain.User, enabled bool) error {
	if err := s.telegramRepo.SetDaily(ctx, user.ID, enabled); err != nil {
		return NewNotifyingError(err, apiErrors.ErrDatabaseOperation, "")
	}
	return nil
}

// Broadcast envia o relatório do período para o chat do próprio usuário
func (s *Service) Broadcast(ctx context.Context, user *domain.User, period domain.ReportPeriod) (bool, error) {
	current, err := s.userRepo.GetUserByID(ctx, user.ID)
	if err != nil {
		return false, NewNotifyingError(err, apiErrors.ErrDatabaseOperation, "")
	}

	if current == nil {
		return false, NewNotifyingError(errors.New("usuário não encontrado"), apiErrors.ErrUserNotFound, "")
	}

	if current.TelegramChatID == nil {
		return false, NewNotifyingError(ErrTelegramNotLinked, apiErrors.ErrTelegramNotLinked, "")
	}

	return s.SendReport(ctx, current, period)
}

func (s *Service) DailyRecipients(ctx context.Context) ([]*domain.User, error) {
	users, err := s.telegramRepo.ListDailyRecipients(ctx)
	if err != nil {
		return nil, NewNotifyingError(err, apiErrors.ErrDatabaseOperation, "")
	}
	return users, nil
}

// SendReport monta e envia o relatório do usuário. Devolve false sem erro
// quando não há chat vinculado ou nenhuma campanha teve entrega no período.
func (s *Service) SendReport(ctx context.Context, user *domain.User, period domain.ReportPeriod) (bool, error) {
	if user.TelegramChatID == nil {
		return false, nil
	}

	now := s.now()
	dateRange := PeriodRange(period, now)
	locale := NormalizeLocale(string(user.Locale))

	var (
		text string
		ok   bool
		err  error
	)

	if user.IsAdmin {
		text, ok, err = s.adminReport(ctx, user, period, dateRange, now, locale)
	} else {
		text, ok, err = s.userReport(ctx, user, period, dateRange, now, locale)
	}

	if err != nil || !ok {
		return false, err
	}

	if err := s.sender.SendHTML(ctx, *user.TelegramChatID, text); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"chat_id": *user.TelegramChatID,
			"error":   err.Error(),
		}).Error("telegram: failed to send report")

		if errors.Is(err, telegram.ErrBotNotConfigured) {
			return false, NewNotifyingError(err, apiErrors.ErrTelegramUnavailable, "")
		}
		return false, NewNotifyingError(ErrSendFailed, apiErrors.ErrExternalService, err.Error())
	}

	return true, nil
}

func (s *Service) adminReport(ctx context.Context, user *domain.User, period domain.ReportPeriod, dateRange domain.DateRange, now time.Time, locale domain.Locale) (string, bool, error) {
	accounts, err := s.advertiser.GetAdAccounts(ctx, user)
	if err != nil {
		return "", false, err
	}

	reports := make([]AccountReport, 0, len(accounts))
	for _, account := range accounts {
		campaigns := s.fetchCampaigns(ctx, user, account.AccountID, dateRange)
		if len(campaigns) == 0 {
			continue
		}

		reports = append(reports, AccountReport{
			Name:      account.DisplayName(),
			Currency:  account.CurrencyOrDefault(),
			Campaigns: campaigns,
		})
	}

	if len(reports) == 0 {
		logrus.WithField("user_id", user.ID).Info("telegram: nenhuma campanha com entrega, relatório ignorado")
		return "", false, nil
	}

	return FormatAdminReport(reports, period, dateRange, now, locale), true, nil
}

func (s *Service) userReport(ctx context.Context, user *domain.User, period domain.ReportPeriod, dateRange domain.DateRange, now time.Time, locale domain.Locale) (string, bool, error) {
	if user.AdAccountID == nil || *user.AdAccountID == "" {
		return "", false, nil
	}

	accounts, err := s.advertiser.GetAdAccounts(ctx, user)
	if err != nil {
		return "", false, err
	}

	report := AccountReport{Name: *user.AdAccountID, Currency: "USD"}
	for _, account := range accounts {
		if account.AccountID == *user.AdAccountID {
			report.Name = account.DisplayName()
			report.Currency = account.CurrencyOrDefault()
			break
		}
	}

	report.Campaigns = s.fetchCampaigns(ctx, user, *user.AdAccountID, dateRange)
	if len(report.Campaigns) == 0 {
		logrus.WithField("user_id", user.ID).Info("telegram: nenhuma campanha com entrega, relatório ignorado")
		return "", false, nil
	}

	return FormatUserReport(report, period, dateRange, now, locale), true, nil
}

// fetchCampaigns trata falhas de uma conta como conta sem campanhas
func (s *Service) fetchCampaigns(ctx context.Context, user *domain.User, accountID string, dateRange domain.DateRange) []*domain.Campaign {
	campaigns, err := s.advertiser.GetCampaigns(ctx, user, accountID, dateRange)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("telegram: failed to fetch campaigns for report")
		return nil
	}
	return campaigns
}

// HandleStart trata o /start do bot e devolve a resposta no idioma do usuário
func (s *Service) HandleStart(ctx context.Context, cmd domain.StartCommand) string {
	fallback := DetectTelegramLocale(cmd.LanguageCode)
	token, payloadLocale := ParseStartPayload(cmd.Payload)

	locale := fallback
	if payloadLocale != "" {
		locale = payloadLocale
	}

	log := logrus.WithField("chat_id", cmd.ChatID)

	existing, err := s.telegramRepo.GetUserByChatID(ctx, cmd.ChatID)
	if err != nil {
		log.WithError(err).Error("telegram: failed to look up chat")
		return message(msgSaveError, locale)
	}

	if token == "" {
		if existing != nil {
			return message(msgAlreadyRegistered, locale)
		}
		return message(msgUseLink, locale)
	}

	user, err := s.telegramRepo.GetUserByRegistrationToken(ctx, token)
	if err != nil {
		log.WithError(err).Error("telegram: failed to look up registration token")
		return message(msgSaveError, locale)
	}

	if user == nil {
		return message(msgInvalidToken, locale)
	}

	if user.TelegramChatID != nil && *user.TelegramChatID == cmd.ChatID {
		log.WithField("user_id", user.ID).Debug("telegram: chat já vinculado, limpando token")
		if err := s.telegramRepo.ClearRegistrationToken(ctx, user.ID); err != nil {
			log.WithError(err).Error("telegram: failed to clear registration token")
		}
		return message(msgAlreadyRegistered, locale)
	}

	if existing != nil && existing.ID != user.ID {
		log.WithFields(logrus.Fields{
			"previous_user_id": existing.ID,
			"user_id":          user.ID,
		}).Debug("telegram: chat transferido para outro usuário")
	}

	var username *string
	if cmd.Username != "" {
		username = &cmd.Username
	}

	if err := s.telegramRepo.BindChat(ctx, user.ID, cmd.ChatID, username, payloadLocale); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("telegram: failed to bind chat")
		return message(msgSaveError, locale)
	}

	log.WithField("user_id", user.ID).Info("telegram: chat vinculado")

	return message(msgSuccess, locale)
}
