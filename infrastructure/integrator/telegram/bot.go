package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

var ErrBotNotConfigured = errors.New("telegram bot token is not configured")

// Sender entrega mensagens para um chat
type Sender interface {
	SendHTML(ctx context.Context, chatID int64, text string) error
	SendText(ctx context.Context, chatID int64, text string) error
}

// StartHandler responde ao comando /start devolvendo o texto da resposta
type StartHandler interface {
	HandleStart(ctx context.Context, cmd domain.StartCommand) string
}

type Bot struct {
	cfg config.Telegram
	api *tgbotapi.BotAPI
}

func New(cfg config.Telegram) (*Bot, error) {
	if cfg.BotToken == "" {
		return nil, ErrBotNotConfigured
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	logrus.WithField("bot", api.Self.UserName).Info("telegram: bot autorizado")

	return &Bot{
		cfg: cfg,
		api: api,
	}, nil
}

func (b *Bot) SendHTML(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	return b.send(ctx, msg)
}

func (b *Bot) SendText(ctx context.Context, chatID int64, text string) error {
	return b.send(ctx, tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(ctx context.Context, msg tgbotapi.MessageConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := b.api.Send(msg); err != nil {
		logrus.WithError(err).WithField("chat_id", msg.ChatID).Error("telegram: failed to send message")
		return err
	}

	return nil
}

// Listen consome updates via long polling até o contexto ser cancelado
func (b *Bot) Listen(ctx context.Context, handler StartHandler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.PollingTimeout
	u.AllowedUpdates = []string{"message"}

	updates := b.api.GetUpdatesChan(u)

	logrus.Info("telegram: polling iniciado")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			logrus.Info("telegram: polling encerrado")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			cmd, ok := ToStartCommand(update.Message)
			if !ok {
				continue
			}

			reply := handler.HandleStart(ctx, cmd)
			if reply == "" {
				continue
			}

			if err := b.SendText(ctx, cmd.ChatID, reply); err != nil {
				logrus.WithError(err).WithField("chat_id", cmd.ChatID).Warn("telegram: failed to reply /start")
			}
		}
	}
}

// ToStartCommand extrai o /start de uma mensagem privada
func ToStartCommand(msg *tgbotapi.Message) (domain.StartCommand, bool) {
	if msg == nil || msg.Chat == nil || !msg.IsCommand() || msg.Command() != "start" {
		return domain.StartCommand{}, false
	}

	cmd := domain.StartCommand{
		ChatID:  msg.Chat.ID,
		Payload: strings.TrimSpace(msg.CommandArguments()),
	}

	if msg.From != nil {
		cmd.Username = msg.From.UserName
		cmd.LanguageCode = msg.From.LanguageCode
	}

	return cmd, true
}

// Disabled é usado quando o bot não está configurado
type Disabled struct{}

func (Disabled) SendHTML(context.Context, int64, string) error { return ErrBotNotConfigured }

func (Disabled) SendText(context.Context, int64, string) error { return ErrBotNotConfigured }
