package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// TelegramRepository guarda o vínculo entre usuários e chats do bot
type TelegramRepository interface {
	SetRegistrationToken(ctx context.Context, userID, token string) error
	GetUserByRegistrationToken(ctx context.Context, token string) (*domain.User, error)
	GetUserByChatID(ctx context.Context, chatID int64) (*domain.User, error)
	BindChat(ctx context.Context, userID string, chatID int64, username *string, locale domain.Locale) error
	ClearRegistrationToken(ctx context.Context, userID string) error
	Logout(ctx context.Context, userID string) error
	SetDaily(ctx context.Context, userID string, enabled bool) error
	ListDailyRecipients(ctx context.Context) ([]*domain.User, error)
}

type telegramRepository struct {
	conn *postgres.Connection
}

func NewTelegramRepository(conn *postgres.Connection) TelegramRepository {
	return &telegramRepository{
		conn: conn,
	}
}

func (r *telegramRepository) exec(ctx context.Context, q postgres.Queryer, builder squirrel.UpdateBuilder) error {
	query, args, err := builder.
		Set("updated_at", time.Now()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar dados do telegram: %w", err)
	}

	return nil
}

func (r *telegramRepository) SetRegistrationToken(ctx context.Context, userID, token string) error {
	return r.exec(ctx, r.conn, squirrel.
		Update(usersTable).
		Set("telegram_token", token).
		Where(squirrel.Eq{"id": userID}))
}

func (r *telegramRepository) GetUserByRegistrationToken(ctx context.Context, token string) (*domain.User, error) {
	return getUserWhere(ctx, r.conn, squirrel.Eq{"telegram_token": token})
}

func (r *telegramRepository) GetUserByChatID(ctx context.Context, chatID int64) (*domain.User, error) {
	return getUserWhere(ctx, r.conn, squirrel.Eq{"telegram_chat_id": chatID})
}

// BindChat associa o chat ao usuário em uma única transação, desconectando
// qualquer outro usuário que estivesse usando o mesmo chat. O idioma só é
// gravado quando informado.
func (r *telegramRepository) BindChat(ctx context.Context, userID string, chatID int64, username *string, locale domain.Locale) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		err := r.exec(ctx, tx, squirrel.
			Update(usersTable).
			Set("telegram_chat_id", nil).
			Set("telegram_username", nil).
			Set("telegram_daily_enabled", false).
			Where(squirrel.And{
				squirrel.Eq{"telegram_chat_id": chatID},
				squirrel.NotEq{"id": userID},
			}))
		if err != nil {
			return err
		}

		bind := squirrel.
			Update(usersTable).
			Set("telegram_chat_id", chatID).
			Set("telegram_username", username).
			Set("telegram_token", nil).
			Where(squirrel.Eq{"id": userID})
		if locale != "" {
			bind = bind.Set("locale", string(locale))
		}

		return r.exec(ctx, tx, bind)
	})
}

func (r *telegramRepository) ClearRegistrationToken(ctx context.Context, userID string) error {
	return r.exec(ctx, r.conn, squirrel.
		Update(usersTable).
		Set("telegram_token", nil).
		Where(squirrel.Eq{"id": userID}))
}

func (r *telegramRepository) Logout(ctx context.Context, userID string) error {
	return r.exec(ctx, r.conn, squirrel.
		Update(usersTable).
		Set("telegram_chat_id", nil).
		Set("telegram_username", nil).
		Set("telegram_token", nil).
		Set("telegram_daily_enabled", false).
		Where(squirrel.Eq{"id": userID}))
}

func (r *telegramRepository) SetDaily(ctx context.Context, userID string, enabled bool) error {
	return r.exec(ctx, r.conn, squirrel.
		Update(usersTable).
		Set("telegram_daily_enabled", enabled).
		Where(squirrel.Eq{"id": userID}))
}

// ListDailyRecipients devolve os usuários ativos com chat vinculado e relatório diário ligado
func (r *telegramRepository) ListDailyRecipients(ctx context.Context) ([]*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.And{
			squirrel.Eq{"telegram_daily_enabled": true},
			squirrel.Eq{"is_active": true},
			squirrel.NotEq{"telegram_chat_id": nil},
		}).
		OrderBy("username ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar destinatários: %w", err)
	}

	return scanUsers(rows)
}
