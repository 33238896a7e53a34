package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const usersTable = "users"

var userColumns = []string{
	"id",
	"username",
	"password_hash",
	"is_active",
	"is_admin",
	"ad_account_id",
	"created_by_id",
	"telegram_chat_id",
	"telegram_username",
	"telegram_token",
	"telegram_daily_enabled",
	"locale",
	"created_at",
	"updated_at",
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, params domain.UserListParams) ([]*domain.User, int, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsActive,
		&user.IsAdmin,
		&user.AdAccountID,
		&user.CreatedByID,
		&user.TelegramChatID,
		&user.TelegramUsername,
		&user.TelegramToken,
		&user.TelegramDailyEnabled,
		&user.Locale,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return users, nil
}

// getUserWhere busca um único usuário pelo filtro, devolvendo nil quando não existe
func getUserWhere(ctx context.Context, q postgres.Queryer, where squirrel.Sqlizer) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	user, err := scanUser(q.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Locale == "" {
		user.Locale = domain.LocaleUA
	}

	query, args, err := squirrel.
		Insert(usersTable).
		Columns("id", "username", "password_hash", "is_active", "is_admin", "ad_account_id", "created_by_id", "locale").
		Values(user.ID, user.Username, user.PasswordHash, user.IsActive, user.IsAdmin, user.AdAccountID, user.CreatedByID, user.Locale).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	queryBuilder := squirrel.
		Update(usersTable).
		Set("is_active", user.IsActive).
		Set("ad_account_id", user.AdAccountID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID})

	if user.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", user.PasswordHash)
	}

	if user.Locale != "" {
		queryBuilder = queryBuilder.Set("locale", user.Locale)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, nil
	}
	return getUserWhere(ctx, r.conn, squirrel.Eq{"id": userID})
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return getUserWhere(ctx, r.conn, squirrel.Eq{"username": username})
}

func (r *userRepository) ListUsers(ctx context.Context, params domain.UserListParams) ([]*domain.User, int, error) {
	var where squirrel.Sqlizer = squirrel.Expr("1 = 1")
	if params.UsernameSearch != "" {
		where = squirrel.ILike{"username": "%" + params.UsernameSearch + "%"}
	}

	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar usuários: %w", err)
	}

	query, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		OrderBy("created_at DESC", "username ASC").
		Limit(uint64(params.PageSize)).
		Offset(uint64(params.Offset())).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar usuários: %w", err)
	}

	users, err := scanUsers(rows)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
