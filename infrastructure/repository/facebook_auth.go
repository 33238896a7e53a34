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

const facebookAuthTable = "facebook_auth"

type FacebookAuthRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (*domain.FacebookAuth, error)
	Upsert(ctx context.Context, auth *domain.FacebookAuth) error
}

type facebookAuthRepository struct {
	conn *postgres.Connection
}

func NewFacebookAuthRepository(conn *postgres.Connection) FacebookAuthRepository {
	return &facebookAuthRepository{
		conn: conn,
	}
}

func (r *facebookAuthRepository) GetByOwner(ctx context.Context, ownerID string) (*domain.FacebookAuth, error) {
	query, args, err := squirrel.
		Select("owner_id", "long_token", "expires_at", "created_at", "updated_at").
		From(facebookAuthTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var auth domain.FacebookAuth
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&auth.OwnerID,
		&auth.LongToken,
		&auth.ExpiresAt,
		&auth.CreatedAt,
		&auth.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar token do facebook: %w", err)
	}

	return &auth, nil
}

// Upsert grava o token de longa duração, substituindo o anterior do mesmo dono
func (r *facebookAuthRepository) Upsert(ctx context.Context, auth *domain.FacebookAuth) error {
	now := time.Now()

	query, args, err := squirrel.
		Insert(facebookAuthTable).
		Columns("owner_id", "long_token", "expires_at", "created_at", "updated_at").
		Values(auth.OwnerID, auth.LongToken, auth.ExpiresAt, now, now).
		Suffix("ON CONFLICT (owner_id) DO UPDATE SET long_token = EXCLUDED.long_token, expires_at = EXCLUDED.expires_at, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar token do facebook: %w", err)
	}

	auth.UpdatedAt = now
	return nil
}
