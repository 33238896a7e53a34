package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                     TEXT PRIMARY KEY,
		username               TEXT NOT NULL UNIQUE,
		password_hash          TEXT NOT NULL,
		is_active              BOOLEAN NOT NULL DEFAULT TRUE,
		is_admin               BOOLEAN NOT NULL DEFAULT FALSE,
		ad_account_id          TEXT,
		created_by_id          TEXT REFERENCES users (id) ON DELETE SET NULL,
		telegram_chat_id       BIGINT UNIQUE,
		telegram_username      TEXT,
		telegram_token         TEXT UNIQUE,
		telegram_daily_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		locale                 TEXT NOT NULL DEFAULT 'ua',
		created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_daily ON users (telegram_daily_enabled) WHERE telegram_chat_id IS NOT NULL`,
	`CREATE TABLE IF NOT EXISTS facebook_auth (
		owner_id   TEXT PRIMARY KEY REFERENCES users (id) ON DELETE CASCADE,
		long_token TEXT NOT NULL,
		expires_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func main() {
	var adminUsername, adminPassword string

	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Cria o schema do banco e o administrador inicial",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), adminUsername, adminPassword)
		},
	}

	cmd.Flags().StringVar(&adminUsername, "admin-username", os.Getenv("ADMIN_USERNAME"), "usuário administrador inicial")
	cmd.Flags().StringVar(&adminPassword, "admin-password", os.Getenv("ADMIN_PASSWORD"), "senha do administrador inicial")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("migração falhou")
	}
}

func run(ctx context.Context, adminUsername, adminPassword string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	log.Setup(cfg.App.LogLevel)

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				logrus.WithField("statement", i).WithError(err).Error("Erro ao aplicar schema")
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logrus.Infof("Schema aplicado em %v", time.Since(startTime))

	if adminUsername == "" {
		logrus.Info("Nenhum administrador informado, seed ignorado")
		return nil
	}

	return seedAdmin(ctx, repository.NewUserRepository(conn), adminUsername, adminPassword)
}

// seedAdmin cria o administrador inicial quando ele ainda não existe
func seedAdmin(ctx context.Context, users repository.UserRepository, username, password string) error {
	existing, err := users.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		logrus.WithField("username", username).Info("Administrador já existe")
		return nil
	}

	if password == "" {
		return errMissingPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin, err := users.CreateUser(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
		IsAdmin:      true,
	})
	if err != nil {
		return err
	}

	logrus.WithField("user_id", admin.ID).Info("Administrador criado")
	return nil
}
