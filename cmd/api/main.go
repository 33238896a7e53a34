package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/telegram"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/api"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/advertising"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/notifying"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	facebookAuthRepo := repository.NewFacebookAuthRepository(pgConn)
	telegramRepo := repository.NewTelegramRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)

	metaIntegrator := meta.New(cfg.Meta, metaclient.NewClient(cfg.Meta))
	advertiser := advertising.NewService(cfg.Meta, facebookAuthRepo, metaIntegrator)

	var sender telegram.Sender = telegram.Disabled{}
	bot, err := telegram.New(cfg.Telegram)
	if err != nil {
		logrus.WithError(err).Warn("telegram: bot indisponível, envios desativados")
	} else {
		sender = bot
	}

	notifier := notifying.NewService(cfg.Telegram, telegramRepo, userRepo, advertiser, sender)

	if bot != nil && cfg.Telegram.PollingEnabled {
		go bot.Listen(ctx, notifier)
	}

	dailyBroadcastService := scheduler.NewDailyBroadcastService(notifier, cfg)
	if err := dailyBroadcastService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de envio diário de relatórios")
	}

	server := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Advertiser:    advertiser,
		Notifier:      notifier,
		CronJobs:      handler.CronJobServices{DailyBroadcast: dailyBroadcastService},
		DB:            pgConn,
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria e valida a conexão com o PostgreSQL
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
