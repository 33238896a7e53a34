package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/notifying"
)

// DailyBroadcastConfig representa a configuração do envio diário de relatórios
type DailyBroadcastConfig struct {
	CronSchedule      string
	Period            domain.ReportPeriod
	MaxConcurrentJobs int
	Enabled           bool
}

// DailyBroadcastService agenda e executa o envio diário dos relatórios pelo Telegram
type DailyBroadcastService struct {
	scheduler         *gocron.Scheduler
	config            DailyBroadcastConfig
	notifier          notifying.Notifier
	runRunning        bool
	runMutex          sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	lastRunSent       int
	lastRunSkipped    int
}

func NewDailyBroadcastService(notifier notifying.Notifier, appConfig *config.Config) *DailyBroadcastService {
	broadcastConfig := DailyBroadcastConfig{
		CronSchedule:      appConfig.DailyBroadcast.CronSchedule,
		Period:            domain.ParseReportPeriod(appConfig.DailyBroadcast.Period),
		MaxConcurrentJobs: appConfig.DailyBroadcast.MaxConcurrentJobs,
		Enabled:           appConfig.DailyBroadcast.Enabled,
	}

	if broadcastConfig.MaxConcurrentJobs <= 0 {
		broadcastConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       broadcastConfig.CronSchedule,
		"period":              broadcastConfig.Period,
		"max_concurrent_jobs": broadcastConfig.MaxConcurrentJobs,
		"enabled":             broadcastConfig.Enabled,
	}).Info("Configuração do envio diário de relatórios carregada")

	return &DailyBroadcastService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    broadcastConfig,
		notifier:  notifier,
	}
}

// Start inicia o agendador
func (s *DailyBroadcastService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Envio diário de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do envio diário de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar envio diário de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do envio diário de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// run envia o relatório para todos os usuários com envio diário ligado
func (s *DailyBroadcastService) run(ctx context.Context) {
	if !s.claimRun() {
		logrus.Info("Envio diário de relatórios já em andamento, ignorando")
		return
	}
	s.execute(ctx)
}

// claimRun marca o envio como em andamento; falso se já havia um rodando
func (s *DailyBroadcastService) claimRun() bool {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	if s.runRunning {
		return false
	}
	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	return true
}

// execute roda o envio já reservado por claimRun e libera a vaga ao final
func (s *DailyBroadcastService) execute(ctx context.Context) {
	defer func() {
		s.runMutex.Lock()
		s.runRunning = false
		s.lastRunFinishedAt = time.Now()
		s.runMutex.Unlock()
	}()

	recipients, err := s.notifier.DailyRecipients(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar destinatários do envio diário")
		return
	}

	logrus.WithField("recipients", len(recipients)).Info("Enviando relatórios diários")

	sent, skipped := s.sendAll(ctx, recipients)

	s.runMutex.Lock()
	s.lastRunSent = sent
	s.lastRunSkipped = skipped
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"sent":    sent,
		"skipped": skipped,
	}).Info("Envio diário de relatórios concluído")
}

func (s *DailyBroadcastService) sendAll(ctx context.Context, recipients []*domain.User) (int, int) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg   sync.WaitGroup
		sent atomic.Int64
	)

	for _, user := range recipients {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(u *domain.User) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			ok, err := s.notifier.SendReport(ctx, u, s.config.Period)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": u.ID,
					"error":   err.Error(),
				}).Error("Erro ao enviar relatório diário")
				return
			}

			if !ok {
				logrus.WithField("user_id", u.ID).Warn("Relatório diário ignorado para o usuário")
				return
			}

			sent.Add(1)
			logrus.WithField("user_id", u.ID).Info("Relatório diário enviado")
		}(user)
	}

	wg.Wait()

	return int(sent.Load()), len(recipients) - int(sent.Load())
}

// TriggerManualRun dispara o envio fora do horário agendado
func (s *DailyBroadcastService) TriggerManualRun(ctx context.Context) bool {
	if !s.claimRun() {
		logrus.Info("Envio diário de relatórios já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando envio manual dos relatórios diários")
	go s.execute(context.WithoutCancel(ctx))

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DailyBroadcastService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":              s.config.Enabled,
		"cron":                 s.config.CronSchedule,
		"period":               s.config.Period,
		"max_concurrent_jobs":  s.config.MaxConcurrentJobs,
		"running":              s.runRunning,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
		"last_run_sent":        s.lastRunSent,
		"last_run_skipped":     s.lastRunSkipped,
	}
}
