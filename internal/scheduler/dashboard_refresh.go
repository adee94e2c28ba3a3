// Package scheduler contém os serviços de agendamento do painel
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/brcargo/cotacao-panel/infrastructure/integrator/painel/painelclient"
	"github.com/brcargo/cotacao-panel/internal/config"
	"github.com/brcargo/cotacao-panel/internal/domain"
)

// DashboardSink recebe cada snapshot agregado produzido pelo refresh.
type DashboardSink func(dados domain.DadosDashboard, fonte domain.Fonte)

type DashboardRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// DashboardRefreshService mantém o dashboard do painel atualizado em
// background, reprocessando as cotações no intervalo configurado.
type DashboardRefreshService struct {
	scheduler             *gocron.Scheduler
	client                painelclient.Client
	sink                  DashboardSink
	config                DashboardRefreshConfig
	refreshRunning        bool
	refreshMutex          sync.Mutex
	lastRefreshStartedAt  time.Time
	lastRefreshFinishedAt time.Time
}

func NewDashboardRefreshService(
	client painelclient.Client,
	sink DashboardSink,
	cfg *config.Config,
) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule:   cfg.DashboardRefresh.CronSchedule,
		RefreshEnabled: cfg.DashboardRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de refresh do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: scheduler,
		client:    client,
		sink:      sink,
		config:    refreshConfig,
	}
}

func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Cron de refresh do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de refresh do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDashboard(); err != nil {
			logrus.WithError(err).Error("Erro no refresh do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar refresh do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de refresh do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDashboard reprocessa o agregado e entrega ao sink. Execuções
// sobrepostas são descartadas.
func (s *DashboardRefreshService) RefreshDashboard() error {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if s.refreshRunning {
		logrus.Warn("Refresh do dashboard já está em execução")
		return nil
	}

	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	defer func() {
		s.refreshRunning = false
		s.lastRefreshFinishedAt = time.Now()
	}()

	dados, fonte, err := s.client.DadosDashboard()
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar os dados do dashboard")
		return err
	}

	if s.sink != nil {
		s.sink(*dados, fonte)
	}

	logrus.WithFields(logrus.Fields{
		"fonte":          string(fonte),
		"total_cotacoes": dados.Metricas.Total,
	}).Info("Dashboard atualizado")

	return nil
}
