package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brcargo/cotacao-panel/infrastructure/integrator/painel/painelclient"
	"github.com/brcargo/cotacao-panel/internal/config"
	"github.com/brcargo/cotacao-panel/internal/domain"
)

// stubClient responde só ao que o refresh usa; o resto do contrato fica no
// embutido nulo.
type stubClient struct {
	painelclient.Client

	dados *domain.DadosDashboard
	fonte domain.Fonte
	err   error

	chamadas int
}

func (s *stubClient) DadosDashboard() (*domain.DadosDashboard, domain.Fonte, error) {
	s.chamadas++
	if s.err != nil {
		return nil, "", s.err
	}
	return s.dados, s.fonte, nil
}

func newRefreshService(client painelclient.Client, sink DashboardSink) *DashboardRefreshService {
	cfg := &config.Config{}
	cfg.DashboardRefresh.CronSchedule = "*/5 * * * *"
	cfg.DashboardRefresh.Enabled = true

	return NewDashboardRefreshService(client, sink, cfg)
}

func TestRefreshDashboard_EntregaAoSink(t *testing.T) {
	client := &stubClient{
		dados: &domain.DadosDashboard{
			Metricas: domain.MetricasDashboard{Total: 6, Finalizadas: 2},
		},
		fonte: domain.FonteRemota,
	}

	var recebido domain.DadosDashboard
	var fonteRecebida domain.Fonte

	service := newRefreshService(client, func(dados domain.DadosDashboard, fonte domain.Fonte) {
		recebido = dados
		fonteRecebida = fonte
	})

	require.NoError(t, service.RefreshDashboard())

	assert.Equal(t, 1, client.chamadas)
	assert.Equal(t, 6, recebido.Metricas.Total)
	assert.Equal(t, domain.FonteRemota, fonteRecebida)
	assert.False(t, service.lastRefreshStartedAt.IsZero())
	assert.False(t, service.lastRefreshFinishedAt.IsZero())
}

func TestRefreshDashboard_PropagaErroDoCliente(t *testing.T) {
	client := &stubClient{err: errors.New("backend fora do ar")}

	chamouSink := false
	service := newRefreshService(client, func(domain.DadosDashboard, domain.Fonte) {
		chamouSink = true
	})

	err := service.RefreshDashboard()

	assert.Error(t, err)
	assert.False(t, chamouSink)
}

func TestRefreshDashboard_SemSink(t *testing.T) {
	client := &stubClient{
		dados: &domain.DadosDashboard{},
		fonte: domain.FonteFallback,
	}

	service := newRefreshService(client, nil)

	assert.NoError(t, service.RefreshDashboard())
}

func TestStart_DesabilitadoNaoAgenda(t *testing.T) {
	client := &stubClient{}

	cfg := &config.Config{}
	cfg.DashboardRefresh.Enabled = false

	service := NewDashboardRefreshService(client, nil, cfg)

	require.NoError(t, service.Start(context.Background()))
	assert.Zero(t, client.chamadas)
}

func TestStart_CronInvalida(t *testing.T) {
	client := &stubClient{}

	cfg := &config.Config{}
	cfg.DashboardRefresh.CronSchedule = "não é uma cron"
	cfg.DashboardRefresh.Enabled = true

	service := NewDashboardRefreshService(client, nil, cfg)

	assert.Error(t, service.Start(context.Background()))
}
