// O binário panel sobe o lado cliente do painel: gateway HTTP contra o
// backend, armazenamento local de rascunhos, controller de navegação e o
// agendador de atualização do dashboard. O Document aqui é um adaptador de
// log usado em modo headless; a camada de apresentação real injeta o seu.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brcargo/cotacao-panel/infrastructure/integrator/painel/painelclient"
	"github.com/brcargo/cotacao-panel/internal/config"
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/internal/draftstore"
	"github.com/brcargo/cotacao-panel/internal/scheduler"
	"github.com/brcargo/cotacao-panel/internal/view"
	"github.com/brcargo/cotacao-panel/pkg/log"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rascunhos, err := draftstore.New(cfg.Rascunhos.Arquivo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o armazenamento local de rascunhos")
	}

	client := painelclient.NewClient(cfg, rascunhos)

	doc := &logDocument{}
	controller := view.New(doc, loaders(client), log.L)
	controller.Init()

	refresh := scheduler.NewDashboardRefreshService(client, func(dados domain.DadosDashboard, fonte domain.Fonte) {
		log.L.WithFields(log.Fields{
			"fonte":          fonte,
			"total_cotacoes": dados.Metricas.Total,
		}).Info("Dashboard atualizado")
	}, cfg)

	if err := refresh.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	}

	controller.ShowSection(view.SecaoDashboard)

	<-ctx.Done()
}

func loaders(client painelclient.Client) view.Loaders {
	return view.Loaders{
		Dashboard: func() {
			dados, fonte, err := client.DadosDashboard()
			if err != nil {
				log.L.WithError(err).Error("Erro ao carregar o dashboard")
				return
			}
			log.L.WithFields(log.Fields{
				"fonte":          fonte,
				"total_cotacoes": dados.Metricas.Total,
			}).Info("Dashboard carregado")
		},
		Empresas: func() {
			resp, fonte, err := client.ListarEmpresas(1, nil)
			if err != nil {
				log.L.WithError(err).Error("Erro ao carregar empresas")
				return
			}
			log.L.WithFields(log.Fields{
				"fonte": fonte,
				"total": resp.Total,
			}).Info("Empresas carregadas")
		},
		Cadastro: func() {},
		Cotacoes: func() {
			resp, err := client.ListarCotacoes(nil)
			if err != nil {
				log.L.WithError(err).Error("Erro ao carregar cotações")
				return
			}
			log.L.WithFields(log.Fields{
				"total": len(resp.Cotacoes),
			}).Info("Cotações carregadas")
		},
		Analytics: func() {
			_, fonte, err := client.AnalyticsGeral()
			if err != nil {
				log.L.WithError(err).Error("Erro ao carregar analytics")
				return
			}
			log.L.WithField("fonte", fonte).Info("Analytics carregado")
		},
	}
}

// logDocument registra as operações de documento em log. Sem modais nem
// rodapés em modo headless.
type logDocument struct{}

func (d *logDocument) Show(id string) {
	log.L.WithField("id", id).Debug("show")
}

func (d *logDocument) Hide(id string) {
	log.L.WithField("id", id).Debug("hide")
}

func (d *logDocument) SetText(id, texto string) {
	log.L.WithFields(log.Fields{"id": id, "texto": texto}).Debug("setText")
}

func (d *logDocument) SetDisabled(id string, desabilitado bool) {
	log.L.WithFields(log.Fields{"id": id, "desabilitado": desabilitado}).Debug("setDisabled")
}

func (d *logDocument) AddClass(id, classe string) {
	log.L.WithFields(log.Fields{"id": id, "classe": classe}).Debug("addClass")
}

func (d *logDocument) RemoveClass(id, classe string) {
	log.L.WithFields(log.Fields{"id": id, "classe": classe}).Debug("removeClass")
}

func (d *logDocument) RemoveOutsideClick(id string) {
	log.L.WithField("id", id).Debug("removeOutsideClick")
}

func (d *logDocument) ModalIDs() []string { return nil }

func (d *logDocument) FooterIDs() []string { return nil }
