package dashboarding

import (
	"math"
	"time"

	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/pkg/utils"
	"github.com/sirupsen/logrus"
)

// DiasEvolucao é a janela da série temporal do dashboard (hoje inclusive).
const DiasEvolucao = 30

var labelsStatus = map[string]string{
	domain.StatusSolicitada:      "Solicitadas",
	domain.StatusAceitaOperador:  "Aceitas",
	domain.StatusCotacaoEnviada:  "Enviadas",
	domain.StatusAceitaConsultor: "Aprovadas",
	domain.StatusFinalizada:      "Finalizadas",
	domain.StatusCancelada:       "Canceladas",
}

var labelsModalidade = map[string]string{
	domain.ModalidadeRodoviario: "Rodoviário",
	domain.ModalidadeMaritimo:   "Marítimo",
	domain.ModalidadeAereo:      "Aéreo",
}

// LabelStatus devolve o rótulo de exibição de um status. Tokens não
// reconhecidos passam inalterados.
func LabelStatus(status string) string {
	if label, ok := labelsStatus[status]; ok {
		return label
	}
	return status
}

// LabelModalidade devolve o rótulo de exibição de uma modalidade. Tokens não
// reconhecidos passam inalterados.
func LabelModalidade(modalidade string) string {
	if label, ok := labelsModalidade[modalidade]; ok {
		return label
	}
	return modalidade
}

// contagem acumula contadores preservando a ordem de primeira ocorrência das
// chaves, para que os gráficos tenham ordenação estável.
type contagem struct {
	valores map[string]int
	ordem   []string
}

func novaContagem() *contagem {
	return &contagem{valores: make(map[string]int)}
}

func (c *contagem) incrementar(chave string) {
	if _, existe := c.valores[chave]; !existe {
		c.ordem = append(c.ordem, chave)
	}
	c.valores[chave]++
}

// Processar deriva os agregados do dashboard de uma sequência de cotações.
// Status ausente assume "solicitada", modalidade ausente assume
// "brcargo_rodoviario" e operador ausente assume "Não atribuído", pois os
// gráficos indexam por esses tokens.
func Processar(cotacoes []domain.Cotacao, agora time.Time) domain.DadosDashboard {
	logrus.WithField("cotacoes", len(cotacoes)).Debug("Processando dados do dashboard")

	porStatus := novaContagem()
	porModalidade := novaContagem()
	porOperador := novaContagem()

	var valorTotal float64
	finalizadas := 0

	for _, cotacao := range cotacoes {
		status := cotacao.Status
		if status == "" {
			status = domain.StatusSolicitada
		}
		porStatus.incrementar(status)

		modalidade := cotacao.Modalidade
		if modalidade == "" {
			modalidade = domain.ModalidadeRodoviario
		}
		porModalidade.incrementar(modalidade)

		operador := domain.OperadorNaoAtribuido
		if cotacao.OperadorResponsavel != nil && *cotacao.OperadorResponsavel != "" {
			operador = *cotacao.OperadorResponsavel
		}
		porOperador.incrementar(operador)

		if temValorFrete(cotacao) && cotacao.Status == domain.StatusFinalizada {
			valorTotal += *cotacao.ValorFrete
			finalizadas++
		}
	}

	taxaConversao := 0
	if len(cotacoes) > 0 {
		taxaConversao = int(math.Round(float64(finalizadas) / float64(len(cotacoes)) * 100))
	}

	dados := domain.DadosDashboard{
		Metricas: domain.MetricasDashboard{
			Total:         len(cotacoes),
			Finalizadas:   finalizadas,
			Pendentes:     len(cotacoes) - finalizadas,
			TaxaConversao: taxaConversao,
			ValorTotal:    valorTotal,
		},
		Evolucao:             calcularEvolucaoTemporal(cotacoes, agora),
		ValoresPorModalidade: calcularValoresPorModalidade(cotacoes),
	}

	for _, status := range porStatus.ordem {
		dados.PorStatus = append(dados.PorStatus, domain.ContagemStatus{
			Status: status,
			Count:  porStatus.valores[status],
			Label:  LabelStatus(status),
		})
	}

	for _, modalidade := range porModalidade.ordem {
		dados.PorModalidade = append(dados.PorModalidade, domain.ContagemModalidade{
			Modalidade: modalidade,
			Count:      porModalidade.valores[modalidade],
			Label:      LabelModalidade(modalidade),
		})
	}

	for _, operador := range porOperador.ordem {
		dados.PorOperador = append(dados.PorOperador, domain.ContagemOperador{
			Operador:    operador,
			Count:       porOperador.valores[operador],
			Finalizadas: contarFinalizadasDoOperador(cotacoes, operador),
		})
	}

	return dados
}

// calcularEvolucaoTemporal produz exatamente 30 pontos, um por dia de
// calendário, do mais antigo para o mais recente; o último ponto é hoje.
// Cotações sem data de referência ficam fora da série.
func calcularEvolucaoTemporal(cotacoes []domain.Cotacao, agora time.Time) []domain.PontoEvolucao {
	evolucao := make([]domain.PontoEvolucao, 0, DiasEvolucao)

	for i := DiasEvolucao - 1; i >= 0; i-- {
		dia := agora.AddDate(0, 0, -i)

		ponto := domain.PontoEvolucao{Data: dia.Format(time.DateOnly)}
		for _, cotacao := range cotacoes {
			ref := cotacao.DataReferencia()
			if ref == nil || !utils.MesmoDia(*ref, dia) {
				continue
			}
			ponto.Total++
			if cotacao.Status == domain.StatusFinalizada {
				ponto.Finalizadas++
			}
		}

		evolucao = append(evolucao, ponto)
	}

	return evolucao
}

// calcularValoresPorModalidade calcula o valor médio de frete por modalidade,
// somente sobre cotações finalizadas com valor de frete. Modalidade sem
// entradas qualificadas não aparece.
func calcularValoresPorModalidade(cotacoes []domain.Cotacao) []domain.ValorModalidade {
	valores := make(map[string]float64)
	contadores := make(map[string]int)
	var ordem []string

	for _, cotacao := range cotacoes {
		if !temValorFrete(cotacao) || cotacao.Status != domain.StatusFinalizada {
			continue
		}

		modalidade := cotacao.Modalidade
		if modalidade == "" {
			modalidade = domain.ModalidadeRodoviario
		}

		if _, existe := valores[modalidade]; !existe {
			ordem = append(ordem, modalidade)
		}
		valores[modalidade] += *cotacao.ValorFrete
		contadores[modalidade]++
	}

	resultado := make([]domain.ValorModalidade, 0, len(ordem))
	for _, modalidade := range ordem {
		media := 0.0
		if contadores[modalidade] > 0 {
			media = valores[modalidade] / float64(contadores[modalidade])
		}
		resultado = append(resultado, domain.ValorModalidade{
			Modalidade: modalidade,
			ValorMedio: media,
			Label:      LabelModalidade(modalidade),
		})
	}

	return resultado
}

func contarFinalizadasDoOperador(cotacoes []domain.Cotacao, operador string) int {
	total := 0
	for _, cotacao := range cotacoes {
		if cotacao.OperadorResponsavel != nil &&
			*cotacao.OperadorResponsavel == operador &&
			cotacao.Status == domain.StatusFinalizada {
			total++
		}
	}
	return total
}

// temValorFrete reproduz o teste de presença do painel: nulo ou zero contam
// como ausente.
func temValorFrete(cotacao domain.Cotacao) bool {
	return cotacao.ValorFrete != nil && *cotacao.ValorFrete != 0
}
