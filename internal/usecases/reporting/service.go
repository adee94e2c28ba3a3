// Package reporting produz os agregados de analytics do painel: relatório
// geral, ranking de empresas clientes e ranking de operadores.
package reporting

import (
	"sort"

	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/pkg/utils"
)

type Service interface {
	RelatorioGeral() (*domain.RelatorioGeral, error)
	RankingEmpresas() ([]domain.RankingEmpresa, error)
	MetricasEmpresa(empresaID int) (*domain.MetricasEmpresa, error)
	RankingUsuarios() ([]domain.RankingUsuario, error)
}

type service struct {
	cotacaoRepo repository.CotacaoRepository
	empresaRepo repository.EmpresaRepository
}

func NewService(cotacaoRepo repository.CotacaoRepository, empresaRepo repository.EmpresaRepository) Service {
	return &service{
		cotacaoRepo: cotacaoRepo,
		empresaRepo: empresaRepo,
	}
}

// RelatorioGeral consolida contagens por status, o valor total finalizado e
// o tempo médio de resposta em dias.
func (s *service) RelatorioGeral() (*domain.RelatorioGeral, error) {
	cotacoes, err := s.cotacaoRepo.ListCotacoes(repository.FiltroCotacoes{})
	if err != nil {
		return nil, err
	}

	relatorio := &domain.RelatorioGeral{
		CotacoesPorStatus: make(map[string]int),
	}

	var somaDias float64
	var finalizadasComDatas int

	for _, cotacao := range cotacoes {
		relatorio.CotacoesPorStatus[cotacao.Status]++

		if cotacao.Status != domain.StatusFinalizada {
			continue
		}

		relatorio.TotalCotacoesFinalizadas++
		if cotacao.ValorFrete != nil {
			relatorio.ValorTotalCotacoes += *cotacao.ValorFrete
		}

		inicio := cotacao.DataReferencia()
		if inicio != nil && cotacao.DataFinalizacao != nil {
			somaDias += cotacao.DataFinalizacao.Sub(*inicio).Hours() / 24
			finalizadasComDatas++
		}
	}

	if finalizadasComDatas > 0 {
		relatorio.TempoMedioResposta = utils.RoundWithTwoDecimalPlace(somaDias / float64(finalizadasComDatas))
	}

	return relatorio, nil
}

// RankingEmpresas agrupa as cotações pelas empresas clientes, casadas por
// CNPJ, em ordem decrescente de volume.
func (s *service) RankingEmpresas() ([]domain.RankingEmpresa, error) {
	cotacoes, err := s.cotacaoRepo.ListCotacoes(repository.FiltroCotacoes{})
	if err != nil {
		return nil, err
	}

	empresas, err := s.empresaRepo.ListAllEmpresas()
	if err != nil {
		return nil, err
	}

	porCNPJ := make(map[string]*domain.RankingEmpresa, len(empresas))
	for _, empresa := range empresas {
		porCNPJ[empresa.CNPJ] = &domain.RankingEmpresa{
			EmpresaID:   empresa.ID,
			RazaoSocial: empresa.RazaoSocial,
		}
	}

	for _, cotacao := range cotacoes {
		linha, ok := porCNPJ[cotacao.ClienteCNPJ]
		if !ok {
			continue
		}

		linha.Cotacoes++
		if cotacao.Status == domain.StatusFinalizada && cotacao.ValorFrete != nil {
			linha.ValorTotal += *cotacao.ValorFrete
		}
	}

	ranking := make([]domain.RankingEmpresa, 0, len(porCNPJ))
	for _, linha := range porCNPJ {
		if linha.Cotacoes > 0 {
			ranking = append(ranking, *linha)
		}
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Cotacoes != ranking[j].Cotacoes {
			return ranking[i].Cotacoes > ranking[j].Cotacoes
		}
		return ranking[i].EmpresaID < ranking[j].EmpresaID
	})

	return ranking, nil
}

func (s *service) MetricasEmpresa(empresaID int) (*domain.MetricasEmpresa, error) {
	empresa, err := s.empresaRepo.GetEmpresaByID(empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, nil
	}

	cotacoes, err := s.cotacaoRepo.ListCotacoes(repository.FiltroCotacoes{})
	if err != nil {
		return nil, err
	}

	metricas := &domain.MetricasEmpresa{EmpresaID: empresaID}
	for _, cotacao := range cotacoes {
		if cotacao.ClienteCNPJ != empresa.CNPJ {
			continue
		}

		metricas.Cotacoes++
		if cotacao.Status == domain.StatusFinalizada {
			metricas.Finalizadas++
			if cotacao.ValorFrete != nil {
				metricas.ValorTotal += *cotacao.ValorFrete
			}
		}
	}

	return metricas, nil
}

// RankingUsuarios agrupa por operador responsável, com o marcador de não
// atribuído excluído do ranking.
func (s *service) RankingUsuarios() ([]domain.RankingUsuario, error) {
	cotacoes, err := s.cotacaoRepo.ListCotacoes(repository.FiltroCotacoes{})
	if err != nil {
		return nil, err
	}

	porOperador := make(map[string]*domain.RankingUsuario)
	ordem := make([]string, 0)

	for _, cotacao := range cotacoes {
		if cotacao.OperadorResponsavel == nil || *cotacao.OperadorResponsavel == "" {
			continue
		}

		nome := *cotacao.OperadorResponsavel
		linha, ok := porOperador[nome]
		if !ok {
			linha = &domain.RankingUsuario{Operador: nome}
			porOperador[nome] = linha
			ordem = append(ordem, nome)
		}

		linha.Cotacoes++
		if cotacao.Status == domain.StatusFinalizada {
			linha.Finalizadas++
		}
	}

	ranking := make([]domain.RankingUsuario, 0, len(ordem))
	for _, nome := range ordem {
		ranking = append(ranking, *porOperador[nome])
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Cotacoes > ranking[j].Cotacoes
	})

	return ranking, nil
}
