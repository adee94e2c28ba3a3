// Package quoting implementa o ciclo de vida das cotações do lado do
// servidor. A legalidade das transições de status é decidida aqui; o painel
// apenas reflete o resultado.
package quoting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/internal/domain"
	"github.com/brcargo/cotacao-panel/pkg/utils"
)

var (
	ErrCotacaoNaoEncontrada = errors.New("cotação não encontrada")
	ErrOperadorObrigatorio  = errors.New("operação exige um operador atribuído")
)

// ErrTransicao indica uma transição de status não permitida.
type ErrTransicao struct {
	De   string
	Para string
}

func (e *ErrTransicao) Error() string {
	return fmt.Sprintf("transição de %q para %q não permitida", e.De, e.Para)
}

// statusExigido mapeia cada transição ao status de origem obrigatório.
var statusExigido = map[string]string{
	domain.StatusAceitaOperador:  domain.StatusSolicitada,
	domain.StatusCotacaoEnviada:  domain.StatusAceitaOperador,
	domain.StatusAceitaConsultor: domain.StatusCotacaoEnviada,
	domain.StatusNegadaConsultor: domain.StatusCotacaoEnviada,
	domain.StatusFinalizada:      domain.StatusAceitaConsultor,
}

type Service interface {
	ListCotacoes(filtro repository.FiltroCotacoes) ([]domain.Cotacao, error)
	GetCotacao(id int) (*domain.Cotacao, error)
	CreateCotacao(cotacao *domain.Cotacao) (*domain.Cotacao, error)
	UpdateCotacao(id int, cotacao domain.Cotacao) (*domain.Cotacao, error)
	AceitarOperador(id int, operador *domain.Usuario) (*domain.Cotacao, error)
	NegarOperador(id int, motivo string) (*domain.Cotacao, error)
	EnviarResposta(id int, resposta domain.RespostaCotacaoRequest) (*domain.Cotacao, error)
	AceitarConsultor(id int, observacoes string) (*domain.Cotacao, error)
	NegarConsultor(id int, observacoes string) (*domain.Cotacao, error)
	Finalizar(id int, observacoes string) (*domain.Cotacao, error)
	Reatribuir(ctx context.Context, id int, req domain.ReatribuirRequest) (*domain.Cotacao, error)
	ListConversas(cotacaoID, operadorID int) ([]domain.Mensagem, error)
	SalvarMensagem(cotacaoID, operadorID int, autor, texto string) (*domain.Mensagem, error)
	SalvarRascunho(cotacaoID int, rascunho domain.Rascunho) error
	GetRascunho(cotacaoID int) (*domain.Rascunho, error)
}

type service struct {
	cotacaoRepo  repository.CotacaoRepository
	usuarioRepo  repository.UsuarioRepository
	rascunhoRepo repository.RascunhoRepository
	mensagemRepo repository.MensagemRepository
	agora        func() time.Time
}

func NewService(
	cotacaoRepo repository.CotacaoRepository,
	usuarioRepo repository.UsuarioRepository,
	rascunhoRepo repository.RascunhoRepository,
	mensagemRepo repository.MensagemRepository,
) Service {
	return &service{
		cotacaoRepo:  cotacaoRepo,
		usuarioRepo:  usuarioRepo,
		rascunhoRepo: rascunhoRepo,
		mensagemRepo: mensagemRepo,
		agora:        time.Now,
	}
}

func (s *service) ListCotacoes(filtro repository.FiltroCotacoes) ([]domain.Cotacao, error) {
	return s.cotacaoRepo.ListCotacoes(filtro)
}

func (s *service) GetCotacao(id int) (*domain.Cotacao, error) {
	cotacao, err := s.cotacaoRepo.GetCotacaoByID(id)
	if err != nil {
		return nil, err
	}
	if cotacao == nil {
		return nil, ErrCotacaoNaoEncontrada
	}
	return cotacao, nil
}

func (s *service) CreateCotacao(cotacao *domain.Cotacao) (*domain.Cotacao, error) {
	cotacao.Status = domain.StatusSolicitada
	if cotacao.Modalidade == "" {
		cotacao.Modalidade = domain.ModalidadeRodoviario
	}

	if cotacao.NumeroCotacao == "" {
		numero, err := utils.GerarNumeroCotacao(s.agora())
		if err != nil {
			return nil, err
		}
		cotacao.NumeroCotacao = numero
	}

	return s.cotacaoRepo.CreateCotacao(cotacao)
}

func (s *service) UpdateCotacao(id int, cotacao domain.Cotacao) (*domain.Cotacao, error) {
	atual, err := s.GetCotacao(id)
	if err != nil {
		return nil, err
	}

	cotacao.ID = atual.ID
	if err := s.cotacaoRepo.UpdateCotacao(&cotacao); err != nil {
		return nil, err
	}

	return s.GetCotacao(id)
}

// transicionar valida o status de origem e aplica a mudança com os campos
// extras da transição.
func (s *service) transicionar(id int, novoStatus string, extras map[string]interface{}) (*domain.Cotacao, error) {
	cotacao, err := s.GetCotacao(id)
	if err != nil {
		return nil, err
	}

	if exigido, ok := statusExigido[novoStatus]; ok && cotacao.Status != exigido {
		return nil, &ErrTransicao{De: cotacao.Status, Para: novoStatus}
	}

	if err := s.cotacaoRepo.UpdateStatus(id, novoStatus, extras); err != nil {
		return nil, err
	}

	return s.GetCotacao(id)
}

func (s *service) AceitarOperador(id int, operador *domain.Usuario) (*domain.Cotacao, error) {
	if operador == nil {
		return nil, ErrOperadorObrigatorio
	}

	return s.transicionar(id, domain.StatusAceitaOperador, map[string]interface{}{
		"operador_id":          operador.ID,
		"operador_responsavel": operador.Nome,
	})
}

func (s *service) NegarOperador(id int, motivo string) (*domain.Cotacao, error) {
	if motivo == "" {
		motivo = "Cotação negada pelo operador"
	}

	// Negativa do operador cancela a cotação, de qualquer status ativo.
	return s.transicionar(id, domain.StatusCancelada, map[string]interface{}{
		"observacoes": motivo,
	})
}

func (s *service) EnviarResposta(id int, resposta domain.RespostaCotacaoRequest) (*domain.Cotacao, error) {
	extras := map[string]interface{}{
		"valor_frete": resposta.ValorFrete,
		"observacoes": resposta.ObservacoesGerais,
	}
	if resposta.PrazoEntrega != 0 {
		extras["prazo_entrega"] = resposta.PrazoEntrega
	}

	return s.transicionar(id, domain.StatusCotacaoEnviada, extras)
}

func (s *service) AceitarConsultor(id int, observacoes string) (*domain.Cotacao, error) {
	extras := map[string]interface{}{}
	if observacoes != "" {
		extras["observacoes"] = observacoes
	}

	return s.transicionar(id, domain.StatusAceitaConsultor, extras)
}

func (s *service) NegarConsultor(id int, observacoes string) (*domain.Cotacao, error) {
	extras := map[string]interface{}{}
	if observacoes != "" {
		extras["observacoes"] = observacoes
	}

	return s.transicionar(id, domain.StatusNegadaConsultor, extras)
}

func (s *service) Finalizar(id int, observacoes string) (*domain.Cotacao, error) {
	agora := s.agora()
	extras := map[string]interface{}{
		"data_finalizacao": agora,
	}
	if observacoes != "" {
		extras["observacoes"] = observacoes
	}

	return s.transicionar(id, domain.StatusFinalizada, extras)
}

// Reatribuir transfere a cotação a outro operador, levando junto o histórico
// de mensagens informado pelo painel.
func (s *service) Reatribuir(ctx context.Context, id int, req domain.ReatribuirRequest) (*domain.Cotacao, error) {
	if req.NovoOperadorID == 0 {
		return nil, ErrOperadorObrigatorio
	}

	if _, err := s.GetCotacao(id); err != nil {
		return nil, err
	}

	operador, err := s.usuarioRepo.GetUsuarioByID(req.NovoOperadorID)
	if err != nil {
		return nil, err
	}
	if operador == nil {
		return nil, ErrOperadorObrigatorio
	}

	agora := s.agora()
	mensagens := make([]domain.Mensagem, 0, len(req.Mensagens))
	for _, texto := range req.Mensagens {
		mensagens = append(mensagens, domain.Mensagem{
			Autor:     "sistema",
			Mensagem:  texto,
			Timestamp: agora,
		})
	}

	if err := s.cotacaoRepo.Reatribuir(ctx, id, operador.ID, operador.Nome, mensagens); err != nil {
		return nil, err
	}

	return s.GetCotacao(id)
}

func (s *service) ListConversas(cotacaoID, operadorID int) ([]domain.Mensagem, error) {
	return s.mensagemRepo.ListMensagens(cotacaoID, operadorID)
}

func (s *service) SalvarMensagem(cotacaoID, operadorID int, autor, texto string) (*domain.Mensagem, error) {
	if _, err := s.GetCotacao(cotacaoID); err != nil {
		return nil, err
	}

	return s.mensagemRepo.CreateMensagem(&domain.Mensagem{
		CotacaoID:  cotacaoID,
		OperadorID: operadorID,
		Autor:      autor,
		Mensagem:   texto,
		Timestamp:  s.agora(),
	})
}

func (s *service) SalvarRascunho(cotacaoID int, rascunho domain.Rascunho) error {
	if _, err := s.GetCotacao(cotacaoID); err != nil {
		return err
	}

	rascunho.CotacaoID = cotacaoID
	if rascunho.Timestamp.IsZero() {
		rascunho.Timestamp = s.agora()
	}

	return s.rascunhoRepo.SaveRascunho(&rascunho)
}

func (s *service) GetRascunho(cotacaoID int) (*domain.Rascunho, error) {
	return s.rascunhoRepo.GetRascunhoByCotacaoID(cotacaoID)
}
