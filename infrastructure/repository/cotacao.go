package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/brcargo/cotacao-panel/infrastructure/database/postgres"
	"github.com/brcargo/cotacao-panel/internal/domain"
)

const cotacoesTable = "cotacoes"

const cotacaoColumns = "id, numero_cotacao, status, modalidade, operador_responsavel, " +
	"operador_id, consultor_id, cliente_nome, cliente_cnpj, origem, destino, " +
	"valor_frete, prazo_entrega, observacoes, data_criacao, created_at, data_finalizacao"

// FiltroCotacoes restringe a listagem. Campos vazios não filtram.
type FiltroCotacoes struct {
	Status     string
	Modalidade string
	OperadorID int
	DataInicio *time.Time
	DataFim    *time.Time
}

type CotacaoRepository interface {
	ListCotacoes(filtro FiltroCotacoes) ([]domain.Cotacao, error)
	GetCotacaoByID(id int) (*domain.Cotacao, error)
	CreateCotacao(cotacao *domain.Cotacao) (*domain.Cotacao, error)
	UpdateCotacao(cotacao *domain.Cotacao) error
	UpdateStatus(id int, status string, extras map[string]interface{}) error
	Reatribuir(ctx context.Context, id, novoOperadorID int, operadorNome string, mensagens []domain.Mensagem) error
}

type cotacaoRepository struct {
	conn *postgres.Connection
}

func NewCotacaoRepository(conn *postgres.Connection) CotacaoRepository {
	return &cotacaoRepository{
		conn: conn,
	}
}

func (r *cotacaoRepository) ListCotacoes(filtro FiltroCotacoes) ([]domain.Cotacao, error) {
	queryBuilder := squirrel.
		Select(cotacaoColumns).
		From(cotacoesTable).
		OrderBy("data_criacao DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filtro.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filtro.Status})
	}

	if filtro.Modalidade != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"modalidade": filtro.Modalidade})
	}

	if filtro.OperadorID != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"operador_id": filtro.OperadorID})
	}

	if filtro.DataInicio != nil && !filtro.DataInicio.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"data_criacao": *filtro.DataInicio})
	}

	if filtro.DataFim != nil && !filtro.DataFim.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.Lt{"data_criacao": filtro.DataFim.AddDate(0, 0, 1)})
	}

	cotacoesSQL, cotacoesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(cotacoesSQL, cotacoesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cotacoes := make([]domain.Cotacao, 0)
	for rows.Next() {
		cotacao, err := deserializeCotacao(rows)
		if err != nil {
			return nil, err
		}
		cotacoes = append(cotacoes, *cotacao)
	}

	return cotacoes, rows.Err()
}

func (r *cotacaoRepository) GetCotacaoByID(id int) (*domain.Cotacao, error) {
	cotacaoSQL, cotacaoArgs, err := squirrel.
		Select(cotacaoColumns).
		From(cotacoesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(cotacaoSQL, cotacaoArgs...)

	cotacao, err := deserializeCotacao(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return cotacao, nil
}

func (r *cotacaoRepository) CreateCotacao(cotacao *domain.Cotacao) (*domain.Cotacao, error) {
	agora := time.Now()
	if cotacao.DataCriacao == nil {
		cotacao.DataCriacao = &agora
	}
	cotacao.CreatedAt = &agora

	cotacaoSQL, cotacaoArgs, err := squirrel.
		Insert(cotacoesTable).
		Columns("numero_cotacao", "status", "modalidade", "operador_responsavel",
			"operador_id", "consultor_id", "cliente_nome", "cliente_cnpj",
			"origem", "destino", "valor_frete", "prazo_entrega", "observacoes",
			"data_criacao", "created_at").
		Values(cotacao.NumeroCotacao, cotacao.Status, cotacao.Modalidade,
			cotacao.OperadorResponsavel, cotacao.OperadorID, cotacao.ConsultorID,
			cotacao.ClienteNome, cotacao.ClienteCNPJ, cotacao.Origem,
			cotacao.Destino, cotacao.ValorFrete, cotacao.PrazoEntrega,
			cotacao.Observacoes, cotacao.DataCriacao, cotacao.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRow(cotacaoSQL, cotacaoArgs...).Scan(&cotacao.ID); err != nil {
		return nil, err
	}

	return cotacao, nil
}

func (r *cotacaoRepository) UpdateCotacao(cotacao *domain.Cotacao) error {
	queryBuilder := squirrel.
		Update(cotacoesTable).
		Set("modalidade", cotacao.Modalidade).
		Set("cliente_nome", cotacao.ClienteNome).
		Set("cliente_cnpj", cotacao.ClienteCNPJ).
		Set("origem", cotacao.Origem).
		Set("destino", cotacao.Destino).
		Set("observacoes", cotacao.Observacoes).
		Where(squirrel.Eq{"id": cotacao.ID}).
		PlaceholderFormat(squirrel.Dollar)

	cotacaoSQL, cotacaoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(cotacaoSQL, cotacaoArgs...)
	return err
}

// UpdateStatus aplica uma transição de status junto com os campos que a
// acompanham (operador, valor do frete, data de finalização).
func (r *cotacaoRepository) UpdateStatus(id int, status string, extras map[string]interface{}) error {
	queryBuilder := squirrel.
		Update(cotacoesTable).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	for coluna, valor := range extras {
		queryBuilder = queryBuilder.Set(coluna, valor)
	}

	cotacaoSQL, cotacaoArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(cotacaoSQL, cotacaoArgs...)
	return err
}

// Reatribuir troca o operador responsável e carrega o histórico de mensagens
// para o novo operador, numa única transação.
func (r *cotacaoRepository) Reatribuir(ctx context.Context, id, novoOperadorID int, operadorNome string, mensagens []domain.Mensagem) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		cotacaoSQL, cotacaoArgs, err := squirrel.
			Update(cotacoesTable).
			Set("operador_id", novoOperadorID).
			Set("operador_responsavel", operadorNome).
			Set("status", domain.StatusAceitaOperador).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(cotacaoSQL, cotacaoArgs...); err != nil {
			return err
		}

		for _, mensagem := range mensagens {
			mensagemSQL, mensagemArgs, err := squirrel.
				Insert(mensagensTable).
				Columns("cotacao_id", "operador_id", "autor", "mensagem", "timestamp").
				Values(id, novoOperadorID, mensagem.Autor, mensagem.Mensagem, mensagem.Timestamp).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			if _, err := tx.Exec(mensagemSQL, mensagemArgs...); err != nil {
				return err
			}
		}

		return nil
	})
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func deserializeCotacao(row rowScanner) (*domain.Cotacao, error) {
	cotacao := &domain.Cotacao{}

	var (
		operadorResponsavel sql.NullString
		operadorID          sql.NullInt64
		consultorID         sql.NullInt64
		clienteCNPJ         sql.NullString
		origem              sql.NullString
		destino             sql.NullString
		valorFrete          sql.NullFloat64
		prazoEntrega        sql.NullInt64
		observacoes         sql.NullString
		dataCriacao         sql.NullTime
		createdAt           sql.NullTime
		dataFinalizacao     sql.NullTime
	)

	if err := row.Scan(
		&cotacao.ID,
		&cotacao.NumeroCotacao,
		&cotacao.Status,
		&cotacao.Modalidade,
		&operadorResponsavel,
		&operadorID,
		&consultorID,
		&cotacao.ClienteNome,
		&clienteCNPJ,
		&origem,
		&destino,
		&valorFrete,
		&prazoEntrega,
		&observacoes,
		&dataCriacao,
		&createdAt,
		&dataFinalizacao,
	); err != nil {
		return nil, err
	}

	if operadorResponsavel.Valid {
		cotacao.OperadorResponsavel = &operadorResponsavel.String
	}
	if operadorID.Valid {
		id := int(operadorID.Int64)
		cotacao.OperadorID = &id
	}
	if consultorID.Valid {
		cotacao.ConsultorID = int(consultorID.Int64)
	}
	cotacao.ClienteCNPJ = clienteCNPJ.String
	cotacao.Origem = origem.String
	cotacao.Destino = destino.String
	if valorFrete.Valid {
		cotacao.ValorFrete = &valorFrete.Float64
	}
	if prazoEntrega.Valid {
		prazo := int(prazoEntrega.Int64)
		cotacao.PrazoEntrega = &prazo
	}
	cotacao.Observacoes = observacoes.String
	if dataCriacao.Valid {
		cotacao.DataCriacao = &dataCriacao.Time
	}
	if createdAt.Valid {
		cotacao.CreatedAt = &createdAt.Time
	}
	if dataFinalizacao.Valid {
		cotacao.DataFinalizacao = &dataFinalizacao.Time
	}

	return cotacao, nil
}
