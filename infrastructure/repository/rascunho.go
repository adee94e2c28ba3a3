package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/brcargo/cotacao-panel/infrastructure/database/postgres"
	"github.com/brcargo/cotacao-panel/internal/domain"
)

const rascunhosTable = "rascunhos"

type RascunhoRepository interface {
	SaveRascunho(rascunho *domain.Rascunho) error
	GetRascunhoByCotacaoID(cotacaoID int) (*domain.Rascunho, error)
	DeleteRascunho(cotacaoID int) error
}

type rascunhoRepository struct {
	conn *postgres.Connection
}

func NewRascunhoRepository(conn *postgres.Connection) RascunhoRepository {
	return &rascunhoRepository{
		conn: conn,
	}
}

// SaveRascunho grava por upsert: cada cotação tem no máximo um rascunho, o
// mais recente vence.
func (r *rascunhoRepository) SaveRascunho(rascunho *domain.Rascunho) error {
	rascunhoSQL, rascunhoArgs, err := squirrel.
		Insert(rascunhosTable).
		Columns("cotacao_id", "valor_frete", "prazo_entrega", "taxa_coleta",
			"taxa_entrega", "valor_seguro", "observacoes", "empresa_prestadora", "timestamp").
		Values(rascunho.CotacaoID, rascunho.ValorFrete, rascunho.PrazoEntrega,
			rascunho.TaxaColeta, rascunho.TaxaEntrega, rascunho.ValorSeguro,
			rascunho.Observacoes, rascunho.EmpresaPrestadora, rascunho.Timestamp).
		Suffix("ON CONFLICT (cotacao_id) DO UPDATE SET " +
			"valor_frete = EXCLUDED.valor_frete, " +
			"prazo_entrega = EXCLUDED.prazo_entrega, " +
			"taxa_coleta = EXCLUDED.taxa_coleta, " +
			"taxa_entrega = EXCLUDED.taxa_entrega, " +
			"valor_seguro = EXCLUDED.valor_seguro, " +
			"observacoes = EXCLUDED.observacoes, " +
			"empresa_prestadora = EXCLUDED.empresa_prestadora, " +
			"timestamp = EXCLUDED.timestamp").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(rascunhoSQL, rascunhoArgs...)
	return err
}

func (r *rascunhoRepository) GetRascunhoByCotacaoID(cotacaoID int) (*domain.Rascunho, error) {
	rascunhoSQL, rascunhoArgs, err := squirrel.
		Select("cotacao_id, valor_frete, prazo_entrega, taxa_coleta, taxa_entrega, "+
			"valor_seguro, observacoes, empresa_prestadora, timestamp").
		From(rascunhosTable).
		Where(squirrel.Eq{"cotacao_id": cotacaoID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rascunho := &domain.Rascunho{}
	err = r.conn.QueryRow(rascunhoSQL, rascunhoArgs...).Scan(
		&rascunho.CotacaoID,
		&rascunho.ValorFrete,
		&rascunho.PrazoEntrega,
		&rascunho.TaxaColeta,
		&rascunho.TaxaEntrega,
		&rascunho.ValorSeguro,
		&rascunho.Observacoes,
		&rascunho.EmpresaPrestadora,
		&rascunho.Timestamp,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return rascunho, nil
}

func (r *rascunhoRepository) DeleteRascunho(cotacaoID int) error {
	rascunhoSQL, rascunhoArgs, err := squirrel.
		Delete(rascunhosTable).
		Where(squirrel.Eq{"cotacao_id": cotacaoID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(rascunhoSQL, rascunhoArgs...)
	return err
}
