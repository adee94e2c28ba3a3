package repository

import (
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/brcargo/cotacao-panel/infrastructure/database/postgres"
	"github.com/brcargo/cotacao-panel/internal/domain"
)

const mensagensTable = "mensagens"

type MensagemRepository interface {
	ListMensagens(cotacaoID, operadorID int) ([]domain.Mensagem, error)
	CreateMensagem(mensagem *domain.Mensagem) (*domain.Mensagem, error)
}

type mensagemRepository struct {
	conn *postgres.Connection
}

func NewMensagemRepository(conn *postgres.Connection) MensagemRepository {
	return &mensagemRepository{
		conn: conn,
	}
}

// ListMensagens devolve a conversa de uma cotação com um operador, em ordem
// cronológica.
func (r *mensagemRepository) ListMensagens(cotacaoID, operadorID int) ([]domain.Mensagem, error) {
	mensagensSQL, mensagensArgs, err := squirrel.
		Select("id, cotacao_id, operador_id, autor, mensagem, timestamp").
		From(mensagensTable).
		Where(squirrel.Eq{"cotacao_id": cotacaoID, "operador_id": operadorID}).
		OrderBy("timestamp ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(mensagensSQL, mensagensArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mensagens := make([]domain.Mensagem, 0)
	for rows.Next() {
		var mensagem domain.Mensagem
		if err := rows.Scan(
			&mensagem.ID,
			&mensagem.CotacaoID,
			&mensagem.OperadorID,
			&mensagem.Autor,
			&mensagem.Mensagem,
			&mensagem.Timestamp,
		); err != nil {
			return nil, err
		}
		mensagens = append(mensagens, mensagem)
	}

	return mensagens, rows.Err()
}

func (r *mensagemRepository) CreateMensagem(mensagem *domain.Mensagem) (*domain.Mensagem, error) {
	mensagemSQL, mensagemArgs, err := squirrel.
		Insert(mensagensTable).
		Columns("cotacao_id", "operador_id", "autor", "mensagem", "timestamp").
		Values(mensagem.CotacaoID, mensagem.OperadorID, mensagem.Autor, mensagem.Mensagem, mensagem.Timestamp).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRow(mensagemSQL, mensagemArgs...).Scan(&mensagem.ID); err != nil {
		return nil, err
	}

	return mensagem, nil
}
