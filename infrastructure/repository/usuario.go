package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/brcargo/cotacao-panel/infrastructure/database/postgres"
	"github.com/brcargo/cotacao-panel/internal/domain"
)

const usuariosTable = "usuarios"

type UsuarioRepository interface {
	GetUsuarioByUsername(username string) (*domain.Usuario, error)
	GetUsuarioByID(id int) (*domain.Usuario, error)
	ListOperadores() ([]domain.Operador, error)
}

type usuarioRepository struct {
	conn *postgres.Connection
}

func NewUsuarioRepository(conn *postgres.Connection) UsuarioRepository {
	return &usuarioRepository{
		conn: conn,
	}
}

func (r *usuarioRepository) GetUsuarioByUsername(username string) (*domain.Usuario, error) {
	return r.getUsuario(squirrel.Eq{"username": username})
}

func (r *usuarioRepository) GetUsuarioByID(id int) (*domain.Usuario, error) {
	return r.getUsuario(squirrel.Eq{"id": id})
}

func (r *usuarioRepository) getUsuario(whereClause map[string]interface{}) (*domain.Usuario, error) {
	usuarioSQL, usuarioArgs, err := squirrel.
		Select("id, username, nome, email, papel, ativo, password_hash, created_at").
		From(usuariosTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	usuario := &domain.Usuario{}
	var createdAt sql.NullTime

	err = r.conn.QueryRow(usuarioSQL, usuarioArgs...).Scan(
		&usuario.ID,
		&usuario.Username,
		&usuario.Nome,
		&usuario.Email,
		&usuario.Papel,
		&usuario.Ativo,
		&usuario.PasswordHash,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if createdAt.Valid {
		usuario.CreatedAt = &createdAt.Time
	}

	return usuario, nil
}

// ListOperadores devolve os usuários ativos com papel de operador, na forma
// compacta usada pelos seletores do painel.
func (r *usuarioRepository) ListOperadores() ([]domain.Operador, error) {
	operadoresSQL, operadoresArgs, err := squirrel.
		Select("id, nome, email").
		From(usuariosTable).
		Where(squirrel.Eq{"papel": domain.PapelOperador, "ativo": true}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(operadoresSQL, operadoresArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	operadores := make([]domain.Operador, 0)
	for rows.Next() {
		var operador domain.Operador
		if err := rows.Scan(&operador.ID, &operador.Nome, &operador.Email); err != nil {
			return nil, err
		}
		operadores = append(operadores, operador)
	}

	return operadores, rows.Err()
}
