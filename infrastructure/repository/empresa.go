package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/brcargo/cotacao-panel/infrastructure/database/postgres"
	"github.com/brcargo/cotacao-panel/internal/domain"
)

const (
	empresasTable    = "empresas"
	prestadorasTable = "empresas_prestadoras"
)

// FiltroEmpresas restringe a listagem paginada do cadastro.
type FiltroEmpresas struct {
	Busca      string
	Estado     string
	Modalidade string
}

type EmpresaRepository interface {
	ListEmpresas(pagina, porPagina int, filtro FiltroEmpresas) ([]domain.Empresa, int, error)
	ListAllEmpresas() ([]domain.Empresa, error)
	GetEmpresaByID(id int) (*domain.Empresa, error)
	GetEmpresaByCNPJ(cnpj string) (*domain.Empresa, error)
	CreateEmpresa(empresa *domain.Empresa) (*domain.Empresa, error)
	UpdateEmpresa(empresa *domain.Empresa) error
	DeleteEmpresa(id int) error
	ImportEmpresas(ctx context.Context, empresas []domain.Empresa) (int, int, error)
	ListPrestadoras() ([]domain.EmpresaPrestadora, error)
}

type empresaRepository struct {
	conn *postgres.Connection
}

func NewEmpresaRepository(conn *postgres.Connection) EmpresaRepository {
	return &empresaRepository{
		conn: conn,
	}
}

func (r *empresaRepository) ListEmpresas(pagina, porPagina int, filtro FiltroEmpresas) ([]domain.Empresa, int, error) {
	base := squirrel.
		Select().
		From(empresasTable).
		PlaceholderFormat(squirrel.Dollar)

	if filtro.Busca != "" {
		padrao := fmt.Sprint("%", filtro.Busca, "%")
		base = base.Where(squirrel.Or{
			squirrel.ILike{"razao_social": padrao},
			squirrel.ILike{"cnpj": padrao},
		})
	}

	if filtro.Estado != "" {
		base = base.Where(squirrel.Eq{"estado": filtro.Estado})
	}

	if filtro.Modalidade != "" {
		base = base.Where(squirrel.Eq{"modalidade": filtro.Modalidade})
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.conn.QueryRow(countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (pagina - 1) * porPagina
	if offset < 0 {
		offset = 0
	}

	empresasSQL, empresasArgs, err := base.
		Columns("id, razao_social, cnpj, cidade, estado, modalidade").
		OrderBy("razao_social ASC").
		Limit(uint64(porPagina)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.conn.Query(empresasSQL, empresasArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	empresas, err := deserializeEmpresas(rows)
	if err != nil {
		return nil, 0, err
	}

	return empresas, total, nil
}

func (r *empresaRepository) ListAllEmpresas() ([]domain.Empresa, error) {
	empresasSQL, empresasArgs, err := squirrel.
		Select("id, razao_social, cnpj, cidade, estado, modalidade").
		From(empresasTable).
		OrderBy("razao_social ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(empresasSQL, empresasArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return deserializeEmpresas(rows)
}

func (r *empresaRepository) GetEmpresaByID(id int) (*domain.Empresa, error) {
	return r.getEmpresa(squirrel.Eq{"id": id})
}

func (r *empresaRepository) GetEmpresaByCNPJ(cnpj string) (*domain.Empresa, error) {
	return r.getEmpresa(squirrel.Eq{"cnpj": cnpj})
}

func (r *empresaRepository) getEmpresa(whereClause map[string]interface{}) (*domain.Empresa, error) {
	empresaSQL, empresaArgs, err := squirrel.
		Select("id, razao_social, cnpj, cidade, estado, modalidade").
		From(empresasTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	empresa := &domain.Empresa{}
	err = r.conn.QueryRow(empresaSQL, empresaArgs...).Scan(
		&empresa.ID,
		&empresa.RazaoSocial,
		&empresa.CNPJ,
		&empresa.Cidade,
		&empresa.Estado,
		&empresa.Modalidade,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return empresa, nil
}

func (r *empresaRepository) CreateEmpresa(empresa *domain.Empresa) (*domain.Empresa, error) {
	empresaSQL, empresaArgs, err := squirrel.
		Insert(empresasTable).
		Columns("razao_social", "cnpj", "cidade", "estado", "modalidade").
		Values(empresa.RazaoSocial, empresa.CNPJ, empresa.Cidade, empresa.Estado, empresa.Modalidade).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.conn.QueryRow(empresaSQL, empresaArgs...).Scan(&empresa.ID); err != nil {
		return nil, err
	}

	return empresa, nil
}

func (r *empresaRepository) UpdateEmpresa(empresa *domain.Empresa) error {
	empresaSQL, empresaArgs, err := squirrel.
		Update(empresasTable).
		Set("razao_social", empresa.RazaoSocial).
		Set("cnpj", empresa.CNPJ).
		Set("cidade", empresa.Cidade).
		Set("estado", empresa.Estado).
		Set("modalidade", empresa.Modalidade).
		Where(squirrel.Eq{"id": empresa.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(empresaSQL, empresaArgs...)
	return err
}

func (r *empresaRepository) DeleteEmpresa(id int) error {
	empresaSQL, empresaArgs, err := squirrel.
		Delete(empresasTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(empresaSQL, empresaArgs...)
	return err
}

// ImportEmpresas insere o lote numa transação única, pulando CNPJ repetido.
// Devolve quantas entraram e quantas foram ignoradas.
func (r *empresaRepository) ImportEmpresas(ctx context.Context, empresas []domain.Empresa) (int, int, error) {
	importadas := 0
	ignoradas := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, empresa := range empresas {
			empresaSQL, empresaArgs, err := squirrel.
				Insert(empresasTable).
				Columns("razao_social", "cnpj", "cidade", "estado", "modalidade").
				Values(empresa.RazaoSocial, empresa.CNPJ, empresa.Cidade, empresa.Estado, empresa.Modalidade).
				Suffix("ON CONFLICT (cnpj) DO NOTHING").
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			result, err := tx.Exec(empresaSQL, empresaArgs...)
			if err != nil {
				return err
			}

			afetadas, err := result.RowsAffected()
			if err != nil {
				return err
			}

			if afetadas > 0 {
				importadas++
			} else {
				ignoradas++
			}
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return importadas, ignoradas, nil
}

func (r *empresaRepository) ListPrestadoras() ([]domain.EmpresaPrestadora, error) {
	prestadorasSQL, prestadorasArgs, err := squirrel.
		Select("id, nome, tipo, ativa").
		From(prestadorasTable).
		Where(squirrel.Eq{"ativa": true}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(prestadorasSQL, prestadorasArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prestadoras := make([]domain.EmpresaPrestadora, 0)
	for rows.Next() {
		var prestadora domain.EmpresaPrestadora
		if err := rows.Scan(&prestadora.ID, &prestadora.Nome, &prestadora.Tipo, &prestadora.Ativa); err != nil {
			return nil, err
		}
		prestadoras = append(prestadoras, prestadora)
	}

	return prestadoras, rows.Err()
}

func deserializeEmpresas(rows *sql.Rows) ([]domain.Empresa, error) {
	empresas := make([]domain.Empresa, 0)
	for rows.Next() {
		var empresa domain.Empresa
		if err := rows.Scan(
			&empresa.ID,
			&empresa.RazaoSocial,
			&empresa.CNPJ,
			&empresa.Cidade,
			&empresa.Estado,
			&empresa.Modalidade,
		); err != nil {
			return nil, err
		}
		empresas = append(empresas, empresa)
	}

	return empresas, rows.Err()
}
