// Package registering implementa o cadastro de empresas: listagem paginada,
// CRUD, exportação e importação em lote (JSON ou planilha CSV).
package registering

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/brcargo/cotacao-panel/infrastructure/repository"
	"github.com/brcargo/cotacao-panel/internal/domain"
)

var (
	ErrEmpresaNaoEncontrada = errors.New("empresa não encontrada")
	ErrCNPJDuplicado        = errors.New("CNPJ já cadastrado")
	ErrPlanilhaInvalida     = errors.New("planilha inválida")
)

var colunasPlanilha = []string{"razao_social", "cnpj", "cidade", "estado", "modalidade"}

type Service interface {
	ListEmpresas(pagina, porPagina int, filtro repository.FiltroEmpresas) (*domain.EmpresasResponse, error)
	GetEmpresa(id int) (*domain.Empresa, error)
	CreateEmpresa(empresa domain.Empresa) (*domain.Empresa, error)
	UpdateEmpresa(id int, empresa domain.Empresa) (*domain.Empresa, error)
	DeleteEmpresa(id int) error
	ExportEmpresas() ([]domain.Empresa, error)
	ExportCSV() ([]byte, error)
	ImportEmpresas(ctx context.Context, empresas []domain.Empresa) (*domain.ImportacaoResponse, error)
	ImportCSV(ctx context.Context, conteudo io.Reader) (*domain.ImportacaoResponse, error)
	TemplateCSV() []byte
	ListPrestadoras() ([]domain.EmpresaPrestadora, error)
}

type service struct {
	empresaRepo repository.EmpresaRepository
}

func NewService(empresaRepo repository.EmpresaRepository) Service {
	return &service{
		empresaRepo: empresaRepo,
	}
}

func (s *service) ListEmpresas(pagina, porPagina int, filtro repository.FiltroEmpresas) (*domain.EmpresasResponse, error) {
	if pagina < 1 {
		pagina = 1
	}
	if porPagina < 1 {
		porPagina = 10
	}

	empresas, total, err := s.empresaRepo.ListEmpresas(pagina, porPagina, filtro)
	if err != nil {
		return nil, err
	}

	pages := (total + porPagina - 1) / porPagina

	return &domain.EmpresasResponse{
		Success:     true,
		Empresas:    empresas,
		CurrentPage: pagina,
		Pages:       pages,
		Total:       total,
		PerPage:     porPagina,
	}, nil
}

func (s *service) GetEmpresa(id int) (*domain.Empresa, error) {
	empresa, err := s.empresaRepo.GetEmpresaByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, ErrEmpresaNaoEncontrada
	}
	return empresa, nil
}

func (s *service) CreateEmpresa(empresa domain.Empresa) (*domain.Empresa, error) {
	if empresa.CNPJ != "" {
		existente, err := s.empresaRepo.GetEmpresaByCNPJ(empresa.CNPJ)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, ErrCNPJDuplicado
		}
	}

	return s.empresaRepo.CreateEmpresa(&empresa)
}

func (s *service) UpdateEmpresa(id int, empresa domain.Empresa) (*domain.Empresa, error) {
	if _, err := s.GetEmpresa(id); err != nil {
		return nil, err
	}

	empresa.ID = id
	if err := s.empresaRepo.UpdateEmpresa(&empresa); err != nil {
		return nil, err
	}

	return &empresa, nil
}

func (s *service) DeleteEmpresa(id int) error {
	if _, err := s.GetEmpresa(id); err != nil {
		return err
	}

	return s.empresaRepo.DeleteEmpresa(id)
}

func (s *service) ExportEmpresas() ([]domain.Empresa, error) {
	return s.empresaRepo.ListAllEmpresas()
}

// ExportCSV serializa o cadastro completo no mesmo layout do template de
// importação.
func (s *service) ExportCSV() ([]byte, error) {
	empresas, err := s.empresaRepo.ListAllEmpresas()
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	escritor := csv.NewWriter(&buffer)

	if err := escritor.Write(colunasPlanilha); err != nil {
		return nil, err
	}

	for _, empresa := range empresas {
		registro := []string{
			empresa.RazaoSocial,
			empresa.CNPJ,
			empresa.Cidade,
			empresa.Estado,
			empresa.Modalidade,
		}
		if err := escritor.Write(registro); err != nil {
			return nil, err
		}
	}

	escritor.Flush()
	return buffer.Bytes(), escritor.Error()
}

func (s *service) ImportEmpresas(ctx context.Context, empresas []domain.Empresa) (*domain.ImportacaoResponse, error) {
	importadas, ignoradas, err := s.empresaRepo.ImportEmpresas(ctx, empresas)
	if err != nil {
		return nil, err
	}

	return &domain.ImportacaoResponse{
		Success:    true,
		Message:    fmt.Sprintf("%d empresas importadas, %d ignoradas", importadas, ignoradas),
		Importadas: importadas,
		Ignoradas:  ignoradas,
	}, nil
}

// ImportCSV lê uma planilha no layout do template e importa as linhas
// válidas. Linhas malformadas são relatadas sem abortar o lote.
func (s *service) ImportCSV(ctx context.Context, conteudo io.Reader) (*domain.ImportacaoResponse, error) {
	leitor := csv.NewReader(conteudo)
	leitor.FieldsPerRecord = len(colunasPlanilha)

	cabecalho, err := leitor.Read()
	if err != nil {
		return nil, ErrPlanilhaInvalida
	}

	for i, coluna := range colunasPlanilha {
		if strings.TrimSpace(strings.ToLower(cabecalho[i])) != coluna {
			return nil, ErrPlanilhaInvalida
		}
	}

	empresas := make([]domain.Empresa, 0)
	erros := make([]string, 0)
	linha := 1

	for {
		registro, err := leitor.Read()
		if err == io.EOF {
			break
		}
		linha++
		if err != nil {
			erros = append(erros, fmt.Sprintf("linha %d: %v", linha, err))
			continue
		}

		if strings.TrimSpace(registro[0]) == "" || strings.TrimSpace(registro[1]) == "" {
			erros = append(erros, fmt.Sprintf("linha %d: razão social e CNPJ são obrigatórios", linha))
			continue
		}

		empresas = append(empresas, domain.Empresa{
			RazaoSocial: strings.TrimSpace(registro[0]),
			CNPJ:        strings.TrimSpace(registro[1]),
			Cidade:      strings.TrimSpace(registro[2]),
			Estado:      strings.TrimSpace(registro[3]),
			Modalidade:  strings.TrimSpace(registro[4]),
		})
	}

	resultado, err := s.ImportEmpresas(ctx, empresas)
	if err != nil {
		return nil, err
	}

	resultado.Erros = erros
	resultado.Ignoradas += len(erros)
	return resultado, nil
}

// TemplateCSV devolve a planilha modelo com o cabeçalho e uma linha de
// exemplo.
func (s *service) TemplateCSV() []byte {
	var buffer bytes.Buffer
	escritor := csv.NewWriter(&buffer)

	_ = escritor.Write(colunasPlanilha)
	_ = escritor.Write([]string{"Transportadora Exemplo Ltda", "00.000.000/0001-00", "São Paulo", "SP", "Rodoviário"})

	escritor.Flush()
	return buffer.Bytes()
}

func (s *service) ListPrestadoras() ([]domain.EmpresaPrestadora, error) {
	return s.empresaRepo.ListPrestadoras()
}
