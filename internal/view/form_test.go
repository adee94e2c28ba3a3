package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestGetFormData_CoercaoEmTresNiveis(t *testing.T) {
	form := &Formulario{
		ID: "form-resposta",
		Campos: []*Campo{
			{Nome: "valor_frete", Tipo: CampoNumero, Valor: "R$ 1.234,56", ValorNumerico: floatPtr(9999)},
			{Nome: "taxa_coleta", Tipo: CampoNumero, Valor: "R$ 1.234,56"},
			{Nome: "observacoes", Tipo: CampoTexto, Valor: "entrega agendada"},
		},
	}

	dados := GetFormData(form)

	// Valor numérico pré-calculado vence o parse do texto
	assert.Equal(t, 9999.0, dados["valor_frete"])
	assert.Equal(t, 1234.56, dados["taxa_coleta"])
	assert.Equal(t, "entrega agendada", dados["observacoes"])
}

func TestGetFormData_NumeroInvalidoViraZero(t *testing.T) {
	form := &Formulario{
		Campos: []*Campo{
			{Nome: "valor_frete", Tipo: CampoNumero, Valor: "abc"},
		},
	}

	dados := GetFormData(form)

	assert.Equal(t, 0.0, dados["valor_frete"])
}

func TestGetFormData_CheckboxERadioSoQuandoMarcados(t *testing.T) {
	form := &Formulario{
		Campos: []*Campo{
			{Nome: "urgente", Tipo: CampoCheckbox, Valor: "sim", Marcado: true},
			{Nome: "seguro", Tipo: CampoCheckbox, Valor: "sim"},
			{Nome: "modalidade", Tipo: CampoRadio, Valor: "rodoviario"},
			{Nome: "modalidade", Tipo: CampoRadio, Valor: "maritimo", Marcado: true},
		},
	}

	dados := GetFormData(form)

	assert.Equal(t, "sim", dados["urgente"])
	assert.NotContains(t, dados, "seguro")
	assert.Equal(t, "maritimo", dados["modalidade"])
}

func TestSetFormData(t *testing.T) {
	rodoviario := &Campo{Nome: "modalidade", Tipo: CampoRadio, Valor: "rodoviario", Marcado: true}
	maritimo := &Campo{Nome: "modalidade", Tipo: CampoRadio, Valor: "maritimo"}
	urgente := &Campo{Nome: "urgente", Tipo: CampoCheckbox}
	valor := &Campo{Nome: "valor_frete", Tipo: CampoNumero}
	obs := &Campo{Nome: "observacoes", Tipo: CampoTexto, Valor: "antigo"}

	form := &Formulario{Campos: []*Campo{rodoviario, maritimo, urgente, valor, obs}}

	SetFormData(form, map[string]any{
		"modalidade":  "maritimo",
		"urgente":     true,
		"valor_frete": 2500.5,
		"observacoes": nil,
	})

	assert.False(t, rodoviario.Marcado)
	assert.True(t, maritimo.Marcado)
	assert.True(t, urgente.Marcado)
	assert.Equal(t, "2500.5", valor.Valor)
	assert.Equal(t, "", obs.Valor)
}

func TestClearForm_OcultaErrosDeValidacao(t *testing.T) {
	doc := newFakeDocument()
	c := New(doc, Loaders{}, nil)

	campo := &Campo{Nome: "cnpj", Tipo: CampoTexto, Valor: "12.345.678/0001-90", ValorNumerico: floatPtr(1), Marcado: true}
	form := &Formulario{Campos: []*Campo{campo}}

	c.ShowFieldError("cnpj", "CNPJ inválido")
	assert.Equal(t, "CNPJ inválido", doc.textos["cnpj_error"])
	assert.False(t, doc.temClasse("cnpj_error", "hidden"))

	c.ClearForm(form)

	assert.Empty(t, campo.Valor)
	assert.Nil(t, campo.ValorNumerico)
	assert.False(t, campo.Marcado)
	assert.True(t, doc.temClasse("cnpj_error", "hidden"))
}

func TestUpdatePagination(t *testing.T) {
	doc := newFakeDocument()
	c := New(doc, Loaders{}, nil)

	c.UpdatePagination(Paginacao{CurrentPage: 2, TotalPages: 3, TotalResults: 25, ItemsPerPage: 10})

	assert.Equal(t, "11", doc.textos["showing-from"])
	assert.Equal(t, "20", doc.textos["showing-to"])
	assert.Equal(t, "25", doc.textos["total-results"])
	assert.False(t, doc.desabilitados["btn-prev"])
	assert.False(t, doc.desabilitados["btn-next"])
}

func TestUpdatePagination_Bordas(t *testing.T) {
	doc := newFakeDocument()
	c := New(doc, Loaders{}, nil)

	c.UpdatePagination(Paginacao{CurrentPage: 1, TotalPages: 3, TotalResults: 25, ItemsPerPage: 10})
	assert.True(t, doc.desabilitados["btn-prev"])
	assert.False(t, doc.desabilitados["btn-next"])

	c.UpdatePagination(Paginacao{CurrentPage: 3, TotalPages: 3, TotalResults: 25, ItemsPerPage: 10})
	assert.False(t, doc.desabilitados["btn-prev"])
	assert.True(t, doc.desabilitados["btn-next"])
	assert.Equal(t, "25", doc.textos["showing-to"])
}

func TestUpdatePagination_SemResultados(t *testing.T) {
	doc := newFakeDocument()
	c := New(doc, Loaders{}, nil)

	c.UpdatePagination(Paginacao{CurrentPage: 1, TotalPages: 0, TotalResults: 0, ItemsPerPage: 10})

	assert.True(t, doc.desabilitados["btn-prev"])
	assert.True(t, doc.desabilitados["btn-next"])
	assert.Equal(t, "0", doc.textos["showing-to"])
}
