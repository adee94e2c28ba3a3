package view

import (
	"fmt"

	"github.com/brcargo/cotacao-panel/pkg/utils"
)

// TipoCampo distingue os tipos de controle relevantes para coerção.
type TipoCampo string

const (
	CampoTexto    TipoCampo = "text"
	CampoNumero   TipoCampo = "number"
	CampoCheckbox TipoCampo = "checkbox"
	CampoRadio    TipoCampo = "radio"
)

// Campo é um controle de formulário. Um grupo de radios aparece como vários
// campos de mesmo nome, cada um com seu valor; Marcado indica o selecionado.
type Campo struct {
	Nome          string
	Tipo          TipoCampo
	Valor         string
	ValorNumerico *float64
	Marcado       bool
}

// Formulario agrega os campos de um formulário identificado no documento.
type Formulario struct {
	ID     string
	Campos []*Campo
}

// GetFormData extrai os valores do formulário num mapa simples. A coerção é
// em três níveis: valor numérico pré-calculado quando presente, parse de
// número formatado para campos numéricos, senão a string crua. Checkboxes e
// radios só contribuem quando marcados.
func GetFormData(form *Formulario) map[string]any {
	dados := make(map[string]any)

	for _, campo := range form.Campos {
		switch campo.Tipo {
		case CampoCheckbox, CampoRadio:
			if !campo.Marcado {
				continue
			}
		}

		switch {
		case campo.ValorNumerico != nil:
			dados[campo.Nome] = *campo.ValorNumerico
		case campo.Tipo == CampoNumero:
			dados[campo.Nome] = utils.ParseFormattedNumber(campo.Valor)
		default:
			dados[campo.Nome] = campo.Valor
		}
	}

	return dados
}

// SetFormData preenche o formulário a partir de um mapa, respeitando o tipo
// de cada controle: checkbox recebe booleano, radio marca o valor
// correspondente do grupo, os demais recebem o valor como texto.
func SetFormData(form *Formulario, dados map[string]any) {
	for _, campo := range form.Campos {
		valor, ok := dados[campo.Nome]
		if !ok {
			continue
		}

		switch campo.Tipo {
		case CampoCheckbox:
			marcado, _ := valor.(bool)
			campo.Marcado = marcado
		case CampoRadio:
			campo.Marcado = campo.Valor == fmt.Sprint(valor)
		default:
			if valor == nil {
				campo.Valor = ""
			} else {
				campo.Valor = fmt.Sprint(valor)
			}
		}
	}
}

// ClearForm reseta todos os campos e oculta os marcadores de erro de
// validação de cada um.
func (c *Controller) ClearForm(form *Formulario) {
	for _, campo := range form.Campos {
		campo.Valor = ""
		campo.ValorNumerico = nil
		campo.Marcado = false
		c.HideFieldError(campo.Nome)
	}
}

// ShowFieldError exibe a mensagem de validação de um campo. O marcador segue
// a convenção de id "<campo>_error".
func (c *Controller) ShowFieldError(nomeCampo, mensagem string) {
	id := nomeCampo + "_error"
	c.doc.SetText(id, mensagem)
	c.doc.RemoveClass(id, "hidden")
}

func (c *Controller) HideFieldError(nomeCampo string) {
	c.doc.AddClass(nomeCampo+"_error", "hidden")
}
