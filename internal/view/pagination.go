package view

import "strconv"

// Paginacao descreve o estado de uma listagem paginada.
type Paginacao struct {
	CurrentPage  int
	TotalPages   int
	TotalResults int
	ItemsPerPage int
}

// From é o índice do primeiro item exibido na página corrente.
func (p Paginacao) From() int {
	return (p.CurrentPage-1)*p.ItemsPerPage + 1
}

// To é o índice do último item exibido, limitado ao total de resultados.
func (p Paginacao) To() int {
	to := p.CurrentPage * p.ItemsPerPage
	if to > p.TotalResults {
		to = p.TotalResults
	}
	return to
}

// UpdatePagination atualiza o rodapé de paginação e desabilita os botões nas
// bordas. Anterior desabilita na primeira página; próximo desabilita na
// última e também quando não há página alguma.
func (c *Controller) UpdatePagination(p Paginacao) {
	c.doc.SetText("showing-from", strconv.Itoa(p.From()))
	c.doc.SetText("showing-to", strconv.Itoa(p.To()))
	c.doc.SetText("total-results", strconv.Itoa(p.TotalResults))

	c.doc.SetDisabled("btn-prev", p.CurrentPage == 1)
	c.doc.SetDisabled("btn-next", p.CurrentPage == p.TotalPages || p.TotalPages == 0)
}
