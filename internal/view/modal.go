package view

// Padrão do sistema: todo modal fecha apenas pelo botão X. Nunca instalar
// fechamento por clique fora; a configuração remove esse comportamento caso
// algum módulo o tenha adicionado.

const classeModalVisivel = "show"

func (c *Controller) ShowModal(modalID string) {
	c.doc.AddClass(modalID, classeModalVisivel)
}

func (c *Controller) HideModal(modalID string) {
	c.doc.RemoveClass(modalID, classeModalVisivel)
}

// SetupModalClose aplica o padrão de fechamento a um modal. Modais criados
// depois da varredura inicial devem chamar isto ao serem inseridos.
func (c *Controller) SetupModalClose(modalID string) {
	c.doc.RemoveOutsideClick(modalID)
	c.logger.WithField("modal_id", modalID).Debug("modal configurado para fechar apenas pelo botão X")
}

// SetupAllModals varre os modais presentes no documento e aplica o padrão a
// cada um. Não há observador de inserções posteriores.
func (c *Controller) SetupAllModals() {
	ids := c.doc.ModalIDs()
	for _, id := range ids {
		c.SetupModalClose(id)
	}
	c.logger.Infof("%d modais configurados com comportamento padrão", len(ids))
}
