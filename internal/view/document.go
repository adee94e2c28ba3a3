package view

// Document abstrai o documento renderizado pelo painel. A implementação real
// fica na camada de apresentação; o controller só conhece operações de
// visibilidade, classe e texto sobre elementos identificados por id.
type Document interface {
	Show(id string)
	Hide(id string)
	SetText(id, texto string)
	SetDisabled(id string, desabilitado bool)
	AddClass(id, classe string)
	RemoveClass(id, classe string)

	// RemoveOutsideClick desliga qualquer fechamento por clique fora do
	// elemento. Modais fecham apenas pelo botão X.
	RemoveOutsideClick(id string)

	// ModalIDs lista os ids dos modais presentes no documento no momento da
	// chamada. Modais inseridos depois precisam se registrar individualmente.
	ModalIDs() []string

	// FooterIDs lista os rodapés controlados pela navegação.
	FooterIDs() []string
}
