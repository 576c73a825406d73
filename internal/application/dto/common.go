package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Codigo   string `json:"codigo"`
	Mensagem string `json:"mensagem"`
}

// MensagemResponse corpo de sucesso simples.
type MensagemResponse struct {
	Mensagem string `json:"mensagem"`
}
