package entity

// Fornecedor representa um fornecedor de produtos.
type Fornecedor struct {
	ID              int64
	Nome            string
	ContatoTelefone *string
	ContatoEmail    *string
}
