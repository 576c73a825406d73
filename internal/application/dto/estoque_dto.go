package dto

import "github.com/shopspring/decimal"

// MovimentoPDVRequest corpo opcional de incrementar/decrementar. Quantidade
// ausente ou zero equivale a 1 (toque único no PDV).
type MovimentoPDVRequest struct {
	Quantidade int64 `json:"quantidade"`
}

// MovimentoPDVResponse resposta de incrementar/decrementar.
type MovimentoPDVResponse struct {
	Mensagem       string `json:"mensagem"`
	NovaQuantidade int64  `json:"nova_quantidade"`
}

// CompraRequest corpo de registro de compra (entrada com custo).
type CompraRequest struct {
	Quantidade    int64           `json:"quantidade"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
}

// CompraResponse resposta de compra: nova quantidade e novo custo médio.
type CompraResponse struct {
	Mensagem       string          `json:"mensagem"`
	NovaQuantidade int64           `json:"nova_quantidade"`
	NovoCustoMedio decimal.Decimal `json:"novo_custo_medio"`
}

// VariacaoRequest criação/atualização de uma variação de estoque (catálogo).
type VariacaoRequest struct {
	IDProduto           int64   `json:"id_produto"`
	Cor                 string  `json:"cor"`
	Quantidade          int64   `json:"quantidade"`
	DisponivelEncomenda bool    `json:"disponivel_encomenda"`
	URLFoto             *string `json:"url_foto"`
}

// VariacaoResponse linha de listagem de variações.
type VariacaoResponse struct {
	ID                  int64           `json:"id"`
	Cor                 string          `json:"cor"`
	Quantidade          int64           `json:"quantidade"`
	DisponivelEncomenda bool            `json:"disponivel_encomenda"`
	URLFoto             *string         `json:"url_foto"`
	ProdutoNome         string          `json:"produto_nome"`
	ModeloCelular       string          `json:"modelo_celular"`
	PrecoVenda          decimal.Decimal `json:"preco_venda"`
}
