package entity

import "github.com/shopspring/decimal"

// VariacaoEstoque representa uma variação de estoque: uma cor de um produto,
// com quantidade e custo médio próprios. Única por (id_produto, cor).
type VariacaoEstoque struct {
	ID                  int64
	IDProduto           int64
	Cor                 string
	Quantidade          int64
	PrecoCusto          *decimal.Decimal // custo médio ponderado; nil até a primeira compra
	DisponivelEncomenda bool
	URLFoto             *string
}

// SaldoVariacao é o estado lido com bloqueio de fila (SELECT FOR UPDATE) antes
// de qualquer mutação: quantidade e custo atuais da variação mais o preço de
// venda vigente do produto dono.
type SaldoVariacao struct {
	VariacaoID int64
	Quantidade int64
	PrecoCusto *decimal.Decimal
	PrecoVenda decimal.Decimal
}
