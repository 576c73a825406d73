package entity

import "github.com/shopspring/decimal"

// Produto representa um produto do catálogo (capinha, película etc.) vinculado
// a um modelo de celular. O preço de venda vive aqui; o custo vive por variação.
type Produto struct {
	ID              int64
	Nome            string
	Tipo            string
	Material        *string
	PrecoVenda      decimal.Decimal
	IDModeloCelular int64
}

// ProdutoResumo é a linha de listagem com o modelo já resolvido (marca + modelo).
type ProdutoResumo struct {
	ID            int64
	Nome          string
	Tipo          string
	Material      *string
	PrecoVenda    decimal.Decimal
	ModeloCelular string
}
