package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovimentacaoPDV é uma linha do relatório de movimentações do PDV, com
// produto, variação, modelo e usuário resolvidos.
type MovimentacaoPDV struct {
	DataHora           time.Time
	ProdutoNome        string
	CorVariacao        string
	ModeloCelular      string
	Usuario            string
	TipoMovimento      string // incremento | decremento
	QuantidadeAlterada int64
	NovaQuantidade     int64
}

// MetricasFinanceiras agrega o desempenho de vendas de um período.
type MetricasFinanceiras struct {
	FaturacaoTotal decimal.Decimal
	LucroTotal     decimal.Decimal
	TotalVendas    int64
}

// TopProduto é um produto (variação) ranqueado por número de vendas.
type TopProduto struct {
	Produto string
	Vendas  int64
}

// RelatorioRepository consultas de agregação sobre o histórico de estoque.
// Somente leitura: nunca toca o saldo nem o ledger.
type RelatorioRepository interface {
	ListarMovimentacoesPDV(ctx context.Context, inicio, fim time.Time) ([]MovimentacaoPDV, error)
	MetricasFinanceiras(ctx context.Context, inicio, fim time.Time) (*MetricasFinanceiras, error)
	FaturacaoPorDia(ctx context.Context, dia time.Time) (decimal.Decimal, error)
	TopProdutos(ctx context.Context, limite int) ([]TopProduto, error)
}
