package dto

import "github.com/shopspring/decimal"

// MovimentacaoPDVResponse linha do relatório de movimentações do PDV.
type MovimentacaoPDVResponse struct {
	DataHora           string `json:"data_hora"` // dd/mm/aaaa hh:mm:ss
	ProdutoNome        string `json:"produto_nome"`
	CorVariacao        string `json:"cor_variacao"`
	ModeloCelular      string `json:"modelo_celular"`
	Usuario            string `json:"usuario"`
	TipoMovimento      string `json:"tipo_movimento"` // "Venda (Decremento)" | "Reposição (Incremento)"
	QuantidadeAnterior int64  `json:"quantidade_anterior"`
	NovaQuantidade     int64  `json:"nova_quantidade"`
}

// MetricasFinanceirasResponse métricas dos últimos 7 dias.
type MetricasFinanceirasResponse struct {
	FaturacaoTotal decimal.Decimal `json:"faturacao_total"`
	LucroTotal     decimal.Decimal `json:"lucro_total"`
	TotalVendas    int64           `json:"total_vendas"`
	TicketMedio    decimal.Decimal `json:"ticket_medio"`
}

// VendasDiariasResponse série diária de faturação para o gráfico do dashboard.
type VendasDiariasResponse struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

// TopProdutoResponse produto ranqueado por vendas.
type TopProdutoResponse struct {
	Produto string `json:"produto"`
	Vendas  int64  `json:"vendas"`
}
