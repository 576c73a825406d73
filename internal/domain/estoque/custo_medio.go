package estoque

import "github.com/shopspring/decimal"

// CustoMedioPonderado implementa o custo médio ponderado (serviço de domínio).
// NovoCusto = ((QtdAtual * CustoAtual) + (QtdLote * CustoLote)) / (QtdAtual + QtdLote)
//
// Toda a aritmética é em decimal exato; o resultado é arredondado para 2 casas,
// a precisão persistida (DECIMAL(10,2)).
//
// custoAtual nil significa que a variação nunca teve compra registrada: o
// estoque existente não tem base de custo e não entra na média. A primeira
// compra define o custo como o custo unitário do lote.
func CustoMedioPonderado(qtdAtual int64, custoAtual *decimal.Decimal, qtdLote int64, custoLote decimal.Decimal) decimal.Decimal {
	if custoAtual == nil {
		if qtdLote <= 0 {
			return decimal.Zero
		}
		return custoLote.Round(2)
	}
	total := qtdAtual + qtdLote
	if total <= 0 {
		return decimal.Zero
	}
	num := decimal.NewFromInt(qtdAtual).Mul(*custoAtual).
		Add(decimal.NewFromInt(qtdLote).Mul(custoLote))
	return num.Div(decimal.NewFromInt(total)).Round(2)
}
