package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento de estoque.
const (
	MovimentoIncremento = "incremento" // entrada (reposição ou compra)
	MovimentoDecremento = "decremento" // saída (venda no PDV)
)

// MovimentoEstoque representa um registro imutável do histórico de estoque.
// Captura o contexto econômico no momento da transação: o preço de venda só é
// preenchido em decrementos (venda) e o custo em decrementos (margem) e em
// compras (custo do lote, não o custo médio resultante).
type MovimentoEstoque struct {
	ID                 int64
	VariacaoID         int64
	UsuarioID          int64
	Tipo               string // incremento | decremento
	QuantidadeAlterada int64  // delta positivo; 1 por padrão, variável em compras
	NovaQuantidade     int64  // quantidade resultante após o movimento
	PrecoVendaMomento  *decimal.Decimal
	PrecoCustoMomento  *decimal.Decimal
	DataHora           time.Time
}
