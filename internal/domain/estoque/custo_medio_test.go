package estoque_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain/estoque"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Vetores do custo médio ponderado
// ──────────────────────────────────────────────────────────────────────────────

func TestCustoMedioPonderado_Vetores(t *testing.T) {
	casos := []struct {
		nome       string
		qtdAtual   int64
		custoAtual *decimal.Decimal
		qtdLote    int64
		custoLote  decimal.Decimal
		esperado   decimal.Decimal
	}{
		{
			// Primeira compra: estoque pré-existente sem base de custo
			// não entra na média; o custo passa a ser o do lote.
			nome:       "primeira compra com custo nulo",
			qtdAtual:   10,
			custoAtual: nil,
			qtdLote:    5,
			custoLote:  dec("2.00"),
			esperado:   dec("2.00"),
		},
		{
			// Segunda compra: média ponderada (15*2.00 + 5*4.00) / 20 = 2.50
			nome:       "segunda compra pondera com o saldo",
			qtdAtual:   15,
			custoAtual: decPtr("2.00"),
			qtdLote:    5,
			custoLote:  dec("4.00"),
			esperado:   dec("2.50"),
		},
		{
			nome:       "lote mais barato reduz a média",
			qtdAtual:   10,
			custoAtual: decPtr("10.00"),
			qtdLote:    10,
			custoLote:  dec("5.00"),
			esperado:   dec("7.50"),
		},
		{
			// (1*1.00 + 2*2.00) / 3 = 1.666... -> 1.67
			nome:       "arredonda para duas casas",
			qtdAtual:   1,
			custoAtual: decPtr("1.00"),
			qtdLote:    2,
			custoLote:  dec("2.00"),
			esperado:   dec("1.67"),
		},
		{
			nome:       "estoque zerado assume o custo do lote",
			qtdAtual:   0,
			custoAtual: decPtr("3.00"),
			qtdLote:    4,
			custoLote:  dec("7.25"),
			esperado:   dec("7.25"),
		},
		{
			nome:       "custo do lote zero dilui a média",
			qtdAtual:   2,
			custoAtual: decPtr("4.00"),
			qtdLote:    2,
			custoLote:  dec("0.00"),
			esperado:   dec("2.00"),
		},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			got := estoque.CustoMedioPonderado(c.qtdAtual, c.custoAtual, c.qtdLote, c.custoLote)
			assert.True(t, c.esperado.Equal(got),
				"esperado %s, obtido %s", c.esperado, got)
		})
	}
}

// A aritmética é em decimal exato: compras repetidas de mesmo custo nunca
// desviam a média, não importa quantas vezes.
func TestCustoMedioPonderado_SemDerivaEmComprasRepetidas(t *testing.T) {
	custo := decPtr("3.33")
	qtd := int64(3)
	for i := 0; i < 1000; i++ {
		novo := estoque.CustoMedioPonderado(qtd, custo, 7, dec("3.33"))
		assert.True(t, dec("3.33").Equal(novo), "iteração %d: média derivou para %s", i, novo)
		qtd += 7
		custo = &novo
	}
}
