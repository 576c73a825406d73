// Package pdf implementa a geração do relatório de movimentações do PDV.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período do relatório                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data/Hora | Produto | Cor | Usuário | Mov. | Qtd.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: total de movimentações + data de emissão           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/relatorios"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 13, Green: 71, Blue: 161}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ relatorios.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa relatorios.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GerarRelatorioMovimentacoes gera o PDF e devolve seus bytes.
func (g *MarotoPDFGenerator) GerarRelatorioMovimentacoes(
	_ context.Context,
	inicio, fim time.Time,
	linhas []dto.MovimentacaoPDVResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Relatório de Movimentações do PDV", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inicio, fim))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(linhas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}))
	m.AddRows(footerRow(len(linhas)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título (esq) e período (dir).
func headerRow(inicio, fim time.Time) core.Row {
	periodo := fmt.Sprintf("Período: %s a %s",
		inicio.Format("02/01/2006"), fim.Format("02/01/2006"))

	return row.New(14).Add(
		col.New(7).Add(
			text.New("RELATÓRIO DE MOVIMENTAÇÕES DO PDV", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: corPrimaria, Top: 1,
			}),
			text.New("Catálogo Inteligente", props.Text{
				Size: 8, Top: 9, Color: corCinza,
			}),
		),
		col.New(5).Add(
			text.New(periodo, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: corCinza,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de movimentações.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data/Hora", 2, align.Left),
		h("Produto", 3, align.Left),
		h("Cor", 1, align.Left),
		h("Usuário", 2, align.Left),
		h("Movimento", 2, align.Center),
		h("Qtd. Ant.", 1, align.Right),
		h("Qtd. Nova", 1, align.Right),
	)
}

// tableRows: uma fila por movimentação.
func tableRows(linhas []dto.MovimentacaoPDVResponse) []core.Row {
	result := make([]core.Row, 0, len(linhas))
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	for _, l := range linhas {
		produto := fmt.Sprintf("%s (%s)", l.ProdutoNome, l.ModeloCelular)
		result = append(result, row.New(6).Add(
			cell(l.DataHora, 2, align.Left),
			cell(produto, 3, align.Left),
			cell(l.CorVariacao, 1, align.Left),
			cell(l.Usuario, 2, align.Left),
			cell(l.TipoMovimento, 2, align.Center),
			cell(fmt.Sprintf("%d", l.QuantidadeAnterior), 1, align.Right),
			cell(fmt.Sprintf("%d", l.NovaQuantidade), 1, align.Right),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma movimentação no período.", props.Text{
				Size: 8, Align: align.Center, Color: corCinza, Top: 2,
			}),
		)))
	}
	return result
}

// footerRow: total de linhas e data de emissão.
func footerRow(total int) core.Row {
	emissao := time.Now().Format("02/01/2006 15:04")
	return row.New(8).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Total de movimentações: %d", total), props.Text{
				Size: 7.5, Top: 2, Color: corCinza,
			}),
		),
		col.New(6).Add(
			text.New("Emitido em "+emissao, props.Text{
				Size: 7.5, Align: align.Right, Top: 2, Color: corCinza,
			}),
		),
	)
}
