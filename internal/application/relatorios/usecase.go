package relatorios

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

// diasPadrao janela padrão dos relatórios quando o período não é informado.
const diasPadrao = 7

// UseCase relatórios e dashboard sobre o histórico de estoque. Somente
// leitura: consome o ledger, nunca o altera.
type UseCase struct {
	relatorioRepo repository.RelatorioRepository
	pdf           PDFGenerator
}

// NewUseCase constrói o caso de uso de relatórios.
func NewUseCase(relatorioRepo repository.RelatorioRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{relatorioRepo: relatorioRepo, pdf: pdf}
}

// periodo normaliza o intervalo: fim ausente = hoje; início ausente = fim - 6
// dias. O intervalo cobre do começo do primeiro dia ao fim do último.
func periodo(inicio, fim *time.Time) (time.Time, time.Time) {
	f := time.Now()
	if fim != nil {
		f = *fim
	}
	i := f.AddDate(0, 0, -(diasPadrao - 1))
	if inicio != nil {
		i = *inicio
	}
	ini := time.Date(i.Year(), i.Month(), i.Day(), 0, 0, 0, 0, i.Location())
	end := time.Date(f.Year(), f.Month(), f.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), f.Location())
	return ini, end
}

// Movimentacoes devolve o relatório de movimentações do PDV no período.
// A quantidade anterior é derivada da resultante e do delta de cada linha.
func (uc *UseCase) Movimentacoes(ctx context.Context, inicio, fim *time.Time) ([]dto.MovimentacaoPDVResponse, error) {
	ini, end := periodo(inicio, fim)
	linhas, err := uc.relatorioRepo.ListarMovimentacoesPDV(ctx, ini, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimentacaoPDVResponse, 0, len(linhas))
	for _, l := range linhas {
		anterior := l.NovaQuantidade - l.QuantidadeAlterada
		tipo := "Reposição (Incremento)"
		if l.TipoMovimento == entity.MovimentoDecremento {
			anterior = l.NovaQuantidade + l.QuantidadeAlterada
			tipo = "Venda (Decremento)"
		}
		out = append(out, dto.MovimentacaoPDVResponse{
			DataHora:           l.DataHora.Format("02/01/2006 15:04:05"),
			ProdutoNome:        l.ProdutoNome,
			CorVariacao:        l.CorVariacao,
			ModeloCelular:      l.ModeloCelular,
			Usuario:            l.Usuario,
			TipoMovimento:      tipo,
			QuantidadeAnterior: anterior,
			NovaQuantidade:     l.NovaQuantidade,
		})
	}
	return out, nil
}

// MovimentacoesPDF renderiza o mesmo relatório em PDF.
func (uc *UseCase) MovimentacoesPDF(ctx context.Context, inicio, fim *time.Time) ([]byte, error) {
	linhas, err := uc.Movimentacoes(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	ini, end := periodo(inicio, fim)
	return uc.pdf.GerarRelatorioMovimentacoes(ctx, ini, end, linhas)
}

// Metricas calcula faturação, lucro, total de vendas e ticket médio dos
// últimos 7 dias. O lucro usa o custo congelado em cada venda (COALESCE 0
// para vendas anteriores ao registro de custo).
func (uc *UseCase) Metricas(ctx context.Context) (*dto.MetricasFinanceirasResponse, error) {
	ini, end := periodo(nil, nil)
	m, err := uc.relatorioRepo.MetricasFinanceiras(ctx, ini, end)
	if err != nil {
		return nil, err
	}
	ticket := decimal.Zero
	if m.TotalVendas > 0 {
		ticket = m.FaturacaoTotal.Div(decimal.NewFromInt(m.TotalVendas)).Round(2)
	}
	return &dto.MetricasFinanceirasResponse{
		FaturacaoTotal: m.FaturacaoTotal,
		LucroTotal:     m.LucroTotal,
		TotalVendas:    m.TotalVendas,
		TicketMedio:    ticket,
	}, nil
}

// VendasPorDia devolve a faturação de cada um dos últimos 7 dias, na ordem.
func (uc *UseCase) VendasPorDia(ctx context.Context) (*dto.VendasDiariasResponse, error) {
	hoje := time.Now()
	inicio := hoje.AddDate(0, 0, -(diasPadrao - 1))
	resp := &dto.VendasDiariasResponse{
		Labels: make([]string, 0, diasPadrao),
		Data:   make([]decimal.Decimal, 0, diasPadrao),
	}
	for i := 0; i < diasPadrao; i++ {
		dia := inicio.AddDate(0, 0, i)
		resp.Labels = append(resp.Labels, dia.Format("02/01"))
		faturacao, err := uc.relatorioRepo.FaturacaoPorDia(ctx, dia)
		if err != nil {
			return nil, err
		}
		resp.Data = append(resp.Data, faturacao)
	}
	return resp, nil
}

// TopProdutos devolve as 5 variações mais vendidas.
func (uc *UseCase) TopProdutos(ctx context.Context) ([]dto.TopProdutoResponse, error) {
	top, err := uc.relatorioRepo.TopProdutos(ctx, 5)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProdutoResponse, 0, len(top))
	for _, t := range top {
		out = append(out, dto.TopProdutoResponse{Produto: t.Produto, Vendas: t.Vendas})
	}
	return out, nil
}
