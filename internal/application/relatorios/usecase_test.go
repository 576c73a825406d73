package relatorios_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/relatorios"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type relatorioRepoFake struct {
	movimentacoes []repository.MovimentacaoPDV
	metricas      repository.MetricasFinanceiras
	faturacaoDia  map[string]decimal.Decimal // chave "2006-01-02"
	top           []repository.TopProduto

	inicioRecebido time.Time
	fimRecebido    time.Time
	limiteRecebido int
}

var _ repository.RelatorioRepository = (*relatorioRepoFake)(nil)

func (f *relatorioRepoFake) ListarMovimentacoesPDV(_ context.Context, inicio, fim time.Time) ([]repository.MovimentacaoPDV, error) {
	f.inicioRecebido, f.fimRecebido = inicio, fim
	return f.movimentacoes, nil
}

func (f *relatorioRepoFake) MetricasFinanceiras(_ context.Context, inicio, fim time.Time) (*repository.MetricasFinanceiras, error) {
	f.inicioRecebido, f.fimRecebido = inicio, fim
	m := f.metricas
	return &m, nil
}

func (f *relatorioRepoFake) FaturacaoPorDia(_ context.Context, dia time.Time) (decimal.Decimal, error) {
	if v, ok := f.faturacaoDia[dia.Format("2006-01-02")]; ok {
		return v, nil
	}
	return decimal.Zero, nil
}

func (f *relatorioRepoFake) TopProdutos(_ context.Context, limite int) ([]repository.TopProduto, error) {
	f.limiteRecebido = limite
	return f.top, nil
}

type pdfFake struct {
	linhasRecebidas []dto.MovimentacaoPDVResponse
}

func (f *pdfFake) GerarRelatorioMovimentacoes(_ context.Context, _, _ time.Time, linhas []dto.MovimentacaoPDVResponse) ([]byte, error) {
	f.linhasRecebidas = linhas
	return []byte("%PDF-1.7 fake"), nil
}

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02 15:04:05", s)
	require.NoError(t, err)
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimentações
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimentacoes_DerivaQuantidadeAnterior(t *testing.T) {
	repo := &relatorioRepoFake{
		movimentacoes: []repository.MovimentacaoPDV{
			{
				DataHora:           ts(t, "2026-08-30 14:05:09"),
				ProdutoNome:        "Capa Slim",
				CorVariacao:        "Preto",
				ModeloCelular:      "Galaxy S24",
				Usuario:            "maria",
				TipoMovimento:      "decremento",
				QuantidadeAlterada: 2,
				NovaQuantidade:     8,
			},
			{
				DataHora:           ts(t, "2026-08-30 09:12:00"),
				ProdutoNome:        "Capa Slim",
				CorVariacao:        "Azul",
				ModeloCelular:      "Galaxy S24",
				Usuario:            "joao",
				TipoMovimento:      "incremento",
				QuantidadeAlterada: 5,
				NovaQuantidade:     12,
			},
		},
	}
	uc := relatorios.NewUseCase(repo, &pdfFake{})

	out, err := uc.Movimentacoes(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)

	venda := out[0]
	assert.Equal(t, "Venda (Decremento)", venda.TipoMovimento)
	assert.Equal(t, int64(10), venda.QuantidadeAnterior, "decremento: anterior = nova + delta")
	assert.Equal(t, int64(8), venda.NovaQuantidade)
	assert.Equal(t, "30/08/2026 14:05:09", venda.DataHora)

	reposicao := out[1]
	assert.Equal(t, "Reposição (Incremento)", reposicao.TipoMovimento)
	assert.Equal(t, int64(7), reposicao.QuantidadeAnterior, "incremento: anterior = nova - delta")
}

func TestMovimentacoes_PeriodoExplicitoCobreDiasInteiros(t *testing.T) {
	repo := &relatorioRepoFake{}
	uc := relatorios.NewUseCase(repo, &pdfFake{})

	inicio := ts(t, "2026-08-01 10:30:00")
	fim := ts(t, "2026-08-15 16:45:00")
	_, err := uc.Movimentacoes(context.Background(), &inicio, &fim)
	require.NoError(t, err)

	assert.Equal(t, 0, repo.inicioRecebido.Hour(), "início normalizado para meia-noite")
	assert.Equal(t, 1, repo.inicioRecebido.Day())
	assert.Equal(t, 23, repo.fimRecebido.Hour(), "fim estendido até o final do dia")
	assert.Equal(t, 15, repo.fimRecebido.Day())
}

func TestMovimentacoes_PeriodoPadraoSeteDias(t *testing.T) {
	repo := &relatorioRepoFake{}
	uc := relatorios.NewUseCase(repo, &pdfFake{})

	_, err := uc.Movimentacoes(context.Background(), nil, nil)
	require.NoError(t, err)

	dias := int(repo.fimRecebido.Sub(repo.inicioRecebido).Hours()/24) + 1
	assert.Equal(t, 7, dias, "sem período explícito, a janela é de 7 dias")
}

func TestMovimentacoesPDF_RepassaLinhasAoGerador(t *testing.T) {
	repo := &relatorioRepoFake{
		movimentacoes: []repository.MovimentacaoPDV{
			{DataHora: ts(t, "2026-08-30 10:00:00"), TipoMovimento: "decremento", QuantidadeAlterada: 1, NovaQuantidade: 4},
		},
	}
	pdf := &pdfFake{}
	uc := relatorios.NewUseCase(repo, pdf)

	conteudo, err := uc.MovimentacoesPDF(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, conteudo)
	assert.Len(t, pdf.linhasRecebidas, 1, "o gerador recebe as mesmas linhas do relatório JSON")
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestMetricas_CalculaTicketMedio(t *testing.T) {
	repo := &relatorioRepoFake{
		metricas: repository.MetricasFinanceiras{
			FaturacaoTotal: decimal.RequireFromString("100.00"),
			LucroTotal:     decimal.RequireFromString("40.00"),
			TotalVendas:    3,
		},
	}
	uc := relatorios.NewUseCase(repo, &pdfFake{})

	m, err := uc.Metricas(context.Background())
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("33.33").Equal(m.TicketMedio),
		"100.00 / 3 arredondado a duas casas, obtido %s", m.TicketMedio)
	assert.Equal(t, int64(3), m.TotalVendas)
}

func TestMetricas_SemVendasTicketZero(t *testing.T) {
	repo := &relatorioRepoFake{}
	uc := relatorios.NewUseCase(repo, &pdfFake{})

	m, err := uc.Metricas(context.Background())
	require.NoError(t, err)

	assert.True(t, m.TicketMedio.IsZero(), "sem vendas não há divisão por zero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vendas por dia / top produtos
// ──────────────────────────────────────────────────────────────────────────────

func TestVendasPorDia_SeteDiasEmOrdem(t *testing.T) {
	hoje := time.Now()
	repo := &relatorioRepoFake{
		faturacaoDia: map[string]decimal.Decimal{
			hoje.Format("2006-01-02"): decimal.RequireFromString("55.50"),
		},
	}
	uc := relatorios.NewUseCase(repo, &pdfFake{})

	resp, err := uc.VendasPorDia(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Labels, 7)
	require.Len(t, resp.Data, 7)
	assert.Equal(t, hoje.Format("02/01"), resp.Labels[6], "o último rótulo é hoje")
	assert.True(t, decimal.RequireFromString("55.50").Equal(resp.Data[6]))
	assert.True(t, resp.Data[0].IsZero(), "dias sem venda entram como zero")
}

func TestTopProdutos_LimiteCinco(t *testing.T) {
	repo := &relatorioRepoFake{
		top: []repository.TopProduto{
			{Produto: "Capa Slim (Preto)", Vendas: 12},
			{Produto: "Película 3D (Transparente)", Vendas: 7},
		},
	}
	uc := relatorios.NewUseCase(repo, &pdfFake{})

	out, err := uc.TopProdutos(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, repo.limiteRecebido)
	require.Len(t, out, 2)
	assert.Equal(t, "Capa Slim (Preto)", out[0].Produto)
	assert.Equal(t, int64(12), out[0].Vendas)
}
