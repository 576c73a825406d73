package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas de agregação sobre o histórico de estoque.
type RelatorioRepo struct {
	q Querier
}

func NewRelatorioRepository(q Querier) *RelatorioRepo {
	return &RelatorioRepo{q: q}
}

// ListarMovimentacoesPDV lista cronologicamente as movimentações no período,
// com produto, cor, modelo e usuário resolvidos.
func (r *RelatorioRepo) ListarMovimentacoesPDV(ctx context.Context, inicio, fim time.Time) ([]repository.MovimentacaoPDV, error) {
	query := `
		SELECT h.data_hora, p.nome, ev.cor,
		       CONCAT(b.nome, ' ', m.nome_modelo) AS modelo_celular,
		       u.username, h.tipo_movimento, h.quantidade_alterada, h.nova_quantidade_estoque
		FROM historico_estoque h
		JOIN estoque_variacoes ev ON h.id_variacao_estoque = ev.id
		JOIN produtos p ON ev.id_produto = p.id
		JOIN modelos_celular m ON p.id_modelo_celular = m.id
		JOIN marcas b ON m.id_marca = b.id
		JOIN usuarios u ON h.id_usuario = u.id
		WHERE h.data_hora >= $1 AND h.data_hora < $2
		ORDER BY h.data_hora DESC`
	rows, err := r.q.Query(ctx, query, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("listar movimentações: %w", err)
	}
	defer rows.Close()
	var list []repository.MovimentacaoPDV
	for rows.Next() {
		var mv repository.MovimentacaoPDV
		if err := rows.Scan(&mv.DataHora, &mv.ProdutoNome, &mv.CorVariacao, &mv.ModeloCelular,
			&mv.Usuario, &mv.TipoMovimento, &mv.QuantidadeAlterada, &mv.NovaQuantidade); err != nil {
			return nil, fmt.Errorf("scan movimentação: %w", err)
		}
		list = append(list, mv)
	}
	return list, rows.Err()
}

// MetricasFinanceiras agrega faturação, lucro e número de vendas do período.
// Usa os preços congelados no momento de cada venda, não os preços atuais.
func (r *RelatorioRepo) MetricasFinanceiras(ctx context.Context, inicio, fim time.Time) (*repository.MetricasFinanceiras, error) {
	query := `
		SELECT COALESCE(SUM(h.preco_venda_momento * h.quantidade_alterada), 0),
		       COALESCE(SUM((h.preco_venda_momento - COALESCE(h.preco_custo_momento, 0)) * h.quantidade_alterada), 0),
		       COALESCE(SUM(h.quantidade_alterada), 0)
		FROM historico_estoque h
		WHERE h.tipo_movimento = $1
		  AND h.preco_venda_momento IS NOT NULL
		  AND h.data_hora >= $2 AND h.data_hora < $3`
	var m repository.MetricasFinanceiras
	err := r.q.QueryRow(ctx, query, entity.MovimentoDecremento, inicio, fim).
		Scan(&m.FaturacaoTotal, &m.LucroTotal, &m.TotalVendas)
	if err != nil {
		return nil, fmt.Errorf("métricas financeiras: %w", err)
	}
	return &m, nil
}

// FaturacaoPorDia soma a faturação das vendas de um dia (de 00:00 a 00:00).
func (r *RelatorioRepo) FaturacaoPorDia(ctx context.Context, dia time.Time) (decimal.Decimal, error) {
	inicio := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, dia.Location())
	fim := inicio.AddDate(0, 0, 1)
	query := `
		SELECT COALESCE(SUM(h.preco_venda_momento * h.quantidade_alterada), 0)
		FROM historico_estoque h
		WHERE h.tipo_movimento = $1
		  AND h.preco_venda_momento IS NOT NULL
		  AND h.data_hora >= $2 AND h.data_hora < $3`
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, query, entity.MovimentoDecremento, inicio, fim).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("faturação do dia: %w", err)
	}
	return total, nil
}

// TopProdutos ranqueia variações por unidades vendidas (todo o histórico).
func (r *RelatorioRepo) TopProdutos(ctx context.Context, limite int) ([]repository.TopProduto, error) {
	query := `
		SELECT CONCAT(p.nome, ' - ', ev.cor) AS produto,
		       SUM(h.quantidade_alterada) AS vendas
		FROM historico_estoque h
		JOIN estoque_variacoes ev ON h.id_variacao_estoque = ev.id
		JOIN produtos p ON ev.id_produto = p.id
		WHERE h.tipo_movimento = $1 AND h.preco_venda_momento IS NOT NULL
		GROUP BY p.nome, ev.cor
		ORDER BY vendas DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, entity.MovimentoDecremento, limite)
	if err != nil {
		return nil, fmt.Errorf("top produtos: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProduto
	for rows.Next() {
		var t repository.TopProduto
		if err := rows.Scan(&t.Produto, &t.Vendas); err != nil {
			return nil, fmt.Errorf("scan top produto: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
