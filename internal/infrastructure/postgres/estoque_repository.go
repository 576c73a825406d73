package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

var _ repository.EstoqueRepository = (*EstoqueRepo)(nil)

// EstoqueRepo implementação de EstoqueRepository sobre PostgreSQL (usável com
// pool ou tx; nas mutações deve sempre vir de uma tx, via TxRunner).
type EstoqueRepo struct {
	q Querier
}

// NewEstoqueRepository constrói o adaptador de saldo. Passar pool ou tx (Querier).
func NewEstoqueRepository(q Querier) *EstoqueRepo {
	return &EstoqueRepo{q: q}
}

// ObterParaAtualizar lê o saldo e bloqueia a fila da variação para update
// (SELECT ... FOR UPDATE OF ev). O join com produtos traz o preço de venda
// vigente sem bloquear a fila do produto.
func (r *EstoqueRepo) ObterParaAtualizar(ctx context.Context, variacaoID int64) (*entity.SaldoVariacao, error) {
	query := `
		SELECT ev.id, ev.quantidade, ev.preco_custo, p.preco_venda
		FROM estoque_variacoes ev
		JOIN produtos p ON ev.id_produto = p.id
		WHERE ev.id = $1
		FOR UPDATE OF ev`
	var s entity.SaldoVariacao
	err := r.q.QueryRow(ctx, query, variacaoID).Scan(
		&s.VariacaoID, &s.Quantidade, &s.PrecoCusto, &s.PrecoVenda,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("obter saldo para update: %w", err)
	}
	return &s, nil
}

// AtualizarSaldo grava quantidade e custo médio em um único UPDATE.
func (r *EstoqueRepo) AtualizarSaldo(ctx context.Context, variacaoID int64, quantidade int64, precoCusto *decimal.Decimal) error {
	query := `UPDATE estoque_variacoes SET quantidade = $2, preco_custo = $3 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, variacaoID, quantidade, precoCusto)
	if err != nil {
		return fmt.Errorf("atualizar saldo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
