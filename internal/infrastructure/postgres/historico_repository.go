package postgres

import (
	"context"
	"fmt"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

var _ repository.HistoricoRepository = (*HistoricoRepo)(nil)

// HistoricoRepo implementação do ledger de movimentos sobre PostgreSQL.
// Só existe INSERT: o histórico é imutável por construção.
type HistoricoRepo struct {
	q Querier
}

// NewHistoricoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewHistoricoRepository(q Querier) *HistoricoRepo {
	return &HistoricoRepo{q: q}
}

// Registrar insere o movimento e preenche ID e DataHora atribuídos pelo banco
// (data_hora usa o relógio do servidor; a ordem por fila é garantida pelo
// bloqueio exclusivo que o caller já detém).
func (r *HistoricoRepo) Registrar(ctx context.Context, m *entity.MovimentoEstoque) error {
	query := `
		INSERT INTO historico_estoque
			(id_variacao_estoque, id_usuario, tipo_movimento, quantidade_alterada,
			 nova_quantidade_estoque, preco_venda_momento, preco_custo_momento)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, data_hora`
	err := r.q.QueryRow(ctx, query,
		m.VariacaoID, m.UsuarioID, m.Tipo, m.QuantidadeAlterada,
		m.NovaQuantidade, m.PrecoVendaMomento, m.PrecoCustoMomento,
	).Scan(&m.ID, &m.DataHora)
	if err != nil {
		if isForeignKeyViolation(err) {
			// id_usuario ou id_variacao_estoque inexistente
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("registrar movimento: %w", err)
	}
	return nil
}
