package estoque

import (
	"context"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante a atomicidade do motor de estoque:
// escrita de saldo e registro no histórico commitam ou revertem juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		estoqueRepo repository.EstoqueRepository,
		historicoRepo repository.HistoricoRepository,
	) error) error
}
