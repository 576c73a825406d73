package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
)

// EstoqueRepository é o armazenamento durável do saldo de uma variação
// (quantidade + custo médio). É a única porta pela qual as operações de
// mutação leem e escrevem o saldo.
type EstoqueRepository interface {
	// ObterParaAtualizar lê o saldo atual adquirindo bloqueio exclusivo de
	// fila (SELECT ... FOR UPDATE), escopado à transação corrente. Deve ser a
	// primeira leitura de dados de qualquer mutação. Retorna
	// domain.ErrNaoEncontrado se a variação não existe.
	ObterParaAtualizar(ctx context.Context, variacaoID int64) (*entity.SaldoVariacao, error)

	// AtualizarSaldo grava quantidade e custo médio em um único UPDATE.
	// O caller deve deter o bloqueio de ObterParaAtualizar na mesma transação.
	AtualizarSaldo(ctx context.Context, variacaoID int64, quantidade int64, precoCusto *decimal.Decimal) error
}

// HistoricoRepository é o ledger append-only de movimentos. Não expõe update
// nem delete: um movimento registrado é imutável (cascata apenas se a variação
// pai for removida pelo catálogo).
type HistoricoRepository interface {
	// Registrar insere o movimento na mesma transação da escrita de saldo e
	// preenche m.ID e m.DataHora com os valores atribuídos pelo banco.
	Registrar(ctx context.Context, m *entity.MovimentoEstoque) error
}
