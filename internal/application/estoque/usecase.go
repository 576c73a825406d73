package estoque

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	domestoque "github.com/catalogo-inteligente/catalogo-api/internal/domain/estoque"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

// Autorizacao é a capacidade resolvida do usuário que executa a operação.
// As operações de mutação recebem-na explicitamente em vez de confiar na
// camada HTTP: sem usuário autenticado, nenhuma mutação acontece.
type Autorizacao struct {
	UsuarioID int64
	Role      string
}

// Autenticado informa se há um usuário resolvido por trás da operação.
func (a Autorizacao) Autenticado() bool { return a.UsuarioID > 0 }

// ResultadoMovimento é o desfecho de uma venda ou reposição commitada.
type ResultadoMovimento struct {
	MovimentoID    int64
	NovaQuantidade int64
}

// ResultadoCompra é o desfecho de uma compra commitada: além da nova
// quantidade, o novo custo médio ponderado da variação.
type ResultadoCompra struct {
	MovimentoID    int64
	NovaQuantidade int64
	NovoCustoMedio decimal.Decimal
}

// MovimentarEstoqueUseCase executa as três operações de mutação de estoque
// (Vender, Repor, Comprar) como transições atômicas: bloqueio de fila
// (SELECT FOR UPDATE) como primeiro acesso, escrita de saldo e registro no
// histórico na mesma transação, Commit ou Rollback sem estado parcial.
type MovimentarEstoqueUseCase struct {
	txRunner TxRunner
}

// NewMovimentarEstoqueUseCase constrói o caso de uso.
func NewMovimentarEstoqueUseCase(txRunner TxRunner) *MovimentarEstoqueUseCase {
	return &MovimentarEstoqueUseCase{txRunner: txRunner}
}

// Vender decrementa a quantidade da variação (venda no PDV). O movimento
// captura o preço de venda vigente do produto e o custo médio atual da
// variação — a margem fica congelada no momento da venda, não é recalculada
// se o catálogo mudar depois. Rejeita com ErrEstoqueInsuficiente quando a
// quantidade disponível é menor que a solicitada; nunca trunca para zero.
func (uc *MovimentarEstoqueUseCase) Vender(ctx context.Context, auth Autorizacao, variacaoID, quantidade int64) (*ResultadoMovimento, error) {
	if !auth.Autenticado() {
		return nil, domain.ErrNaoAutorizado
	}
	if quantidade <= 0 {
		return nil, domain.ErrEntradaInvalida
	}

	var resultado ResultadoMovimento
	err := uc.txRunner.Run(ctx, func(
		estoqueRepo repository.EstoqueRepository,
		historicoRepo repository.HistoricoRepository,
	) error {
		// Bloqueia a fila da variação antes de qualquer outra leitura
		saldo, err := estoqueRepo.ObterParaAtualizar(ctx, variacaoID)
		if err != nil {
			return err
		}
		if saldo.Quantidade < quantidade {
			return domain.ErrEstoqueInsuficiente
		}
		nova := saldo.Quantidade - quantidade
		if err := estoqueRepo.AtualizarSaldo(ctx, variacaoID, nova, saldo.PrecoCusto); err != nil {
			return err
		}
		precoVenda := saldo.PrecoVenda
		mov := &entity.MovimentoEstoque{
			VariacaoID:         variacaoID,
			UsuarioID:          auth.UsuarioID,
			Tipo:               entity.MovimentoDecremento,
			QuantidadeAlterada: quantidade,
			NovaQuantidade:     nova,
			PrecoVendaMomento:  &precoVenda,
			PrecoCustoMomento:  saldo.PrecoCusto,
		}
		if err := historicoRepo.Registrar(ctx, mov); err != nil {
			return err
		}
		resultado = ResultadoMovimento{MovimentoID: mov.ID, NovaQuantidade: nova}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resultado, nil
}

// Repor incrementa a quantidade da variação (devolução ao estoque). Reposições
// simples não carregam contexto econômico: preço e custo ficam nulos no
// histórico; o custo médio da variação não muda. Entrada com custo é Comprar.
func (uc *MovimentarEstoqueUseCase) Repor(ctx context.Context, auth Autorizacao, variacaoID, quantidade int64) (*ResultadoMovimento, error) {
	if !auth.Autenticado() {
		return nil, domain.ErrNaoAutorizado
	}
	if quantidade <= 0 {
		return nil, domain.ErrEntradaInvalida
	}

	var resultado ResultadoMovimento
	err := uc.txRunner.Run(ctx, func(
		estoqueRepo repository.EstoqueRepository,
		historicoRepo repository.HistoricoRepository,
	) error {
		saldo, err := estoqueRepo.ObterParaAtualizar(ctx, variacaoID)
		if err != nil {
			return err
		}
		nova := saldo.Quantidade + quantidade
		if err := estoqueRepo.AtualizarSaldo(ctx, variacaoID, nova, saldo.PrecoCusto); err != nil {
			return err
		}
		mov := &entity.MovimentoEstoque{
			VariacaoID:         variacaoID,
			UsuarioID:          auth.UsuarioID,
			Tipo:               entity.MovimentoIncremento,
			QuantidadeAlterada: quantidade,
			NovaQuantidade:     nova,
		}
		if err := historicoRepo.Registrar(ctx, mov); err != nil {
			return err
		}
		resultado = ResultadoMovimento{MovimentoID: mov.ID, NovaQuantidade: nova}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resultado, nil
}

// Comprar incrementa a quantidade com um lote comprado e recalcula o custo
// médio ponderado da variação. O histórico registra o custo unitário do lote
// (o que foi efetivamente pago), não o novo custo médio resultante.
func (uc *MovimentarEstoqueUseCase) Comprar(ctx context.Context, auth Autorizacao, variacaoID, quantidade int64, custoUnitario decimal.Decimal) (*ResultadoCompra, error) {
	if !auth.Autenticado() {
		return nil, domain.ErrNaoAutorizado
	}
	if quantidade <= 0 || custoUnitario.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}

	var resultado ResultadoCompra
	err := uc.txRunner.Run(ctx, func(
		estoqueRepo repository.EstoqueRepository,
		historicoRepo repository.HistoricoRepository,
	) error {
		saldo, err := estoqueRepo.ObterParaAtualizar(ctx, variacaoID)
		if err != nil {
			return err
		}
		nova := saldo.Quantidade + quantidade
		novoCusto := domestoque.CustoMedioPonderado(saldo.Quantidade, saldo.PrecoCusto, quantidade, custoUnitario)
		if err := estoqueRepo.AtualizarSaldo(ctx, variacaoID, nova, &novoCusto); err != nil {
			return err
		}
		custoLote := custoUnitario
		mov := &entity.MovimentoEstoque{
			VariacaoID:         variacaoID,
			UsuarioID:          auth.UsuarioID,
			Tipo:               entity.MovimentoIncremento,
			QuantidadeAlterada: quantidade,
			NovaQuantidade:     nova,
			PrecoCustoMomento:  &custoLote,
		}
		if err := historicoRepo.Registrar(ctx, mov); err != nil {
			return err
		}
		resultado = ResultadoCompra{MovimentoID: mov.ID, NovaQuantidade: nova, NovoCustoMedio: novoCusto}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resultado, nil
}
