package estoque_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/estoque"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake transacional em memória
//
// Emula a semântica que o motor de estoque exige do Postgres: bloqueio de fila
// por variação em ObterParaAtualizar, escritas encenadas que só se tornam
// visíveis no commit, e descarte completo quando a função da transação retorna
// erro. As travas por variação fazem transações concorrentes sobre a mesma
// variação serializarem, como o SELECT ... FOR UPDATE faria.
// ──────────────────────────────────────────────────────────────────────────────

type saldoMem struct {
	quantidade int64
	precoCusto *decimal.Decimal
	precoVenda decimal.Decimal
}

type lojaMem struct {
	mu        sync.Mutex
	saldos    map[int64]saldoMem
	travas    map[int64]*sync.Mutex
	historico []entity.MovimentoEstoque
	proximoID int64

	falhaRegistrar error // injetada para testar rollback
}

func novaLoja() *lojaMem {
	return &lojaMem{
		saldos: make(map[int64]saldoMem),
		travas: make(map[int64]*sync.Mutex),
	}
}

func (l *lojaMem) definirSaldo(variacaoID int64, s saldoMem) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.saldos[variacaoID] = s
	if _, ok := l.travas[variacaoID]; !ok {
		l.travas[variacaoID] = &sync.Mutex{}
	}
}

func (l *lojaMem) saldo(variacaoID int64) saldoMem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.saldos[variacaoID]
}

func (l *lojaMem) movimentos() []entity.MovimentoEstoque {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entity.MovimentoEstoque, len(l.historico))
	copy(out, l.historico)
	return out
}

// txMem é a visão de uma transação: leituras no estado commitado, escritas
// encenadas até o commit.
type txMem struct {
	loja       *lojaMem
	travadas   []*sync.Mutex
	saldos     map[int64]saldoMem
	movimentos []entity.MovimentoEstoque
}

var (
	_ repository.EstoqueRepository   = (*txMem)(nil)
	_ repository.HistoricoRepository = (*txMem)(nil)
)

func (t *txMem) ObterParaAtualizar(_ context.Context, variacaoID int64) (*entity.SaldoVariacao, error) {
	t.loja.mu.Lock()
	trava, existe := t.loja.travas[variacaoID]
	t.loja.mu.Unlock()
	if !existe {
		return nil, domain.ErrNaoEncontrado
	}

	trava.Lock()
	t.travadas = append(t.travadas, trava)

	s := t.loja.saldo(variacaoID)
	return &entity.SaldoVariacao{
		VariacaoID: variacaoID,
		Quantidade: s.quantidade,
		PrecoCusto: s.precoCusto,
		PrecoVenda: s.precoVenda,
	}, nil
}

func (t *txMem) AtualizarSaldo(_ context.Context, variacaoID, quantidade int64, precoCusto *decimal.Decimal) error {
	atual := t.loja.saldo(variacaoID)
	atual.quantidade = quantidade
	atual.precoCusto = precoCusto
	t.saldos[variacaoID] = atual
	return nil
}

func (t *txMem) Registrar(_ context.Context, m *entity.MovimentoEstoque) error {
	t.loja.mu.Lock()
	falha := t.loja.falhaRegistrar
	t.loja.proximoID++
	m.ID = t.loja.proximoID
	t.loja.mu.Unlock()
	if falha != nil {
		return falha
	}
	m.DataHora = time.Now()
	t.movimentos = append(t.movimentos, *m)
	return nil
}

// txRunnerMem implementa estoque.TxRunner sobre a loja em memória.
type txRunnerMem struct {
	loja *lojaMem
}

func (r *txRunnerMem) Run(ctx context.Context, fn func(repository.EstoqueRepository, repository.HistoricoRepository) error) error {
	tx := &txMem{loja: r.loja, saldos: make(map[int64]saldoMem)}
	defer func() {
		for _, trava := range tx.travadas {
			trava.Unlock()
		}
	}()

	if err := fn(tx, tx); err != nil {
		return err
	}

	// Commit: torna as escritas encenadas visíveis de uma vez
	r.loja.mu.Lock()
	for id, s := range tx.saldos {
		r.loja.saldos[id] = s
	}
	r.loja.historico = append(r.loja.historico, tx.movimentos...)
	r.loja.mu.Unlock()
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const variacaoTeste = int64(42)

var authAtendente = estoque.Autorizacao{UsuarioID: 7, Role: entity.RoleAtendente}

func novoCenario(t *testing.T, quantidade int64, precoCusto *decimal.Decimal, precoVenda string) (*estoque.MovimentarEstoqueUseCase, *lojaMem) {
	t.Helper()
	loja := novaLoja()
	loja.definirSaldo(variacaoTeste, saldoMem{
		quantidade: quantidade,
		precoCusto: precoCusto,
		precoVenda: dec(t, precoVenda),
	})
	return estoque.NewMovimentarEstoqueUseCase(&txRunnerMem{loja: loja}), loja
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := dec(t, s)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Compra
// ──────────────────────────────────────────────────────────────────────────────

func TestComprar_PrimeiraCompraDefineCusto(t *testing.T) {
	// Estoque pré-existente sem base de custo: a primeira compra define o
	// custo médio como o custo do lote, a quantidade antiga não dilui.
	uc, loja := novoCenario(t, 10, nil, "9.99")

	res, err := uc.Comprar(context.Background(), authAtendente, variacaoTeste, 5, dec(t, "2.00"))
	require.NoError(t, err)

	assert.Equal(t, int64(15), res.NovaQuantidade)
	assert.True(t, dec(t, "2.00").Equal(res.NovoCustoMedio),
		"custo médio esperado 2.00, obtido %s", res.NovoCustoMedio)

	s := loja.saldo(variacaoTeste)
	assert.Equal(t, int64(15), s.quantidade)
	require.NotNil(t, s.precoCusto)
	assert.True(t, dec(t, "2.00").Equal(*s.precoCusto))

	movs := loja.movimentos()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimentoIncremento, movs[0].Tipo)
	assert.Equal(t, int64(5), movs[0].QuantidadeAlterada)
	assert.Equal(t, int64(15), movs[0].NovaQuantidade)
	assert.Nil(t, movs[0].PrecoVendaMomento, "compra não congela preço de venda")
	require.NotNil(t, movs[0].PrecoCustoMomento)
	assert.True(t, dec(t, "2.00").Equal(*movs[0].PrecoCustoMomento),
		"histórico registra o custo do lote")
}

func TestComprar_SegundaCompraPonderaMedia(t *testing.T) {
	uc, loja := novoCenario(t, 15, decPtr(t, "2.00"), "9.99")

	res, err := uc.Comprar(context.Background(), authAtendente, variacaoTeste, 5, dec(t, "4.00"))
	require.NoError(t, err)

	assert.Equal(t, int64(20), res.NovaQuantidade)
	assert.True(t, dec(t, "2.50").Equal(res.NovoCustoMedio),
		"(15*2.00 + 5*4.00)/20 = 2.50, obtido %s", res.NovoCustoMedio)

	movs := loja.movimentos()
	require.Len(t, movs, 1)
	require.NotNil(t, movs[0].PrecoCustoMomento)
	assert.True(t, dec(t, "4.00").Equal(*movs[0].PrecoCustoMomento),
		"histórico registra o custo do lote, não a média resultante")
}

func TestComprar_EntradaInvalida(t *testing.T) {
	uc, loja := novoCenario(t, 10, nil, "9.99")

	_, err := uc.Comprar(context.Background(), authAtendente, variacaoTeste, 0, dec(t, "2.00"))
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "quantidade zero é rejeitada")

	_, err = uc.Comprar(context.Background(), authAtendente, variacaoTeste, 5, dec(t, "-1.00"))
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "custo negativo é rejeitado")

	assert.Empty(t, loja.movimentos(), "entrada inválida não toca o histórico")
	assert.Equal(t, int64(10), loja.saldo(variacaoTeste).quantidade)
}

// ──────────────────────────────────────────────────────────────────────────────
// Venda
// ──────────────────────────────────────────────────────────────────────────────

func TestVender_CongelaPrecoECusto(t *testing.T) {
	uc, loja := novoCenario(t, 20, decPtr(t, "2.50"), "9.99")

	res, err := uc.Vender(context.Background(), authAtendente, variacaoTeste, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(19), res.NovaQuantidade)

	s := loja.saldo(variacaoTeste)
	assert.Equal(t, int64(19), s.quantidade)
	require.NotNil(t, s.precoCusto)
	assert.True(t, dec(t, "2.50").Equal(*s.precoCusto), "venda não altera o custo médio")

	movs := loja.movimentos()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimentoDecremento, movs[0].Tipo)
	require.NotNil(t, movs[0].PrecoVendaMomento)
	assert.True(t, dec(t, "9.99").Equal(*movs[0].PrecoVendaMomento),
		"o preço de venda vigente fica congelado no movimento")
	require.NotNil(t, movs[0].PrecoCustoMomento)
	assert.True(t, dec(t, "2.50").Equal(*movs[0].PrecoCustoMomento),
		"o custo médio do momento fica congelado no movimento")
	assert.Equal(t, authAtendente.UsuarioID, movs[0].UsuarioID)
}

func TestVender_EstoqueInsuficiente(t *testing.T) {
	uc, loja := novoCenario(t, 0, decPtr(t, "2.50"), "9.99")

	_, err := uc.Vender(context.Background(), authAtendente, variacaoTeste, 1)
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	assert.Equal(t, int64(0), loja.saldo(variacaoTeste).quantidade, "quantidade nunca fica negativa")
	assert.Empty(t, loja.movimentos(), "venda rejeitada não entra no histórico")
}

func TestVender_NaoTruncaParaZero(t *testing.T) {
	uc, loja := novoCenario(t, 3, nil, "9.99")

	_, err := uc.Vender(context.Background(), authAtendente, variacaoTeste, 5)
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente,
		"pedir mais do que há rejeita por inteiro, não vende parcial")
	assert.Equal(t, int64(3), loja.saldo(variacaoTeste).quantidade)
}

func TestVender_VariacaoInexistente(t *testing.T) {
	uc, _ := novoCenario(t, 10, nil, "9.99")

	_, err := uc.Vender(context.Background(), authAtendente, int64(9999), 1)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reposição
// ──────────────────────────────────────────────────────────────────────────────

func TestRepor_SemContextoEconomico(t *testing.T) {
	uc, loja := novoCenario(t, 5, decPtr(t, "3.00"), "9.99")

	res, err := uc.Repor(context.Background(), authAtendente, variacaoTeste, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.NovaQuantidade)

	s := loja.saldo(variacaoTeste)
	require.NotNil(t, s.precoCusto)
	assert.True(t, dec(t, "3.00").Equal(*s.precoCusto), "reposição não mexe no custo médio")

	movs := loja.movimentos()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimentoIncremento, movs[0].Tipo)
	assert.Nil(t, movs[0].PrecoVendaMomento, "reposição não carrega preço de venda")
	assert.Nil(t, movs[0].PrecoCustoMomento, "reposição não carrega custo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorização
// ──────────────────────────────────────────────────────────────────────────────

func TestMutacoes_ExigemUsuarioAutenticado(t *testing.T) {
	uc, loja := novoCenario(t, 10, nil, "9.99")
	anonimo := estoque.Autorizacao{}

	_, err := uc.Vender(context.Background(), anonimo, variacaoTeste, 1)
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)

	_, err = uc.Repor(context.Background(), anonimo, variacaoTeste, 1)
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)

	_, err = uc.Comprar(context.Background(), anonimo, variacaoTeste, 1, dec(t, "1.00"))
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)

	assert.Empty(t, loja.movimentos())
	assert.Equal(t, int64(10), loja.saldo(variacaoTeste).quantidade)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidade
// ──────────────────────────────────────────────────────────────────────────────

func TestVender_FalhaNoHistoricoRevertesSaldo(t *testing.T) {
	uc, loja := novoCenario(t, 10, decPtr(t, "2.00"), "9.99")
	loja.falhaRegistrar = assert.AnError

	_, err := uc.Vender(context.Background(), authAtendente, variacaoTeste, 3)
	require.Error(t, err)

	assert.Equal(t, int64(10), loja.saldo(variacaoTeste).quantidade,
		"falha ao registrar o movimento reverte a escrita de saldo")
	assert.Empty(t, loja.movimentos())
}

func TestComprar_FalhaNoHistoricoReverteCusto(t *testing.T) {
	uc, loja := novoCenario(t, 10, nil, "9.99")
	loja.falhaRegistrar = assert.AnError

	_, err := uc.Comprar(context.Background(), authAtendente, variacaoTeste, 5, dec(t, "2.00"))
	require.Error(t, err)

	s := loja.saldo(variacaoTeste)
	assert.Equal(t, int64(10), s.quantidade)
	assert.Nil(t, s.precoCusto, "custo médio não muda quando a transação reverte")
}

// ──────────────────────────────────────────────────────────────────────────────
// Concorrência
// ──────────────────────────────────────────────────────────────────────────────

// N caixas tentam vender a mesma variação com K unidades em estoque: exatamente
// min(N, K) vendas commitam, as demais recebem ErrEstoqueInsuficiente e a
// quantidade final é max(K-N, 0). Sobrevenda nunca acontece.
func TestVender_ConcorrenciaNaoSobrevende(t *testing.T) {
	const (
		emEstoque = 5
		caixas    = 8
	)
	uc, loja := novoCenario(t, emEstoque, decPtr(t, "2.00"), "9.99")

	var wg sync.WaitGroup
	erros := make(chan error, caixas)
	for i := 0; i < caixas; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			auth := estoque.Autorizacao{UsuarioID: 7, Role: entity.RoleAtendente}
			_, err := uc.Vender(context.Background(), auth, variacaoTeste, 1)
			erros <- err
		}()
	}
	wg.Wait()
	close(erros)

	sucessos, insuficientes := 0, 0
	for err := range erros {
		switch {
		case err == nil:
			sucessos++
		default:
			require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
			insuficientes++
		}
	}

	assert.Equal(t, emEstoque, sucessos, "commitam exatamente as vendas que cabem no estoque")
	assert.Equal(t, caixas-emEstoque, insuficientes)
	assert.Equal(t, int64(0), loja.saldo(variacaoTeste).quantidade)
	assert.Len(t, loja.movimentos(), emEstoque, "um movimento por venda commitada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Repetição do ledger
// ──────────────────────────────────────────────────────────────────────────────

// Repetir os deltas do histórico sobre a quantidade inicial reproduz a
// quantidade final: nenhum movimento falta, nenhum sobra.
func TestHistorico_RepeteQuantidadeFinal(t *testing.T) {
	const inicial = int64(10)
	uc, loja := novoCenario(t, inicial, nil, "9.99")
	ctx := context.Background()

	_, err := uc.Comprar(ctx, authAtendente, variacaoTeste, 5, dec(t, "2.00"))
	require.NoError(t, err)
	_, err = uc.Vender(ctx, authAtendente, variacaoTeste, 3)
	require.NoError(t, err)
	_, err = uc.Repor(ctx, authAtendente, variacaoTeste, 1)
	require.NoError(t, err)
	_, err = uc.Vender(ctx, authAtendente, variacaoTeste, 7)
	require.NoError(t, err)
	_, err = uc.Vender(ctx, authAtendente, variacaoTeste, 7)
	require.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)

	repetida := inicial
	for _, m := range loja.movimentos() {
		switch m.Tipo {
		case entity.MovimentoIncremento:
			repetida += m.QuantidadeAlterada
		case entity.MovimentoDecremento:
			repetida -= m.QuantidadeAlterada
		}
		assert.Equal(t, repetida, m.NovaQuantidade,
			"nova_quantidade de cada movimento confere com a repetição")
	}
	assert.Equal(t, loja.saldo(variacaoTeste).quantidade, repetida)
}
