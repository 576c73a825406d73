package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/estoque"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
	apphttp "github.com/catalogo-inteligente/catalogo-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de TxRunner com uma única variação em memória
// ──────────────────────────────────────────────────────────────────────────────

type estoqueFake struct {
	mu         sync.Mutex
	variacaoID int64
	quantidade int64
	precoCusto *decimal.Decimal
	precoVenda decimal.Decimal
	movimentos int64
}

var (
	_ estoque.TxRunner               = (*estoqueFake)(nil)
	_ repository.EstoqueRepository   = (*estoqueFake)(nil)
	_ repository.HistoricoRepository = (*estoqueFake)(nil)
)

func (f *estoqueFake) Run(_ context.Context, fn func(repository.EstoqueRepository, repository.HistoricoRepository) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	quantidade, precoCusto, movimentos := f.quantidade, f.precoCusto, f.movimentos
	if err := fn(f, f); err != nil {
		// Rollback: restaura o estado anterior
		f.quantidade = quantidade
		f.precoCusto = precoCusto
		f.movimentos = movimentos
		return err
	}
	return nil
}

func (f *estoqueFake) ObterParaAtualizar(_ context.Context, variacaoID int64) (*entity.SaldoVariacao, error) {
	if variacaoID != f.variacaoID {
		return nil, domain.ErrNaoEncontrado
	}
	return &entity.SaldoVariacao{
		VariacaoID: variacaoID,
		Quantidade: f.quantidade,
		PrecoCusto: f.precoCusto,
		PrecoVenda: f.precoVenda,
	}, nil
}

func (f *estoqueFake) AtualizarSaldo(_ context.Context, _ int64, quantidade int64, precoCusto *decimal.Decimal) error {
	f.quantidade = quantidade
	f.precoCusto = precoCusto
	return nil
}

func (f *estoqueFake) Registrar(_ context.Context, m *entity.MovimentoEstoque) error {
	f.movimentos++
	m.ID = f.movimentos
	return nil
}

// buildPDVApp monta as rotas do PDV como o router de produção: compra antes do
// coringa :acao, ambas atrás do AuthMiddleware.
func buildPDVApp(fake *estoqueFake) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewPDVHandler(estoque.NewMovimentarEstoqueUseCase(fake))
	pdv := app.Group("/estoque", apphttp.AuthMiddleware(testJWTSecret))
	pdv.Post("/:variacao_id/compra", handler.Comprar)
	pdv.Post("/:variacao_id/:acao", handler.Movimentar)
	return app
}

func doPost(t *testing.T, app *fiber.App, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func novaFake(quantidade int64) *estoqueFake {
	custo := decimal.RequireFromString("2.50")
	return &estoqueFake{
		variacaoID: 42,
		quantidade: quantidade,
		precoCusto: &custo,
		precoVenda: decimal.RequireFromString("9.99"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /estoque/:variacao_id/:acao
// ──────────────────────────────────────────────────────────────────────────────

func TestPDV_DecrementarRegistraVenda(t *testing.T) {
	fake := novaFake(5)
	app := buildPDVApp(fake)

	resp := doPost(t, app, "/estoque/42/decrementar", tokenParaRole(t, entity.RoleAtendente), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "venda registrada", body["mensagem"])
	assert.Equal(t, float64(4), body["nova_quantidade"], "sem corpo, o delta é 1")
	assert.Equal(t, int64(4), fake.quantidade)
}

func TestPDV_DecrementarComQuantidade(t *testing.T) {
	fake := novaFake(5)
	app := buildPDVApp(fake)

	resp := doPost(t, app, "/estoque/42/decrementar", tokenParaRole(t, entity.RoleAtendente),
		map[string]interface{}{"quantidade": 3})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, float64(2), body["nova_quantidade"])
}

func TestPDV_IncrementarRegistraReposicao(t *testing.T) {
	fake := novaFake(5)
	app := buildPDVApp(fake)

	resp := doPost(t, app, "/estoque/42/incrementar", tokenParaRole(t, entity.RoleAtendente), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "reposição registrada", body["mensagem"])
	assert.Equal(t, float64(6), body["nova_quantidade"])
}

func TestPDV_EstoqueInsuficienteRetorna400(t *testing.T) {
	fake := novaFake(0)
	app := buildPDVApp(fake)

	resp := doPost(t, app, "/estoque/42/decrementar", tokenParaRole(t, entity.RoleAtendente), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "ESTOQUE_INSUFICIENTE", body["codigo"],
		"estoque insuficiente tem código próprio, distinto de entrada inválida")
	assert.Equal(t, int64(0), fake.quantidade)
}

func TestPDV_AcaoDesconhecidaRetorna400(t *testing.T) {
	fake := novaFake(5)
	app := buildPDVApp(fake)

	resp := doPost(t, app, "/estoque/42/zerar", tokenParaRole(t, entity.RoleAtendente), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "ACAO_INVALIDA", body["codigo"])
}

func TestPDV_VariacaoInexistenteRetorna404(t *testing.T) {
	fake := novaFake(5)
	app := buildPDVApp(fake)

	resp := doPost(t, app, "/estoque/999/decrementar", tokenParaRole(t, entity.RoleAtendente), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "NAO_ENCONTRADO", body["codigo"])
}

func TestPDV_SemTokenRetorna401(t *testing.T) {
	fake := novaFake(5)
	app := buildPDVApp(fake)

	resp := doPost(t, app, "/estoque/42/decrementar", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int64(5), fake.quantidade, "sem autenticação, nada muda")
}

func TestPDV_IDInvalidoRetorna400(t *testing.T) {
	fake := novaFake(5)
	app := buildPDVApp(fake)

	resp := doPost(t, app, "/estoque/abc/decrementar", tokenParaRole(t, entity.RoleAtendente), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /estoque/:variacao_id/compra
// ──────────────────────────────────────────────────────────────────────────────

func TestPDV_CompraRecalculaCustoMedio(t *testing.T) {
	// 5 unidades a 2.50 + lote de 5 a 4.50 -> média 3.50
	fake := novaFake(5)
	app := buildPDVApp(fake)

	resp := doPost(t, app, "/estoque/42/compra", tokenParaRole(t, entity.RoleAtendente),
		map[string]interface{}{"quantidade": 5, "custo_unitario": "4.50"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "compra registrada", body["mensagem"])
	assert.Equal(t, float64(10), body["nova_quantidade"])
	assert.Equal(t, "3.5", body["novo_custo_medio"], "shopspring serializa sem zeros à direita")

	require.NotNil(t, fake.precoCusto)
	assert.True(t, decimal.RequireFromString("3.50").Equal(*fake.precoCusto))
}

func TestPDV_CompraComCustoNegativoRetorna400(t *testing.T) {
	fake := novaFake(5)
	app := buildPDVApp(fake)

	resp := doPost(t, app, "/estoque/42/compra", tokenParaRole(t, entity.RoleAtendente),
		map[string]interface{}{"quantidade": 5, "custo_unitario": "-1.00"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "ENTRADA_INVALIDA", body["codigo"])
	assert.Equal(t, int64(5), fake.quantidade)
}

func TestPDV_CompraNaoEngolidaPeloCoringa(t *testing.T) {
	// "compra" compartilha o prefixo da rota /:variacao_id/:acao; a ordem de
	// registro garante que cai no handler certo.
	fake := novaFake(0)
	app := buildPDVApp(fake)

	resp := doPost(t, app, "/estoque/42/compra", tokenParaRole(t, entity.RoleAtendente),
		map[string]interface{}{"quantidade": 2, "custo_unitario": "1.00"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "compra registrada", body["mensagem"],
		"a rota de compra não pode cair no coringa de ação")
}
