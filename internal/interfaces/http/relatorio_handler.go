package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/relatorios"
)

// RelatorioHandler maneja os relatórios e o dashboard (admin).
type RelatorioHandler struct {
	uc *relatorios.UseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorios.UseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// periodoQuery lê inicio/fim (AAAA-MM-DD) da query string; nil quando ausentes.
func periodoQuery(c *fiber.Ctx) (inicio, fim *time.Time, err error) {
	if s := c.Query("inicio"); s != "" {
		t, e := time.Parse("2006-01-02", s)
		if e != nil {
			return nil, nil, e
		}
		inicio = &t
	}
	if s := c.Query("fim"); s != "" {
		t, e := time.Parse("2006-01-02", s)
		if e != nil {
			return nil, nil, e
		}
		fim = &t
	}
	return inicio, fim, nil
}

// Movimentacoes godoc
// @Summary  Relatório de movimentações do PDV
// @Tags     relatorios
// @Security Bearer
// @Produce  json
// @Param    inicio  query  string  false  "data inicial (AAAA-MM-DD); default fim-6 dias"
// @Param    fim     query  string  false  "data final (AAAA-MM-DD); default hoje"
// @Success  200  {array}   dto.MovimentacaoPDVResponse
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /relatorios/movimentacoes-pdv [get]
func (h *RelatorioHandler) Movimentacoes(c *fiber.Ctx) error {
	inicio, fim, err := periodoQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "ENTRADA_INVALIDA", Mensagem: "datas no formato AAAA-MM-DD"})
	}
	linhas, err := h.uc.Movimentacoes(c.Context(), inicio, fim)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(linhas)
}

// MovimentacoesPDF godoc
// @Summary  Relatório de movimentações do PDV em PDF
// @Tags     relatorios
// @Security Bearer
// @Produce  application/pdf
// @Param    inicio  query  string  false  "data inicial (AAAA-MM-DD)"
// @Param    fim     query  string  false  "data final (AAAA-MM-DD)"
// @Success  200  {file}    binary
// @Failure  400  {object}  dto.ErrorResponse
// @Router   /relatorios/movimentacoes-pdv/pdf [get]
func (h *RelatorioHandler) MovimentacoesPDF(c *fiber.Ctx) error {
	inicio, fim, err := periodoQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "ENTRADA_INVALIDA", Mensagem: "datas no formato AAAA-MM-DD"})
	}
	pdfBytes, err := h.uc.MovimentacoesPDF(c.Context(), inicio, fim)
	if err != nil {
		return respostaErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimentacoes-pdv.pdf"`)
	return c.Send(pdfBytes)
}

// Metricas godoc
// @Summary  Métricas financeiras dos últimos 7 dias
// @Tags     relatorios
// @Security Bearer
// @Produce  json
// @Success  200  {object}  dto.MetricasFinanceirasResponse
// @Router   /relatorios/dashboard/metricas-financeiras [get]
func (h *RelatorioHandler) Metricas(c *fiber.Ctx) error {
	metricas, err := h.uc.Metricas(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(metricas)
}

// VendasPorDia godoc
// @Summary  Faturação diária dos últimos 7 dias
// @Tags     relatorios
// @Security Bearer
// @Produce  json
// @Success  200  {object}  dto.VendasDiariasResponse
// @Router   /relatorios/dashboard/vendas-por-dia [get]
func (h *RelatorioHandler) VendasPorDia(c *fiber.Ctx) error {
	vendas, err := h.uc.VendasPorDia(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(vendas)
}

// TopProdutos godoc
// @Summary  Top 5 variações mais vendidas
// @Tags     relatorios
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.TopProdutoResponse
// @Router   /relatorios/dashboard/top-produtos [get]
func (h *RelatorioHandler) TopProdutos(c *fiber.Ctx) error {
	top, err := h.uc.TopProdutos(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(top)
}
