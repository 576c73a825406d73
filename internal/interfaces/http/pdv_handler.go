package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/estoque"
)

// Ações de movimento aceitas na rota do PDV.
const (
	acaoIncrementar = "incrementar"
	acaoDecrementar = "decrementar"
)

// PDVHandler maneja as mutações de estoque do ponto de venda (protegido).
type PDVHandler struct {
	uc *estoque.MovimentarEstoqueUseCase
}

// NewPDVHandler constrói o handler.
func NewPDVHandler(uc *estoque.MovimentarEstoqueUseCase) *PDVHandler {
	return &PDVHandler{uc: uc}
}

// Movimentar godoc
// @Summary      Incrementar ou decrementar o estoque de uma variação
// @Description  Decrementar registra uma venda (congela preço e custo no histórico);
//
//	incrementar registra uma reposição simples, sem contexto econômico.
//	Quantidade ausente ou zero equivale a 1.
//
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        variacao_id  path  int                      true  "id da variação"
// @Param        acao         path  string                   true  "incrementar | decrementar"
// @Param        body         body  dto.MovimentoPDVRequest  false "quantidade (default 1)"
// @Success      200  {object}  dto.MovimentoPDVResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /estoque/{variacao_id}/{acao} [post]
func (h *PDVHandler) Movimentar(c *fiber.Ctx) error {
	variacaoID, err := paramID(c, "variacao_id")
	if err != nil {
		return respostaErro(c, err)
	}
	acao := c.Params("acao")
	if acao != acaoIncrementar && acao != acaoDecrementar {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "ACAO_INVALIDA", Mensagem: "ação deve ser incrementar ou decrementar"})
	}

	var in dto.MovimentoPDVRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return corpoInvalido(c)
		}
	}
	quantidade := in.Quantidade
	if quantidade == 0 {
		quantidade = 1
	}

	auth := autorizacaoDoContexto(c)
	var resultado *estoque.ResultadoMovimento
	var mensagem string
	if acao == acaoDecrementar {
		resultado, err = h.uc.Vender(c.Context(), auth, variacaoID, quantidade)
		mensagem = "venda registrada"
	} else {
		resultado, err = h.uc.Repor(c.Context(), auth, variacaoID, quantidade)
		mensagem = "reposição registrada"
	}
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MovimentoPDVResponse{
		Mensagem:       mensagem,
		NovaQuantidade: resultado.NovaQuantidade,
	})
}

// Comprar godoc
// @Summary      Registrar compra de um lote
// @Description  Incrementa o estoque e recalcula o custo médio ponderado da variação.
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        variacao_id  path  int                true  "id da variação"
// @Param        body         body  dto.CompraRequest  true  "quantidade, custo_unitario"
// @Success      200  {object}  dto.CompraResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /estoque/{variacao_id}/compra [post]
func (h *PDVHandler) Comprar(c *fiber.Ctx) error {
	variacaoID, err := paramID(c, "variacao_id")
	if err != nil {
		return respostaErro(c, err)
	}
	var in dto.CompraRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	resultado, err := h.uc.Comprar(c.Context(), autorizacaoDoContexto(c), variacaoID, in.Quantidade, in.CustoUnitario)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.CompraResponse{
		Mensagem:       "compra registrada",
		NovaQuantidade: resultado.NovaQuantidade,
		NovoCustoMedio: resultado.NovoCustoMedio,
	})
}
