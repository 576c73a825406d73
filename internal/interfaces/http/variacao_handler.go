package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/catalogo"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
)

// VariacaoHandler maneja o cadastro de variações de estoque (admin). As
// mutações de quantidade do PDV vivem no PDVHandler.
type VariacaoHandler struct {
	uc *catalogo.VariacaoUseCase
}

// NewVariacaoHandler constrói o handler.
func NewVariacaoHandler(uc *catalogo.VariacaoUseCase) *VariacaoHandler {
	return &VariacaoHandler{uc: uc}
}

// Criar godoc
// @Summary  Criar variação de estoque
// @Tags     variacoes
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.VariacaoRequest  true  "id_produto, cor, quantidade, disponivel_encomenda, url_foto"
// @Success  201   {object}  dto.MensagemResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /variacoes [post]
func (h *VariacaoHandler) Criar(c *fiber.Ctx) error {
	var in dto.VariacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if _, err := h.uc.Criar(c.Context(), in); err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "variação criada"})
}

// Atualizar godoc
// @Summary  Atualizar variação
// @Description  Atualiza os dados cadastrais. O custo médio não é alterado por aqui.
// @Tags     variacoes
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int                  true  "id da variação"
// @Param    body  body  dto.VariacaoRequest  true  "dados da variação"
// @Success  200   {object}  dto.MensagemResponse
// @Failure  404   {object}  dto.ErrorResponse
// @Router   /variacoes/{id} [put]
func (h *VariacaoHandler) Atualizar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	var in dto.VariacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.Atualizar(c.Context(), id, in); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "variação atualizada"})
}

// Deletar godoc
// @Summary  Remover variação
// @Description  O histórico de estoque da variação é removido em cascata.
// @Tags     variacoes
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "id da variação"
// @Success  200  {object}  dto.MensagemResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /variacoes/{id} [delete]
func (h *VariacaoHandler) Deletar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	if err := h.uc.Deletar(c.Context(), id); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "variação removida"})
}
