package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/catalogo"
)

// CatalogoHandler maneja as consultas públicas do catálogo (sem auth).
type CatalogoHandler struct {
	variacaoUC *catalogo.VariacaoUseCase
}

// NewCatalogoHandler constrói o handler.
func NewCatalogoHandler(variacaoUC *catalogo.VariacaoUseCase) *CatalogoHandler {
	return &CatalogoHandler{variacaoUC: variacaoUC}
}

// Buscar godoc
// @Summary  Buscar variações no catálogo (público)
// @Tags     catalogo
// @Produce  json
// @Param    q  query  string  true  "termo de busca (Marca Modelo)"
// @Success  200  {array}  dto.VariacaoResponse
// @Router   /catalogo/search [get]
func (h *CatalogoHandler) Buscar(c *fiber.Ctx) error {
	variacoes, err := h.variacaoUC.BuscarNoCatalogo(c.Context(), c.Query("q"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(variacoes)
}

// Detalhes godoc
// @Summary  Página pública de produto a partir de uma variação
// @Tags     catalogo
// @Produce  json
// @Param    variacao_id  path  int  true  "id da variação"
// @Success  200  {object}  dto.DetalhesProdutoPublicoResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /produto/detalhes/{variacao_id} [get]
func (h *CatalogoHandler) Detalhes(c *fiber.Ctx) error {
	variacaoID, err := paramID(c, "variacao_id")
	if err != nil {
		return respostaErro(c, err)
	}
	detalhes, err := h.variacaoUC.DetalhesPublicos(c.Context(), variacaoID)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(detalhes)
}
