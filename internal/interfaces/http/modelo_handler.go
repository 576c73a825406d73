package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/catalogo"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
)

// ModeloHandler maneja o CRUD de modelos de celular (admin) e o
// autocompletar público de busca.
type ModeloHandler struct {
	uc *catalogo.ModeloUseCase
}

// NewModeloHandler constrói o handler.
func NewModeloHandler(uc *catalogo.ModeloUseCase) *ModeloHandler {
	return &ModeloHandler{uc: uc}
}

// Criar godoc
// @Summary  Criar modelo de celular
// @Tags     modelos
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.ModeloRequest  true  "nome_modelo, id_marca"
// @Success  201   {object}  dto.MensagemResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /modelos [post]
func (h *ModeloHandler) Criar(c *fiber.Ctx) error {
	var in dto.ModeloRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if _, err := h.uc.Criar(c.Context(), in); err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "modelo criado"})
}

// Listar godoc
// @Summary  Listar modelos
// @Tags     modelos
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.ModeloResponse
// @Router   /modelos [get]
func (h *ModeloHandler) Listar(c *fiber.Ctx) error {
	modelos, err := h.uc.Listar(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(modelos)
}

// Atualizar godoc
// @Summary  Atualizar modelo
// @Tags     modelos
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int                true  "id do modelo"
// @Param    body  body  dto.ModeloRequest  true  "nome_modelo, id_marca"
// @Success  200   {object}  dto.MensagemResponse
// @Failure  404   {object}  dto.ErrorResponse
// @Router   /modelos/{id} [put]
func (h *ModeloHandler) Atualizar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	var in dto.ModeloRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.Atualizar(c.Context(), id, in); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "modelo atualizado"})
}

// Deletar godoc
// @Summary  Remover modelo
// @Tags     modelos
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "id do modelo"
// @Success  200  {object}  dto.MensagemResponse
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /modelos/{id} [delete]
func (h *ModeloHandler) Deletar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	if err := h.uc.Deletar(c.Context(), id); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "modelo removido"})
}

// Buscar godoc
// @Summary  Autocompletar de modelos (público)
// @Tags     catalogo
// @Produce  json
// @Param    q  query  string  true  "termo de busca (Marca Modelo)"
// @Success  200  {array}  string
// @Router   /modelos/search [get]
func (h *ModeloHandler) Buscar(c *fiber.Ctx) error {
	nomes, err := h.uc.BuscarNomes(c.Context(), c.Query("q"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(nomes)
}
