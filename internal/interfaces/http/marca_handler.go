package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/catalogo"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
)

// MarcaHandler maneja o CRUD de marcas (admin).
type MarcaHandler struct {
	uc *catalogo.MarcaUseCase
}

// NewMarcaHandler constrói o handler.
func NewMarcaHandler(uc *catalogo.MarcaUseCase) *MarcaHandler {
	return &MarcaHandler{uc: uc}
}

// Criar godoc
// @Summary  Criar marca
// @Tags     marcas
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.MarcaRequest  true  "nome"
// @Success  201   {object}  dto.MarcaResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /marcas [post]
func (h *MarcaHandler) Criar(c *fiber.Ctx) error {
	var in dto.MarcaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	id, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MarcaResponse{ID: id, Nome: in.Nome})
}

// Listar godoc
// @Summary  Listar marcas
// @Tags     marcas
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.MarcaResponse
// @Router   /marcas [get]
func (h *MarcaHandler) Listar(c *fiber.Ctx) error {
	marcas, err := h.uc.Listar(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(marcas)
}

// Atualizar godoc
// @Summary  Renomear marca
// @Tags     marcas
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int               true  "id da marca"
// @Param    body  body  dto.MarcaRequest  true  "nome"
// @Success  200   {object}  dto.MensagemResponse
// @Failure  404   {object}  dto.ErrorResponse
// @Router   /marcas/{id} [put]
func (h *MarcaHandler) Atualizar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	var in dto.MarcaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.Atualizar(c.Context(), id, in); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "marca atualizada"})
}

// Deletar godoc
// @Summary  Remover marca
// @Tags     marcas
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "id da marca"
// @Success  200  {object}  dto.MensagemResponse
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /marcas/{id} [delete]
func (h *MarcaHandler) Deletar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	if err := h.uc.Deletar(c.Context(), id); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "marca removida"})
}
