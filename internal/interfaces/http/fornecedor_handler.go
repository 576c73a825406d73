package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/catalogo"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
)

// FornecedorHandler maneja o CRUD de fornecedores (admin).
type FornecedorHandler struct {
	uc *catalogo.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *catalogo.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Criar godoc
// @Summary  Criar fornecedor
// @Tags     fornecedores
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.FornecedorRequest  true  "nome, contato_telefone, contato_email"
// @Success  201   {object}  dto.MensagemResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /fornecedores [post]
func (h *FornecedorHandler) Criar(c *fiber.Ctx) error {
	var in dto.FornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if _, err := h.uc.Criar(c.Context(), in); err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "fornecedor criado"})
}

// Listar godoc
// @Summary  Listar fornecedores
// @Tags     fornecedores
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.FornecedorResponse
// @Router   /fornecedores [get]
func (h *FornecedorHandler) Listar(c *fiber.Ctx) error {
	fornecedores, err := h.uc.Listar(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(fornecedores)
}

// Atualizar godoc
// @Summary  Atualizar fornecedor
// @Tags     fornecedores
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int                    true  "id do fornecedor"
// @Param    body  body  dto.FornecedorRequest  true  "dados do fornecedor"
// @Success  200   {object}  dto.MensagemResponse
// @Failure  404   {object}  dto.ErrorResponse
// @Router   /fornecedores/{id} [put]
func (h *FornecedorHandler) Atualizar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	var in dto.FornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.Atualizar(c.Context(), id, in); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "fornecedor atualizado"})
}

// Deletar godoc
// @Summary  Remover fornecedor
// @Tags     fornecedores
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "id do fornecedor"
// @Success  200  {object}  dto.MensagemResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /fornecedores/{id} [delete]
func (h *FornecedorHandler) Deletar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	if err := h.uc.Deletar(c.Context(), id); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "fornecedor removido"})
}
