package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/catalogo"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
)

// ProdutoHandler maneja o CRUD de produtos, suas variações e a associação
// com fornecedores (admin).
type ProdutoHandler struct {
	uc         *catalogo.ProdutoUseCase
	variacaoUC *catalogo.VariacaoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *catalogo.ProdutoUseCase, variacaoUC *catalogo.VariacaoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc, variacaoUC: variacaoUC}
}

// Criar godoc
// @Summary  Criar produto
// @Tags     produtos
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    body  body  dto.ProdutoRequest  true  "nome, tipo, material, preco_venda, id_modelo_celular"
// @Success  201   {object}  dto.MensagemResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Router   /produtos [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.ProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if _, err := h.uc.Criar(c.Context(), in); err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "produto criado"})
}

// Listar godoc
// @Summary  Listar produtos
// @Tags     produtos
// @Security Bearer
// @Produce  json
// @Success  200  {array}  dto.ProdutoResponse
// @Router   /produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	produtos, err := h.uc.Listar(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(produtos)
}

// Detalhes godoc
// @Summary  Detalhe de produto para edição
// @Tags     produtos
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "id do produto"
// @Success  200  {object}  dto.ProdutoAdminResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /produtos/{id} [get]
func (h *ProdutoHandler) Detalhes(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	produto, err := h.uc.Detalhes(c.Context(), id)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(produto)
}

// Atualizar godoc
// @Summary  Atualizar produto
// @Tags     produtos
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int                 true  "id do produto"
// @Param    body  body  dto.ProdutoRequest  true  "dados do produto"
// @Success  200   {object}  dto.MensagemResponse
// @Failure  404   {object}  dto.ErrorResponse
// @Router   /produtos/{id} [put]
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	var in dto.ProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.Atualizar(c.Context(), id, in); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "produto atualizado"})
}

// Deletar godoc
// @Summary  Remover produto
// @Description  Produtos com variações de estoque não podem ser removidos.
// @Tags     produtos
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "id do produto"
// @Success  200  {object}  dto.MensagemResponse
// @Failure  400  {object}  dto.ErrorResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /produtos/{id} [delete]
func (h *ProdutoHandler) Deletar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	if err := h.uc.Deletar(c.Context(), id); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "produto removido"})
}

// ListarVariacoes godoc
// @Summary  Listar variações de um produto
// @Tags     produtos
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "id do produto"
// @Success  200  {array}   dto.VariacaoResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /produtos/{id}/variacoes [get]
func (h *ProdutoHandler) ListarVariacoes(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	variacoes, err := h.variacaoUC.ListarPorProduto(c.Context(), id)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(variacoes)
}

// ListarFornecedores godoc
// @Summary  Listar fornecedores de um produto
// @Tags     produtos
// @Security Bearer
// @Produce  json
// @Param    id  path  int  true  "id do produto"
// @Success  200  {array}  dto.FornecedorResponse
// @Router   /produtos/{id}/fornecedores [get]
func (h *ProdutoHandler) ListarFornecedores(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	fornecedores, err := h.uc.ListarFornecedores(c.Context(), id)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(fornecedores)
}

// AssociarFornecedor godoc
// @Summary  Associar fornecedor ao produto
// @Tags     produtos
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id    path  int                              true  "id do produto"
// @Param    body  body  dto.AssociacaoFornecedorRequest  true  "id_fornecedor"
// @Success  201   {object}  dto.MensagemResponse
// @Failure  400   {object}  dto.ErrorResponse
// @Failure  404   {object}  dto.ErrorResponse
// @Router   /produtos/{id}/fornecedores [post]
func (h *ProdutoHandler) AssociarFornecedor(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	var in dto.AssociacaoFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.AssociarFornecedor(c.Context(), id, in); err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemResponse{Mensagem: "fornecedor associado"})
}

// DesassociarFornecedor godoc
// @Summary  Desassociar fornecedor do produto
// @Tags     produtos
// @Security Bearer
// @Produce  json
// @Param    id             path  int  true  "id do produto"
// @Param    fornecedor_id  path  int  true  "id do fornecedor"
// @Success  200  {object}  dto.MensagemResponse
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /produtos/{id}/fornecedores/{fornecedor_id} [delete]
func (h *ProdutoHandler) DesassociarFornecedor(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respostaErro(c, err)
	}
	fornecedorID, err := paramID(c, "fornecedor_id")
	if err != nil {
		return respostaErro(c, err)
	}
	if err := h.uc.DesassociarFornecedor(c.Context(), id, fornecedorID); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "fornecedor desassociado"})
}
