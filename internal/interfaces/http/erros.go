package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
)

// respostaErro mapeia os sentinelas de domínio para códigos HTTP. Qualquer
// erro não mapeado vira 500 sem vazar detalhes internos ao cliente.
func respostaErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Codigo: "NAO_ENCONTRADO", Mensagem: "recurso não encontrado"})
	case errors.Is(err, domain.ErrUsuarioNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Codigo: "USUARIO_NAO_ENCONTRADO", Mensagem: "usuário não encontrado"})
	case errors.Is(err, domain.ErrEstoqueInsuficiente):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "ESTOQUE_INSUFICIENTE", Mensagem: "estoque insuficiente para a operação"})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "ENTRADA_INVALIDA", Mensagem: "dados inválidos"})
	case errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "DUPLICADO", Mensagem: "registro duplicado"})
	case errors.Is(err, domain.ErrEmUso):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "EM_USO", Mensagem: "registro em uso por outros cadastros"})
	case errors.Is(err, domain.ErrNaoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "NAO_AUTORIZADO", Mensagem: "credenciais inválidas"})
	case errors.Is(err, domain.ErrAcessoNegado):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Codigo: "ACESSO_NEGADO", Mensagem: "acesso negado ao recurso"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Codigo: "INTERNO", Mensagem: "erro interno"})
	}
}

// corpoInvalido resposta padrão para corpo de request mal formado.
func corpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "CORPO_INVALIDO", Mensagem: "corpo inválido"})
}

// paramID lê um parâmetro de rota como id numérico positivo.
func paramID(c *fiber.Ctx, nome string) (int64, error) {
	id, err := c.ParamsInt(nome)
	if err != nil || id <= 0 {
		return 0, domain.ErrEntradaInvalida
	}
	return int64(id), nil
}
