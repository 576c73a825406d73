package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/estoque"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/pkg/jwt"
)

// Locals keys do usuário autenticado em Fiber.
const (
	LocalUsuarioID = "usuario_id"
	LocalUsername  = "username"
	LocalRole      = "role"
)

// AuthMiddleware valida o Bearer Token JWT e extrai usuário e role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "TOKEN_AUSENTE", Mensagem: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "TOKEN_INVALIDO", Mensagem: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "TOKEN_AUSENTE", Mensagem: "token vazio"})
		}
		usuarioID, username, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Codigo: "TOKEN_INVALIDO", Mensagem: "token inválido ou expirado"})
		}
		c.Locals(LocalUsuarioID, usuarioID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireAdmin exige role admin (depois do AuthMiddleware).
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Codigo: "ACESSO_NEGADO", Mensagem: "permissão de administrador necessária"})
		}
		return c.Next()
	}
}

// GetUsuarioID devolve o id do usuário do contexto (depois do middleware de auth).
func GetUsuarioID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUsuarioID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetRole devolve a role do usuário do contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// autorizacaoDoContexto monta a capacidade do usuário para os casos de uso de
// mutação de estoque.
func autorizacaoDoContexto(c *fiber.Ctx) estoque.Autorizacao {
	return estoque.Autorizacao{UsuarioID: GetUsuarioID(c), Role: GetRole(c)}
}
