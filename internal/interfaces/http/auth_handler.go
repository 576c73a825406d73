package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/auth"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
)

// AuthHandler maneja o login do PDV e do painel admin.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Login por username e senha
// @Description  Aceita JSON ou form-urlencoded. Emite JWT com user_id, username e role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /token [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Codigo: "ENTRADA_INVALIDA", Mensagem: "username e password são obrigatórios"})
	}
	token, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(token)
}
