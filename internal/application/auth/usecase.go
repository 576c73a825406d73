package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
	"github.com/catalogo-inteligente/catalogo-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticação: login por username/senha.
// O id numérico do usuário é resolvido aqui e embutido no token, de modo que
// as operações de mutação recebem o usuário sem nova consulta por request.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica username/senha e emite um JWT com user_id, username e role.
// Retorna ErrNaoAutorizado tanto para usuário inexistente quanto para senha
// incorreta (não vaza qual dos dois falhou).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	usuario, err := uc.usuarioRepo.ObterPorUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUsuarioNaoEncontrado) {
			return nil, domain.ErrNaoAutorizado
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNaoAutorizado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Username, usuario.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
