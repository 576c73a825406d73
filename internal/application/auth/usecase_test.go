package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/auth"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	pkgjwt "github.com/catalogo-inteligente/catalogo-api/pkg/jwt"
)

type usuarioRepoFake struct {
	usuarios map[string]*entity.Usuario
}

func (f *usuarioRepoFake) ObterPorUsername(_ context.Context, username string) (*entity.Usuario, error) {
	u, ok := f.usuarios[username]
	if !ok {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	return u, nil
}

const senhaTeste = "s3nh4-forte"

func novoAuthUC(t *testing.T) (*auth.AuthUseCase, auth.JWTConfig) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senhaTeste), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &usuarioRepoFake{usuarios: map[string]*entity.Usuario{
		"maria": {ID: 7, Username: "maria", SenhaHash: string(hash), Role: entity.RoleAtendente},
	}}
	cfg := auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "catalogo-api-test"}
	return auth.NewAuthUseCase(repo, cfg), cfg
}

func TestLogin_EmiteTokenComClaimsDoUsuario(t *testing.T) {
	uc, cfg := novoAuthUC(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: senhaTeste})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	userID, username, role, err := pkgjwt.Parse(cfg.Secret, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID, "o id numérico do usuário viaja no token")
	assert.Equal(t, "maria", username)
	assert.Equal(t, entity.RoleAtendente, role)
}

func TestLogin_SenhaIncorreta(t *testing.T) {
	uc, _ := novoAuthUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)
}

func TestLogin_UsuarioInexistenteNaoVazaDiferenca(t *testing.T) {
	uc, _ := novoAuthUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "fantasma", Password: senhaTeste})
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado,
		"usuário inexistente responde igual a senha incorreta")
	assert.NotErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
}
