package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

func (r *UsuarioRepo) ObterPorUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	query := `SELECT id, username, senha_hash, role FROM usuarios WHERE username = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.SenhaHash, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUsuarioNaoEncontrado
		}
		return nil, fmt.Errorf("obter usuário: %w", err)
	}
	return &u, nil
}
