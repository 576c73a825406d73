package postgres

import (
	"context"
	"fmt"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

var _ repository.MarcaRepository = (*MarcaRepo)(nil)

// MarcaRepo implementação de MarcaRepository sobre PostgreSQL.
type MarcaRepo struct {
	q Querier
}

func NewMarcaRepository(q Querier) *MarcaRepo {
	return &MarcaRepo{q: q}
}

func (r *MarcaRepo) Criar(ctx context.Context, nome string) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `INSERT INTO marcas (nome) VALUES ($1) RETURNING id`, nome).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicado
		}
		return 0, fmt.Errorf("criar marca: %w", err)
	}
	return id, nil
}

func (r *MarcaRepo) Atualizar(ctx context.Context, m *entity.Marca) error {
	tag, err := r.q.Exec(ctx, `UPDATE marcas SET nome = $2 WHERE id = $1`, m.ID, m.Nome)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("atualizar marca: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Deletar remove a marca. Modelos vinculados impedem a remoção (FK RESTRICT).
func (r *MarcaRepo) Deletar(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM marcas WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmUso
		}
		return fmt.Errorf("deletar marca: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

func (r *MarcaRepo) Listar(ctx context.Context) ([]entity.Marca, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome FROM marcas ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("listar marcas: %w", err)
	}
	defer rows.Close()
	var list []entity.Marca
	for rows.Next() {
		var m entity.Marca
		if err := rows.Scan(&m.ID, &m.Nome); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
