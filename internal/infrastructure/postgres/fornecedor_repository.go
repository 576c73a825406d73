package postgres

import (
	"context"
	"fmt"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação de FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	q Querier
}

func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

func (r *FornecedorRepo) Criar(ctx context.Context, f *entity.Fornecedor) (int64, error) {
	query := `
		INSERT INTO fornecedores (nome, contato_telefone, contato_email)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, f.Nome, f.ContatoTelefone, f.ContatoEmail).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicado
		}
		return 0, fmt.Errorf("criar fornecedor: %w", err)
	}
	return id, nil
}

func (r *FornecedorRepo) Atualizar(ctx context.Context, f *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores
		SET nome = $2, contato_telefone = $3, contato_email = $4
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, f.ID, f.Nome, f.ContatoTelefone, f.ContatoEmail)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("atualizar fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Deletar remove o fornecedor. Associações com produtos impedem a remoção
// (FK RESTRICT em produtos_fornecedores).
func (r *FornecedorRepo) Deletar(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM fornecedores WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmUso
		}
		return fmt.Errorf("deletar fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

func (r *FornecedorRepo) Listar(ctx context.Context) ([]entity.Fornecedor, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, nome, contato_telefone, contato_email FROM fornecedores ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("listar fornecedores: %w", err)
	}
	defer rows.Close()
	var list []entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.Nome, &f.ContatoTelefone, &f.ContatoEmail); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
