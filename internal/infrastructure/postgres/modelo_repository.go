package postgres

import (
	"context"
	"fmt"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

var _ repository.ModeloRepository = (*ModeloRepo)(nil)

// ModeloRepo implementação de ModeloRepository sobre PostgreSQL.
type ModeloRepo struct {
	q Querier
}

func NewModeloRepository(q Querier) *ModeloRepo {
	return &ModeloRepo{q: q}
}

func (r *ModeloRepo) Criar(ctx context.Context, m *entity.ModeloCelular) (int64, error) {
	query := `INSERT INTO modelos_celular (id_marca, nome_modelo) VALUES ($1, $2) RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, m.IDMarca, m.NomeModelo).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrEntradaInvalida
		}
		return 0, fmt.Errorf("criar modelo: %w", err)
	}
	return id, nil
}

func (r *ModeloRepo) Atualizar(ctx context.Context, m *entity.ModeloCelular) error {
	query := `UPDATE modelos_celular SET id_marca = $2, nome_modelo = $3 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, m.ID, m.IDMarca, m.NomeModelo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrEntradaInvalida
		}
		return fmt.Errorf("atualizar modelo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

func (r *ModeloRepo) Deletar(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM modelos_celular WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmUso
		}
		return fmt.Errorf("deletar modelo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

func (r *ModeloRepo) Listar(ctx context.Context) ([]entity.ModeloResumo, error) {
	query := `
		SELECT m.id, m.nome_modelo, b.nome
		FROM modelos_celular m
		JOIN marcas b ON m.id_marca = b.id
		ORDER BY b.nome, m.nome_modelo`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar modelos: %w", err)
	}
	defer rows.Close()
	var list []entity.ModeloResumo
	for rows.Next() {
		var m entity.ModeloResumo
		if err := rows.Scan(&m.ID, &m.NomeModelo, &m.MarcaNome); err != nil {
			return nil, fmt.Errorf("scan modelo: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// BuscarNomes autocomplete de "Marca Modelo" para a busca pública.
func (r *ModeloRepo) BuscarNomes(ctx context.Context, termo string, limite int) ([]string, error) {
	query := `
		SELECT CONCAT(b.nome, ' ', m.nome_modelo) AS nome_completo
		FROM modelos_celular m
		JOIN marcas b ON m.id_marca = b.id
		WHERE CONCAT(b.nome, ' ', m.nome_modelo) ILIKE $1
		ORDER BY nome_completo
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, "%"+termo+"%", limite)
	if err != nil {
		return nil, fmt.Errorf("buscar nomes de modelo: %w", err)
	}
	defer rows.Close()
	var nomes []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan nome de modelo: %w", err)
		}
		nomes = append(nomes, n)
	}
	return nomes, rows.Err()
}
