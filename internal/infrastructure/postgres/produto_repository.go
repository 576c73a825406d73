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

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL.
type ProdutoRepo struct {
	q Querier
}

func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

func (r *ProdutoRepo) Criar(ctx context.Context, p *entity.Produto) (int64, error) {
	query := `
		INSERT INTO produtos (nome, tipo, material, preco_venda, id_modelo_celular)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, p.Nome, p.Tipo, p.Material, p.PrecoVenda, p.IDModeloCelular).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrEntradaInvalida
		}
		return 0, fmt.Errorf("criar produto: %w", err)
	}
	return id, nil
}

func (r *ProdutoRepo) Atualizar(ctx context.Context, p *entity.Produto) error {
	query := `
		UPDATE produtos
		SET nome = $2, tipo = $3, material = $4, preco_venda = $5, id_modelo_celular = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.Nome, p.Tipo, p.Material, p.PrecoVenda, p.IDModeloCelular)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEntradaInvalida
		}
		return fmt.Errorf("atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Deletar remove o produto. Variações de estoque ou fornecedores associados
// impedem a remoção (FK RESTRICT).
func (r *ProdutoRepo) Deletar(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmUso
		}
		return fmt.Errorf("deletar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

func (r *ProdutoRepo) ObterPorID(ctx context.Context, id int64) (*entity.Produto, error) {
	query := `
		SELECT id, nome, tipo, material, preco_venda, id_modelo_celular
		FROM produtos WHERE id = $1`
	var p entity.Produto
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Nome, &p.Tipo, &p.Material, &p.PrecoVenda, &p.IDModeloCelular,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obter produto: %w", err)
	}
	return &p, nil
}

func (r *ProdutoRepo) Listar(ctx context.Context) ([]entity.ProdutoResumo, error) {
	query := `
		SELECT p.id, p.nome, p.tipo, p.material, p.preco_venda,
		       CONCAT(b.nome, ' ', m.nome_modelo) AS modelo_celular
		FROM produtos p
		JOIN modelos_celular m ON p.id_modelo_celular = m.id
		JOIN marcas b ON m.id_marca = b.id
		ORDER BY p.nome`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar produtos: %w", err)
	}
	defer rows.Close()
	var list []entity.ProdutoResumo
	for rows.Next() {
		var p entity.ProdutoResumo
		if err := rows.Scan(&p.ID, &p.Nome, &p.Tipo, &p.Material, &p.PrecoVenda, &p.ModeloCelular); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProdutoRepo) ListarFornecedores(ctx context.Context, produtoID int64) ([]entity.Fornecedor, error) {
	query := `
		SELECT f.id, f.nome, f.contato_telefone, f.contato_email
		FROM fornecedores f
		JOIN produtos_fornecedores pf ON pf.id_fornecedor = f.id
		WHERE pf.id_produto = $1
		ORDER BY f.nome`
	rows, err := r.q.Query(ctx, query, produtoID)
	if err != nil {
		return nil, fmt.Errorf("listar fornecedores do produto: %w", err)
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

func (r *ProdutoRepo) AssociarFornecedor(ctx context.Context, produtoID, fornecedorID int64) error {
	query := `INSERT INTO produtos_fornecedores (id_produto, id_fornecedor) VALUES ($1, $2)`
	_, err := r.q.Exec(ctx, query, produtoID, fornecedorID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("associar fornecedor: %w", err)
	}
	return nil
}

func (r *ProdutoRepo) DesassociarFornecedor(ctx context.Context, produtoID, fornecedorID int64) error {
	query := `DELETE FROM produtos_fornecedores WHERE id_produto = $1 AND id_fornecedor = $2`
	tag, err := r.q.Exec(ctx, query, produtoID, fornecedorID)
	if err != nil {
		return fmt.Errorf("desassociar fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
