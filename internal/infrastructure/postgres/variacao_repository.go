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

var _ repository.VariacaoRepository = (*VariacaoRepo)(nil)

// VariacaoRepo implementação de VariacaoRepository sobre PostgreSQL.
type VariacaoRepo struct {
	q Querier
}

// NewVariacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVariacaoRepository(q Querier) *VariacaoRepo {
	return &VariacaoRepo{q: q}
}

// Criar insere uma variação. Cor duplicada para o produto -> ErrDuplicado;
// produto inexistente -> ErrEntradaInvalida.
func (r *VariacaoRepo) Criar(ctx context.Context, v *entity.VariacaoEstoque) (int64, error) {
	query := `
		INSERT INTO estoque_variacoes (id_produto, cor, quantidade, disponivel_encomenda, url_foto)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, v.IDProduto, v.Cor, v.Quantidade, v.DisponivelEncomenda, v.URLFoto).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrEntradaInvalida
		}
		return 0, fmt.Errorf("criar variação: %w", err)
	}
	return id, nil
}

// Atualizar atualiza os campos cadastrais (não toca preco_custo).
func (r *VariacaoRepo) Atualizar(ctx context.Context, v *entity.VariacaoEstoque) error {
	query := `
		UPDATE estoque_variacoes
		SET cor = $2, quantidade = $3, disponivel_encomenda = $4, url_foto = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, v.ID, v.Cor, v.Quantidade, v.DisponivelEncomenda, v.URLFoto)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("atualizar variação: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Deletar remove a variação; historico_estoque cai em cascata.
func (r *VariacaoRepo) Deletar(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM estoque_variacoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deletar variação: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// ObterPorID obtém a variação crua (campos da própria tabela).
func (r *VariacaoRepo) ObterPorID(ctx context.Context, id int64) (*entity.VariacaoEstoque, error) {
	query := `
		SELECT id, id_produto, cor, quantidade, preco_custo, disponivel_encomenda, url_foto
		FROM estoque_variacoes WHERE id = $1`
	var v entity.VariacaoEstoque
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.IDProduto, &v.Cor, &v.Quantidade, &v.PrecoCusto, &v.DisponivelEncomenda, &v.URLFoto,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obter variação: %w", err)
	}
	return &v, nil
}

const selectDetalhe = `
	SELECT ev.id, ev.cor, ev.quantidade, ev.disponivel_encomenda, ev.url_foto,
	       p.nome AS produto_nome,
	       CONCAT(b.nome, ' ', m.nome_modelo) AS modelo_celular,
	       p.preco_venda
	FROM estoque_variacoes ev
	JOIN produtos p ON ev.id_produto = p.id
	JOIN modelos_celular m ON p.id_modelo_celular = m.id
	JOIN marcas b ON m.id_marca = b.id`

// ListarPorProduto lista as variações de um produto ordenadas por cor.
// Produto inexistente -> ErrNaoEncontrado (distingue de "sem variações").
func (r *VariacaoRepo) ListarPorProduto(ctx context.Context, produtoID int64) ([]repository.VariacaoDetalhe, error) {
	rows, err := r.q.Query(ctx, selectDetalhe+` WHERE ev.id_produto = $1 ORDER BY ev.cor`, produtoID)
	if err != nil {
		return nil, fmt.Errorf("listar variações: %w", err)
	}
	defer rows.Close()
	list, err := scanDetalhes(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		var existe int
		err := r.q.QueryRow(ctx, `SELECT 1 FROM produtos WHERE id = $1`, produtoID).Scan(&existe)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNaoEncontrado
		}
		if err != nil {
			return nil, fmt.Errorf("verificar produto: %w", err)
		}
	}
	return list, nil
}

// BuscarNoCatalogo busca pública por "Marca Modelo" (ILIKE, contém).
func (r *VariacaoRepo) BuscarNoCatalogo(ctx context.Context, termo string) ([]repository.VariacaoDetalhe, error) {
	query := selectDetalhe + `
		WHERE CONCAT(b.nome, ' ', m.nome_modelo) ILIKE $1
		ORDER BY ev.cor`
	rows, err := r.q.Query(ctx, query, "%"+termo+"%")
	if err != nil {
		return nil, fmt.Errorf("buscar no catálogo: %w", err)
	}
	defer rows.Close()
	return scanDetalhes(rows)
}

// ObterDetalhe obtém uma variação com produto e modelo resolvidos.
func (r *VariacaoRepo) ObterDetalhe(ctx context.Context, id int64) (*repository.VariacaoDetalhe, error) {
	var d repository.VariacaoDetalhe
	err := r.q.QueryRow(ctx, selectDetalhe+` WHERE ev.id = $1`, id).Scan(
		&d.ID, &d.Cor, &d.Quantidade, &d.DisponivelEncomenda, &d.URLFoto,
		&d.ProdutoNome, &d.ModeloCelular, &d.PrecoVenda,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("obter detalhe da variação: %w", err)
	}
	return &d, nil
}

// ListarIrmas lista todas as variações (id, cor, foto) de um produto.
func (r *VariacaoRepo) ListarIrmas(ctx context.Context, produtoID int64) ([]repository.VariacaoIrma, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, cor, url_foto FROM estoque_variacoes WHERE id_produto = $1 ORDER BY cor`, produtoID)
	if err != nil {
		return nil, fmt.Errorf("listar variações irmãs: %w", err)
	}
	defer rows.Close()
	var list []repository.VariacaoIrma
	for rows.Next() {
		var i repository.VariacaoIrma
		if err := rows.Scan(&i.ID, &i.Cor, &i.URLFoto); err != nil {
			return nil, fmt.Errorf("scan variação irmã: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

func scanDetalhes(rows pgx.Rows) ([]repository.VariacaoDetalhe, error) {
	var list []repository.VariacaoDetalhe
	for rows.Next() {
		var d repository.VariacaoDetalhe
		if err := rows.Scan(&d.ID, &d.Cor, &d.Quantidade, &d.DisponivelEncomenda, &d.URLFoto,
			&d.ProdutoNome, &d.ModeloCelular, &d.PrecoVenda); err != nil {
			return nil, fmt.Errorf("scan variação: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
