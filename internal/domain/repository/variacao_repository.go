package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
)

// VariacaoDetalhe é a linha de listagem de variações com o produto e o modelo
// resolvidos (join com produtos, modelos_celular e marcas).
type VariacaoDetalhe struct {
	ID                  int64
	Cor                 string
	Quantidade          int64
	DisponivelEncomenda bool
	URLFoto             *string
	ProdutoNome         string
	ModeloCelular       string
	PrecoVenda          decimal.Decimal
}

// VariacaoIrma é uma variação do mesmo produto, usada na página pública de
// detalhes para trocar de cor.
type VariacaoIrma struct {
	ID      int64
	Cor     string
	URLFoto *string
}

// VariacaoRepository gerencia o catálogo de variações (CRUD e consultas
// públicas). A mutação de quantidade/custo passa exclusivamente pelo
// EstoqueRepository.
type VariacaoRepository interface {
	Criar(ctx context.Context, v *entity.VariacaoEstoque) (int64, error)
	Atualizar(ctx context.Context, v *entity.VariacaoEstoque) error
	Deletar(ctx context.Context, id int64) error
	ObterPorID(ctx context.Context, id int64) (*entity.VariacaoEstoque, error)
	ListarPorProduto(ctx context.Context, produtoID int64) ([]VariacaoDetalhe, error)
	BuscarNoCatalogo(ctx context.Context, termo string) ([]VariacaoDetalhe, error)
	ObterDetalhe(ctx context.Context, id int64) (*VariacaoDetalhe, error)
	ListarIrmas(ctx context.Context, produtoID int64) ([]VariacaoIrma, error)
}
