package repository

import (
	"context"

	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
)

// MarcaRepository CRUD de marcas.
type MarcaRepository interface {
	Criar(ctx context.Context, nome string) (int64, error)
	Atualizar(ctx context.Context, m *entity.Marca) error
	Deletar(ctx context.Context, id int64) error
	Listar(ctx context.Context) ([]entity.Marca, error)
}

// ModeloRepository CRUD de modelos de celular.
type ModeloRepository interface {
	Criar(ctx context.Context, m *entity.ModeloCelular) (int64, error)
	Atualizar(ctx context.Context, m *entity.ModeloCelular) error
	Deletar(ctx context.Context, id int64) error
	Listar(ctx context.Context) ([]entity.ModeloResumo, error)
	// BuscarNomes retorna nomes completos ("Marca Modelo") para autocompletar.
	BuscarNomes(ctx context.Context, termo string, limite int) ([]string, error)
}

// ProdutoRepository CRUD de produtos e associação com fornecedores.
type ProdutoRepository interface {
	Criar(ctx context.Context, p *entity.Produto) (int64, error)
	Atualizar(ctx context.Context, p *entity.Produto) error
	Deletar(ctx context.Context, id int64) error
	ObterPorID(ctx context.Context, id int64) (*entity.Produto, error)
	Listar(ctx context.Context) ([]entity.ProdutoResumo, error)
	ListarFornecedores(ctx context.Context, produtoID int64) ([]entity.Fornecedor, error)
	AssociarFornecedor(ctx context.Context, produtoID, fornecedorID int64) error
	DesassociarFornecedor(ctx context.Context, produtoID, fornecedorID int64) error
}

// FornecedorRepository CRUD de fornecedores.
type FornecedorRepository interface {
	Criar(ctx context.Context, f *entity.Fornecedor) (int64, error)
	Atualizar(ctx context.Context, f *entity.Fornecedor) error
	Deletar(ctx context.Context, id int64) error
	Listar(ctx context.Context) ([]entity.Fornecedor, error)
}

// UsuarioRepository consultas de usuários para autenticação.
type UsuarioRepository interface {
	ObterPorUsername(ctx context.Context, username string) (*entity.Usuario, error)
}
