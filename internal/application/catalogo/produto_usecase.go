package catalogo

import (
	"context"
	"strings"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

// ProdutoUseCase CRUD de produtos e associação produto-fornecedor.
type ProdutoUseCase struct {
	produtoRepo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(produtoRepo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{produtoRepo: produtoRepo}
}

func normalizarProduto(in dto.ProdutoRequest) (*entity.Produto, error) {
	nome := strings.TrimSpace(in.Nome)
	tipo := strings.TrimSpace(in.Tipo)
	if nome == "" || tipo == "" || in.IDModeloCelular <= 0 || in.PrecoVenda.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	var material *string
	if in.Material != nil {
		m := strings.TrimSpace(*in.Material)
		if m != "" {
			material = &m
		}
	}
	return &entity.Produto{
		Nome:            nome,
		Tipo:            tipo,
		Material:        material,
		PrecoVenda:      in.PrecoVenda,
		IDModeloCelular: in.IDModeloCelular,
	}, nil
}

// Criar cria um produto vinculado a um modelo de celular.
func (uc *ProdutoUseCase) Criar(ctx context.Context, in dto.ProdutoRequest) (int64, error) {
	p, err := normalizarProduto(in)
	if err != nil {
		return 0, err
	}
	return uc.produtoRepo.Criar(ctx, p)
}

// Atualizar atualiza os dados cadastrais de um produto.
func (uc *ProdutoUseCase) Atualizar(ctx context.Context, id int64, in dto.ProdutoRequest) error {
	p, err := normalizarProduto(in)
	if err != nil {
		return err
	}
	p.ID = id
	return uc.produtoRepo.Atualizar(ctx, p)
}

// Deletar remove um produto. Com variações de estoque vinculadas a FK é
// restrita e a remoção falha com ErrEmUso.
func (uc *ProdutoUseCase) Deletar(ctx context.Context, id int64) error {
	return uc.produtoRepo.Deletar(ctx, id)
}

// Listar lista os produtos com o modelo resolvido.
func (uc *ProdutoUseCase) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := uc.produtoRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, dto.ProdutoResponse{
			ID: p.ID, Nome: p.Nome, Tipo: p.Tipo, Material: p.Material,
			PrecoVenda: p.PrecoVenda, ModeloCelular: p.ModeloCelular,
		})
	}
	return out, nil
}

// Detalhes devolve os campos crus de um produto para o formulário de edição.
func (uc *ProdutoUseCase) Detalhes(ctx context.Context, id int64) (*dto.ProdutoAdminResponse, error) {
	p, err := uc.produtoRepo.ObterPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return &dto.ProdutoAdminResponse{
		ID: p.ID, Nome: p.Nome, Tipo: p.Tipo, Material: p.Material,
		PrecoVenda: p.PrecoVenda, IDModeloCelular: p.IDModeloCelular,
	}, nil
}

// ListarFornecedores lista os fornecedores associados a um produto.
func (uc *ProdutoUseCase) ListarFornecedores(ctx context.Context, produtoID int64) ([]dto.FornecedorResponse, error) {
	fornecedores, err := uc.produtoRepo.ListarFornecedores(ctx, produtoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		out = append(out, dto.FornecedorResponse{
			ID: f.ID, Nome: f.Nome, ContatoTelefone: f.ContatoTelefone, ContatoEmail: f.ContatoEmail,
		})
	}
	return out, nil
}

// AssociarFornecedor vincula um fornecedor ao produto.
func (uc *ProdutoUseCase) AssociarFornecedor(ctx context.Context, produtoID int64, in dto.AssociacaoFornecedorRequest) error {
	if in.IDFornecedor <= 0 {
		return domain.ErrEntradaInvalida
	}
	return uc.produtoRepo.AssociarFornecedor(ctx, produtoID, in.IDFornecedor)
}

// DesassociarFornecedor desfaz o vínculo produto-fornecedor.
func (uc *ProdutoUseCase) DesassociarFornecedor(ctx context.Context, produtoID, fornecedorID int64) error {
	return uc.produtoRepo.DesassociarFornecedor(ctx, produtoID, fornecedorID)
}
