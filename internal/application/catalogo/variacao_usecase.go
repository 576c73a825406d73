package catalogo

import (
	"context"
	"strings"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

// VariacaoUseCase gerencia o catálogo de variações de estoque (criação,
// edição, remoção e consultas públicas). A quantidade informada aqui é o
// saldo inicial de cadastro; mutações posteriores passam pelo motor de
// estoque, nunca por este caso de uso.
type VariacaoUseCase struct {
	variacaoRepo repository.VariacaoRepository
}

// NewVariacaoUseCase constrói o caso de uso.
func NewVariacaoUseCase(variacaoRepo repository.VariacaoRepository) *VariacaoUseCase {
	return &VariacaoUseCase{variacaoRepo: variacaoRepo}
}

func normalizarVariacao(in dto.VariacaoRequest) (*entity.VariacaoEstoque, error) {
	cor := strings.TrimSpace(in.Cor)
	if cor == "" || in.IDProduto <= 0 || in.Quantidade < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	v := &entity.VariacaoEstoque{
		IDProduto:           in.IDProduto,
		Cor:                 cor,
		Quantidade:          in.Quantidade,
		DisponivelEncomenda: in.DisponivelEncomenda,
	}
	if in.URLFoto != nil && strings.TrimSpace(*in.URLFoto) != "" {
		url := strings.TrimSpace(*in.URLFoto)
		v.URLFoto = &url
	}
	return v, nil
}

// Criar cria uma variação. (id_produto, cor) é único.
func (uc *VariacaoUseCase) Criar(ctx context.Context, in dto.VariacaoRequest) (int64, error) {
	v, err := normalizarVariacao(in)
	if err != nil {
		return 0, err
	}
	return uc.variacaoRepo.Criar(ctx, v)
}

// Atualizar atualiza os dados cadastrais de uma variação. O custo médio não é
// tocado: ele pertence ao motor de estoque.
func (uc *VariacaoUseCase) Atualizar(ctx context.Context, id int64, in dto.VariacaoRequest) error {
	v, err := normalizarVariacao(in)
	if err != nil {
		return err
	}
	v.ID = id
	return uc.variacaoRepo.Atualizar(ctx, v)
}

// Deletar remove uma variação; o histórico dela é removido em cascata.
func (uc *VariacaoUseCase) Deletar(ctx context.Context, id int64) error {
	return uc.variacaoRepo.Deletar(ctx, id)
}

// ListarPorProduto lista as variações de um produto. Produto inexistente
// resulta em ErrNaoEncontrado; produto sem variações, lista vazia.
func (uc *VariacaoUseCase) ListarPorProduto(ctx context.Context, produtoID int64) ([]dto.VariacaoResponse, error) {
	variacoes, err := uc.variacaoRepo.ListarPorProduto(ctx, produtoID)
	if err != nil {
		return nil, err
	}
	return paraVariacaoResponses(variacoes), nil
}

// BuscarNoCatalogo busca pública por "Marca Modelo". Termo vazio devolve
// lista vazia.
func (uc *VariacaoUseCase) BuscarNoCatalogo(ctx context.Context, termo string) ([]dto.VariacaoResponse, error) {
	termo = strings.TrimSpace(termo)
	if termo == "" {
		return []dto.VariacaoResponse{}, nil
	}
	variacoes, err := uc.variacaoRepo.BuscarNoCatalogo(ctx, termo)
	if err != nil {
		return nil, err
	}
	return paraVariacaoResponses(variacoes), nil
}

// DetalhesPublicos monta a página pública de um produto a partir de uma
// variação selecionada: dados do produto, a variação em foco e as irmãs.
func (uc *VariacaoUseCase) DetalhesPublicos(ctx context.Context, variacaoID int64) (*dto.DetalhesProdutoPublicoResponse, error) {
	detalhe, err := uc.variacaoRepo.ObterDetalhe(ctx, variacaoID)
	if err != nil {
		return nil, err
	}
	if detalhe == nil {
		return nil, domain.ErrNaoEncontrado
	}
	variacao, err := uc.variacaoRepo.ObterPorID(ctx, variacaoID)
	if err != nil {
		return nil, err
	}
	if variacao == nil {
		return nil, domain.ErrNaoEncontrado
	}
	irmas, err := uc.variacaoRepo.ListarIrmas(ctx, variacao.IDProduto)
	if err != nil {
		return nil, err
	}
	outras := make([]dto.OutraVariacaoResponse, 0, len(irmas))
	for _, i := range irmas {
		outras = append(outras, dto.OutraVariacaoResponse{ID: i.ID, Cor: i.Cor, URLFoto: i.URLFoto})
	}
	return &dto.DetalhesProdutoPublicoResponse{
		ProdutoNome:   detalhe.ProdutoNome,
		ModeloCelular: detalhe.ModeloCelular,
		PrecoVenda:    detalhe.PrecoVenda,
		VariacaoSelecionada: dto.VariacaoSelecionadaResponse{
			ID:                  detalhe.ID,
			Cor:                 detalhe.Cor,
			Quantidade:          detalhe.Quantidade,
			DisponivelEncomenda: detalhe.DisponivelEncomenda,
			URLFoto:             detalhe.URLFoto,
		},
		OutrasVariacoes: outras,
	}, nil
}

func paraVariacaoResponses(variacoes []repository.VariacaoDetalhe) []dto.VariacaoResponse {
	out := make([]dto.VariacaoResponse, 0, len(variacoes))
	for _, v := range variacoes {
		out = append(out, dto.VariacaoResponse{
			ID: v.ID, Cor: v.Cor, Quantidade: v.Quantidade,
			DisponivelEncomenda: v.DisponivelEncomenda, URLFoto: v.URLFoto,
			ProdutoNome: v.ProdutoNome, ModeloCelular: v.ModeloCelular, PrecoVenda: v.PrecoVenda,
		})
	}
	return out
}
