package catalogo

import (
	"context"
	"strings"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

// ModeloUseCase CRUD e busca de modelos de celular.
type ModeloUseCase struct {
	modeloRepo repository.ModeloRepository
}

// NewModeloUseCase constrói o caso de uso.
func NewModeloUseCase(modeloRepo repository.ModeloRepository) *ModeloUseCase {
	return &ModeloUseCase{modeloRepo: modeloRepo}
}

// Criar cria um modelo vinculado a uma marca.
func (uc *ModeloUseCase) Criar(ctx context.Context, in dto.ModeloRequest) (int64, error) {
	nome := strings.TrimSpace(in.NomeModelo)
	if nome == "" || in.IDMarca <= 0 {
		return 0, domain.ErrEntradaInvalida
	}
	return uc.modeloRepo.Criar(ctx, &entity.ModeloCelular{IDMarca: in.IDMarca, NomeModelo: nome})
}

// Atualizar atualiza nome e marca de um modelo.
func (uc *ModeloUseCase) Atualizar(ctx context.Context, id int64, in dto.ModeloRequest) error {
	nome := strings.TrimSpace(in.NomeModelo)
	if nome == "" || in.IDMarca <= 0 {
		return domain.ErrEntradaInvalida
	}
	return uc.modeloRepo.Atualizar(ctx, &entity.ModeloCelular{ID: id, IDMarca: in.IDMarca, NomeModelo: nome})
}

// Deletar remove um modelo sem produtos vinculados (FK restrita).
func (uc *ModeloUseCase) Deletar(ctx context.Context, id int64) error {
	return uc.modeloRepo.Deletar(ctx, id)
}

// Listar lista os modelos com o nome da marca resolvido.
func (uc *ModeloUseCase) Listar(ctx context.Context) ([]dto.ModeloResponse, error) {
	modelos, err := uc.modeloRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ModeloResponse, 0, len(modelos))
	for _, m := range modelos {
		out = append(out, dto.ModeloResponse{ID: m.ID, NomeModelo: m.NomeModelo, MarcaNome: m.MarcaNome})
	}
	return out, nil
}

// BuscarNomes autocompletar público: nomes "Marca Modelo" que contêm o termo.
// Termo vazio devolve lista vazia sem consultar o banco.
func (uc *ModeloUseCase) BuscarNomes(ctx context.Context, termo string) ([]string, error) {
	termo = strings.TrimSpace(termo)
	if termo == "" {
		return []string{}, nil
	}
	return uc.modeloRepo.BuscarNomes(ctx, termo, 10)
}
