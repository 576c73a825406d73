package catalogo

import (
	"context"
	"strings"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

// MarcaUseCase CRUD de marcas.
type MarcaUseCase struct {
	marcaRepo repository.MarcaRepository
}

// NewMarcaUseCase constrói o caso de uso.
func NewMarcaUseCase(marcaRepo repository.MarcaRepository) *MarcaUseCase {
	return &MarcaUseCase{marcaRepo: marcaRepo}
}

// Criar cria uma marca. Nome é obrigatório e único.
func (uc *MarcaUseCase) Criar(ctx context.Context, in dto.MarcaRequest) (int64, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return 0, domain.ErrEntradaInvalida
	}
	return uc.marcaRepo.Criar(ctx, nome)
}

// Atualizar renomeia uma marca existente.
func (uc *MarcaUseCase) Atualizar(ctx context.Context, id int64, in dto.MarcaRequest) error {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return domain.ErrEntradaInvalida
	}
	return uc.marcaRepo.Atualizar(ctx, &entity.Marca{ID: id, Nome: nome})
}

// Deletar remove uma marca sem modelos vinculados (FK restrita).
func (uc *MarcaUseCase) Deletar(ctx context.Context, id int64) error {
	return uc.marcaRepo.Deletar(ctx, id)
}

// Listar lista todas as marcas ordenadas por nome.
func (uc *MarcaUseCase) Listar(ctx context.Context) ([]dto.MarcaResponse, error) {
	marcas, err := uc.marcaRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarcaResponse, 0, len(marcas))
	for _, m := range marcas {
		out = append(out, dto.MarcaResponse{ID: m.ID, Nome: m.Nome})
	}
	return out, nil
}
