package catalogo

import (
	"context"
	"regexp"
	"strings"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/entity"
	"github.com/catalogo-inteligente/catalogo-api/internal/domain/repository"
)

// telefoneRegexp aceita formatos brasileiros: (11) 99999-9999, 11 9999-9999 etc.
var telefoneRegexp = regexp.MustCompile(`^\(?\d{2}\)?[\s-]?\d{4,5}-?\d{4}$`)

// FornecedorUseCase CRUD de fornecedores.
type FornecedorUseCase struct {
	fornecedorRepo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(fornecedorRepo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{fornecedorRepo: fornecedorRepo}
}

func normalizarFornecedor(in dto.FornecedorRequest) (*entity.Fornecedor, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	f := &entity.Fornecedor{Nome: nome}
	if in.ContatoTelefone != nil {
		tel := strings.TrimSpace(*in.ContatoTelefone)
		if tel != "" {
			if !telefoneRegexp.MatchString(tel) {
				return nil, domain.ErrEntradaInvalida
			}
			f.ContatoTelefone = &tel
		}
	}
	if in.ContatoEmail != nil {
		email := strings.TrimSpace(*in.ContatoEmail)
		if email != "" {
			f.ContatoEmail = &email
		}
	}
	return f, nil
}

// Criar cria um fornecedor. Telefone, quando presente, é validado.
func (uc *FornecedorUseCase) Criar(ctx context.Context, in dto.FornecedorRequest) (int64, error) {
	f, err := normalizarFornecedor(in)
	if err != nil {
		return 0, err
	}
	return uc.fornecedorRepo.Criar(ctx, f)
}

// Atualizar atualiza um fornecedor existente.
func (uc *FornecedorUseCase) Atualizar(ctx context.Context, id int64, in dto.FornecedorRequest) error {
	f, err := normalizarFornecedor(in)
	if err != nil {
		return err
	}
	f.ID = id
	return uc.fornecedorRepo.Atualizar(ctx, f)
}

// Deletar remove um fornecedor sem produtos associados (FK restrita).
func (uc *FornecedorUseCase) Deletar(ctx context.Context, id int64) error {
	return uc.fornecedorRepo.Deletar(ctx, id)
}

// Listar lista todos os fornecedores.
func (uc *FornecedorUseCase) Listar(ctx context.Context) ([]dto.FornecedorResponse, error) {
	fornecedores, err := uc.fornecedorRepo.Listar(ctx)
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
