package relatorios

import (
	"context"
	"time"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/dto"
)

// PDFGenerator renderiza o relatório de movimentações do PDV em PDF.
// Implementado em internal/infrastructure/pdf.
type PDFGenerator interface {
	GerarRelatorioMovimentacoes(ctx context.Context, inicio, fim time.Time, linhas []dto.MovimentacaoPDVResponse) ([]byte, error)
}
