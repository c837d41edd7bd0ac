package sales

import (
	"context"

	"github.com/jhoicas/Drogueria-api/internal/domain"
	"github.com/jhoicas/Drogueria-api/internal/domain/entity"
	"github.com/jhoicas/Drogueria-api/internal/domain/repository"
)

// ReceiptPDFGenerator puerto para la representación en PDF de una venta (tirilla).
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale) ([]byte, error)
}

// ReceiptUseCase genera la tirilla PDF de una venta registrada.
type ReceiptUseCase struct {
	saleRepo repository.SaleRepository
	pdfGen   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, pdfGen ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, pdfGen: pdfGen}
}

// GetReceiptPDF devuelve los bytes del PDF de la venta indicada.
func (uc *ReceiptUseCase) GetReceiptPDF(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.GenerateReceiptPDF(ctx, sale)
}
