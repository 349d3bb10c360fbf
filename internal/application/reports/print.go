package reports

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	appdoc "github.com/jhoicas/bodega-api/internal/application/document"
)

// PDFGenerator genera la representación imprimible de un documento.
// La implementación vive en infraestructura (maroto).
type PDFGenerator interface {
	DocumentPDF(detail *dto.DocumentDetailResponse) ([]byte, error)
}

// PrintUseCase arma el detalle del documento y lo entrega como PDF.
type PrintUseCase struct {
	docs *appdoc.UseCase
	pdf  PDFGenerator
}

// NewPrintUseCase construye el caso de uso de impresión.
func NewPrintUseCase(docs *appdoc.UseCase, pdf PDFGenerator) *PrintUseCase {
	return &PrintUseCase{docs: docs, pdf: pdf}
}

// DocumentPDF genera el PDF del documento con renglones y totales.
func (uc *PrintUseCase) DocumentPDF(ctx context.Context, documentID string) ([]byte, error) {
	detail, err := uc.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.DocumentPDF(detail)
}
