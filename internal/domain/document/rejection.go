package document

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain"
)

// RejectionReason código legible por máquina de un rechazo de regla de negocio.
type RejectionReason string

const (
	ReasonDuplicateProduct  RejectionReason = "DUPLICATE_PRODUCT"
	ReasonStockInsufficient RejectionReason = "STOCK_INSUFFICIENT"
)

// Rejection es el resultado tipificado de una violación de regla de negocio del ledger:
// producto duplicado en el documento o stock insuficiente. Son resultados esperados de
// entrada de usuario, no fallas; llevan los datos para el mensaje correctivo.
// Implementa error y desenvuelve al sentinel de dominio para errors.Is en los handlers.
type Rejection struct {
	Reason    RejectionReason
	ProductID string
	Unit      string          // unidad del producto, para el mensaje
	Available decimal.Decimal // saldo restante tras lo ya colocado en el documento
	Max       decimal.Decimal // valor máximo admisible para el campo editado
}

func (r *Rejection) Error() string {
	switch r.Reason {
	case ReasonStockInsufficient:
		return fmt.Sprintf("stock insuficiente para %s: disponible %s %s", r.ProductID, r.Available, r.Unit)
	case ReasonDuplicateProduct:
		return fmt.Sprintf("el producto %s ya tiene un renglón en el documento", r.ProductID)
	}
	return string(r.Reason)
}

// Unwrap mapea el rechazo a su sentinel de dominio.
func (r *Rejection) Unwrap() error {
	switch r.Reason {
	case ReasonStockInsufficient:
		return domain.ErrInsufficientStock
	case ReasonDuplicateProduct:
		return domain.ErrDuplicateProduct
	}
	return domain.ErrInvalidInput
}
