package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo del almacén.
// PurchasePrice/SellPrice son los precios vigentes del catálogo; cada renglón de
// documento copia esos valores al crearse y puede editarlos sin tocar el catálogo.
// StockQuantity es el saldo registrado; solo lo mueven los documentos contabilizados.
type Product struct {
	ID            string
	Name          string
	Category      string
	UnitMeasure   string // unidad: pieza, kg, caja...
	PurchasePrice decimal.Decimal
	SellPrice     decimal.Decimal
	StockQuantity decimal.Decimal
	SupplierID    string // proveedor habitual, opcional
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
