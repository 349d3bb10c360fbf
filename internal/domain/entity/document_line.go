package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentLine representa un renglón de un documento: un producto con cantidad y precios.
// Invariante: un solo renglón por (DocumentID, ProductID); para cambiar de producto
// se elimina el renglón y se agrega otro.
//
// Quantity es la cantidad según registro; ActualQuantity es la cantidad contada
// físicamente y solo existe en tipos de conciliación (inventario, baja).
// Los precios se copian del catálogo al crear el renglón y se editan por renglón
// sin mutar el producto.
type DocumentLine struct {
	ID                string
	DocumentID        string
	ProductID         string
	Quantity          decimal.Decimal
	ActualQuantity    *decimal.Decimal
	UnitPurchasePrice decimal.Decimal
	UnitSellPrice     decimal.Decimal
	SenderZoneID      string
	ReceiverZoneID    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Clone devuelve una copia profunda del renglón (ActualQuantity incluido).
func (l *DocumentLine) Clone() *DocumentLine {
	if l == nil {
		return nil
	}
	cp := *l
	if l.ActualQuantity != nil {
		v := *l.ActualQuantity
		cp.ActualQuantity = &v
	}
	return &cp
}
