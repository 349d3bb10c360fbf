package document

import "github.com/shopspring/decimal"

// ProductInfo es la vista del catálogo que necesita el ledger: precios vigentes,
// unidad y saldo registrado al momento de la consulta.
type ProductInfo struct {
	ID            string
	Name          string
	Unit          string
	Category      string
	PurchasePrice decimal.Decimal
	SellPrice     decimal.Decimal
	Stock         decimal.Decimal
}

// ProductCatalog resuelve productos por ID. Devuelve domain.ErrNotFound si no existe.
type ProductCatalog interface {
	Lookup(productID string) (*ProductInfo, error)
}

// ZoneInfo es la vista mínima de una zona de almacenamiento.
type ZoneInfo struct {
	ID   string
	Name string
}

// ZoneDirectory resuelve zonas por ID. Devuelve domain.ErrNotFound si no existe.
type ZoneDirectory interface {
	Lookup(zoneID string) (*ZoneInfo, error)
}
