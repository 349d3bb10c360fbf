package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ZoneStock representa el stock actual de un producto en una zona de almacenamiento
// (tabla materializada; la mueven los documentos al contabilizarse).
type ZoneStock struct {
	ProductID string
	ZoneID    string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
