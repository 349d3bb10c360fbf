package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Category      string          `json:"category"`
	UnitMeasure   string          `json:"unit_measure" validate:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	SupplierID    string          `json:"supplier_id"`
}

// UpdateProductRequest entrada para actualizar un producto (el stock se mueve por documentos).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	UnitMeasure   *string          `json:"unit_measure"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellPrice     *decimal.Decimal `json:"sell_price"`
	SupplierID    *string          `json:"supplier_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	UnitMeasure   string          `json:"unit_measure"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
