package dto

import "time"

// CreateDocumentRequest entrada para crear la cabecera de un documento.
// El consecutivo lo asigna el servidor por tipo.
type CreateDocumentRequest struct {
	TypeID     int       `json:"type_id" validate:"required,min=1,max=5"`
	Date       time.Time `json:"date"`
	Comment    string    `json:"comment"`
	SupplierID string    `json:"supplier_id"`
}

// UpdateDocumentRequest entrada para editar la cabecera de un documento en borrador.
type UpdateDocumentRequest struct {
	Date       *time.Time `json:"date"`
	Comment    *string    `json:"comment"`
	SupplierID *string    `json:"supplier_id"`
}

// AddLineRequest entrada para agregar un renglón al documento abierto.
// Las zonas son las propuestas; el ledger solo toma las que el tipo requiere.
type AddLineRequest struct {
	ProductID      string `json:"product_id" validate:"required"`
	SenderZoneID   string `json:"sender_zone_id"`
	ReceiverZoneID string `json:"receiver_zone_id"`
}

// UpdateLineQuantityRequest entrada para cambiar una cantidad del renglón.
// Value llega como string: la entrada no numérica del dashboard se corrige a cero
// en lugar de rechazarse.
type UpdateLineQuantityRequest struct {
	Field string `json:"field" validate:"required,oneof=quantity actual_quantity"`
	Value string `json:"value"`
}

// UpdateLinePriceRequest entrada para cambiar un precio del renglón.
type UpdateLinePriceRequest struct {
	Field string `json:"field" validate:"required,oneof=purchase_price sell_price"`
	Value string `json:"value"`
}

// LineResponse salida de un renglón con su total derivado.
type LineResponse struct {
	ID                string  `json:"id"`
	DocumentID        string  `json:"document_id"`
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name,omitempty"`
	Unit              string  `json:"unit,omitempty"`
	Quantity          string  `json:"quantity"`
	ActualQuantity    *string `json:"actual_quantity,omitempty"`
	UnitPurchasePrice string  `json:"unit_purchase_price"`
	UnitSellPrice     string  `json:"unit_sell_price"`
	SenderZoneID      string  `json:"sender_zone_id,omitempty"`
	ReceiverZoneID    string  `json:"receiver_zone_id,omitempty"`
	LineTotal         string  `json:"line_total"`
}

// TotalsResponse totales corridos del documento. Los campos que no aplican al tipo
// (discrepancia fuera de conciliación, margen fuera de salidas) van nulos.
type TotalsResponse struct {
	TotalQuantity       string  `json:"total_quantity"`
	TotalActualQuantity *string `json:"total_actual_quantity,omitempty"`
	Discrepancy         *string `json:"discrepancy,omitempty"`
	TotalAmount         *string `json:"total_amount,omitempty"`
	Profit              *string `json:"profit,omitempty"`
}

// LineMutationResponse renglón afectado + totales recalculados tras la mutación.
type LineMutationResponse struct {
	Line   *LineResponse  `json:"line,omitempty"`
	Totals TotalsResponse `json:"totals"`
}

// DocumentResponse salida de la cabecera de un documento.
type DocumentResponse struct {
	ID         string    `json:"id"`
	TypeID     int       `json:"type_id"`
	Type       string    `json:"type"`
	Number     string    `json:"number"`
	Date       time.Time `json:"date"`
	Comment    string    `json:"comment"`
	Status     string    `json:"status"`
	SupplierID string    `json:"supplier_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DocumentDetailResponse cabecera + renglones + totales (sesión abierta).
type DocumentDetailResponse struct {
	Document DocumentResponse `json:"document"`
	Lines    []LineResponse   `json:"lines"`
	Totals   TotalsResponse   `json:"totals"`
}

// DocumentListResponse lista paginada de documentos.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
