package entity

import "time"

// Estados del ciclo de vida de un documento.
const (
	DocumentStatusDraft  = "draft"  // editable, sus renglones no afectan stock
	DocumentStatusPosted = "posted" // contabilizado, stock ajustado
)

// Document representa la cabecera de un documento de almacén
// (entrada, salida, traslado, inventario o baja). Los renglones viven en DocumentLine.
// TypeID referencia el catálogo de tipos del paquete domain/document.
type Document struct {
	ID         string
	TypeID     int
	Number     string // consecutivo por tipo
	Date       time.Time
	Comment    string
	Status     string // draft, posted
	SupplierID string // solo entradas, opcional
	CreatedBy  string // UserID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
