package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// QuantityField campo de cantidad editable de un renglón.
type QuantityField string

const (
	FieldQuantity       QuantityField = "quantity"        // cantidad según registro
	FieldActualQuantity QuantityField = "actual_quantity" // cantidad contada físicamente
)

// PriceField campo de precio editable de un renglón.
type PriceField string

const (
	FieldPurchasePrice PriceField = "purchase_price"
	FieldSellPrice     PriceField = "sell_price"
)

// LineDefaults zonas propuestas para un renglón nuevo (normalmente las de la cabecera
// del documento). El ledger solo toma las que el tipo de documento requiere.
type LineDefaults struct {
	SenderZoneID   string
	ReceiverZoneID string
}

// Ledger mantiene los renglones de un documento abierto: aplica las reglas por tipo,
// valida stock antes de cualquier mutación y calcula los totales.
//
// Los rechazos de regla de negocio (producto duplicado, stock insuficiente) se
// devuelven como *Rejection, nunca se aplica estado parcial. Las fallas de
// colaboradores (producto o zona inexistente) salen por el canal de error normal.
//
// No es seguro para uso concurrente: una sesión de edición lo posee en exclusiva.
type Ledger struct {
	documentID string
	docType    Type
	catalog    ProductCatalog
	zones      ZoneDirectory
	lines      []*entity.DocumentLine
}

// NewLedger construye el ledger de un documento. existing son los renglones ya
// persistidos (al reabrir un documento); se copian, el caller conserva los suyos.
func NewLedger(documentID string, t Type, catalog ProductCatalog, zones ZoneDirectory, existing []*entity.DocumentLine) (*Ledger, error) {
	if !t.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if documentID == "" || catalog == nil || zones == nil {
		return nil, domain.ErrInvalidInput
	}
	l := &Ledger{
		documentID: documentID,
		docType:    t,
		catalog:    catalog,
		zones:      zones,
		lines:      make([]*entity.DocumentLine, 0, len(existing)),
	}
	for _, line := range existing {
		if line.DocumentID != documentID {
			return nil, domain.ErrInvalidInput
		}
		if l.findByProduct(line.ProductID) != nil {
			return nil, domain.ErrDuplicateProduct
		}
		l.lines = append(l.lines, line.Clone())
	}
	return l, nil
}

// DocumentID devuelve el documento dueño del ledger.
func (l *Ledger) DocumentID() string { return l.documentID }

// Type devuelve el tipo del documento.
func (l *Ledger) Type() Type { return l.docType }

// Rules devuelve las reglas del tipo del documento.
func (l *Ledger) Rules() Rules { return l.docType.Rules() }

// Len devuelve la cantidad de renglones.
func (l *Ledger) Len() int { return len(l.lines) }

// AddLine agrega un renglón para el producto con cantidad 1 y los precios vigentes
// del catálogo. Rechaza producto duplicado y, en tipos que consumen stock, cantidades
// por encima del saldo registrado. El ID del renglón es un placeholder local hasta
// que el almacén remoto confirme el alta.
func (l *Ledger) AddLine(productID string, defaults LineDefaults) (*entity.DocumentLine, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if l.findByProduct(productID) != nil {
		return nil, &Rejection{Reason: ReasonDuplicateProduct, ProductID: productID}
	}
	info, err := l.catalog.Lookup(productID)
	if err != nil {
		return nil, err
	}

	rules := l.docType.Rules()
	qty := decimal.NewFromInt(1)

	if rules.StockConsuming {
		// Ya colocado en el documento para este producto + lo que se agrega
		// no puede exceder el saldo registrado del catálogo.
		placed := l.placedQuantity(productID, "")
		available := info.Stock.Sub(placed)
		if available.IsNegative() {
			available = decimal.Zero
		}
		if qty.GreaterThan(available) {
			return nil, &Rejection{
				Reason:    ReasonStockInsufficient,
				ProductID: productID,
				Unit:      info.Unit,
				Available: available,
				Max:       available,
			}
		}
	}

	line := &entity.DocumentLine{
		ID:                uuid.New().String(),
		DocumentID:        l.documentID,
		ProductID:         productID,
		Quantity:          qty,
		UnitPurchasePrice: info.PurchasePrice,
		UnitSellPrice:     info.SellPrice,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if rules.NeedsActualQuantity {
		actual := qty
		line.ActualQuantity = &actual
	}
	if rules.NeedsSenderZone && defaults.SenderZoneID != "" {
		if _, err := l.zones.Lookup(defaults.SenderZoneID); err != nil {
			return nil, err
		}
		line.SenderZoneID = defaults.SenderZoneID
	}
	if rules.NeedsReceiverZone && defaults.ReceiverZoneID != "" {
		if _, err := l.zones.Lookup(defaults.ReceiverZoneID); err != nil {
			return nil, err
		}
		line.ReceiverZoneID = defaults.ReceiverZoneID
	}

	l.lines = append(l.lines, line)
	return line.Clone(), nil
}

// UpdateQuantity cambia quantity o actual_quantity de un renglón. Valores negativos
// se corrigen a cero, igual que la entrada no numérica en la capa HTTP: mala entrada
// se trata como cero, no se rechaza. En tipos que consumen stock la cantidad nueva
// más la de otros renglones del mismo producto no puede exceder el saldo; el rechazo
// informa el máximo admisible y el renglón queda intacto.
func (l *Ledger) UpdateQuantity(lineID string, field QuantityField, value decimal.Decimal) (*entity.DocumentLine, error) {
	line := l.findByID(lineID)
	if line == nil {
		return nil, domain.ErrNotFound
	}
	if value.IsNegative() {
		value = decimal.Zero
	}

	rules := l.docType.Rules()
	switch field {
	case FieldQuantity:
		if rules.StockConsuming {
			info, err := l.catalog.Lookup(line.ProductID)
			if err != nil {
				return nil, err
			}
			others := l.placedQuantity(line.ProductID, line.ID)
			max := info.Stock.Sub(others)
			if max.IsNegative() {
				max = decimal.Zero
			}
			if value.GreaterThan(max) {
				// Available cuenta también lo que este renglón ya tiene colocado;
				// Max es el valor al que sí se podría actualizar.
				available := info.Stock.Sub(others.Add(line.Quantity))
				if available.IsNegative() {
					available = decimal.Zero
				}
				return nil, &Rejection{
					Reason:    ReasonStockInsufficient,
					ProductID: line.ProductID,
					Unit:      info.Unit,
					Available: available,
					Max:       max,
				}
			}
		}
		line.Quantity = value
	case FieldActualQuantity:
		if !rules.NeedsActualQuantity {
			return nil, domain.ErrInvalidInput
		}
		line.ActualQuantity = &value
	default:
		return nil, domain.ErrInvalidInput
	}
	line.UpdatedAt = time.Now()
	return line.Clone(), nil
}

// UpdatePrice cambia el precio de compra o de venta del renglón sin tocar el catálogo.
// Siempre procede: valores negativos se corrigen a cero. El total del documento solo
// cambia si el campo editado es el precio base del tipo (tabla de reglas).
func (l *Ledger) UpdatePrice(lineID string, field PriceField, value decimal.Decimal) (*entity.DocumentLine, error) {
	line := l.findByID(lineID)
	if line == nil {
		return nil, domain.ErrNotFound
	}
	if value.IsNegative() {
		value = decimal.Zero
	}
	switch field {
	case FieldPurchasePrice:
		line.UnitPurchasePrice = value
	case FieldSellPrice:
		line.UnitSellPrice = value
	default:
		return nil, domain.ErrInvalidInput
	}
	line.UpdatedAt = time.Now()
	return line.Clone(), nil
}

// RemoveLine elimina el renglón. Incondicional: quitar un renglón solo libera
// stock, nunca puede violar la validación.
func (l *Ledger) RemoveLine(lineID string) error {
	for i, line := range l.lines {
		if line.ID == lineID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Line devuelve una copia del renglón, o nil si no existe.
func (l *Ledger) Line(lineID string) *entity.DocumentLine {
	return l.findByID(lineID).Clone()
}

// Lines devuelve copias de todos los renglones en orden de inserción.
func (l *Ledger) Lines() []*entity.DocumentLine {
	out := make([]*entity.DocumentLine, 0, len(l.lines))
	for _, line := range l.lines {
		out = append(out, line.Clone())
	}
	return out
}

// LineTotal devuelve quantity × precio base del tipo; cero para tipos sin total (traslado).
func (l *Ledger) LineTotal(line *entity.DocumentLine) decimal.Decimal {
	switch l.docType.Rules().Basis {
	case BasisPurchase:
		return line.Quantity.Mul(line.UnitPurchasePrice)
	case BasisSell:
		return line.Quantity.Mul(line.UnitSellPrice)
	}
	return decimal.Zero
}

// ProductInfo devuelve los datos de catálogo del producto (nombre, unidad, precios).
func (l *Ledger) ProductInfo(productID string) (*ProductInfo, error) {
	return l.catalog.Lookup(productID)
}

// Restore reescribe un renglón con el estado dado (rollback de la sesión cuando el
// almacén remoto falla). Si el renglón ya no está, se reinserta al final.
func (l *Ledger) Restore(prev *entity.DocumentLine) {
	if prev == nil {
		return
	}
	for i, line := range l.lines {
		if line.ID == prev.ID {
			l.lines[i] = prev.Clone()
			return
		}
	}
	l.lines = append(l.lines, prev.Clone())
}

// AdoptID reemplaza el ID placeholder de un renglón por el asignado por el servidor.
func (l *Ledger) AdoptID(placeholderID, persistedID string) {
	if persistedID == "" || placeholderID == persistedID {
		return
	}
	if line := l.findByID(placeholderID); line != nil {
		line.ID = persistedID
	}
}

// placedQuantity suma las cantidades ya colocadas para el producto, excluyendo excludeLineID.
func (l *Ledger) placedQuantity(productID, excludeLineID string) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range l.lines {
		if line.ProductID == productID && line.ID != excludeLineID {
			sum = sum.Add(line.Quantity)
		}
	}
	return sum
}

func (l *Ledger) findByID(lineID string) *entity.DocumentLine {
	for _, line := range l.lines {
		if line.ID == lineID {
			return line
		}
	}
	return nil
}

func (l *Ledger) findByProduct(productID string) *entity.DocumentLine {
	for _, line := range l.lines {
		if line.ProductID == productID {
			return line
		}
	}
	return nil
}
