// Package document implementa el motor de renglones de documentos de almacén:
// reglas por tipo de documento, validación de stock, totales y discrepancias.
package document

// Type identifica el tipo de documento de almacén. Los valores numéricos son
// los del backend y no deben cambiarse.
type Type int

const (
	TypeIncoming  Type = 1 // entrada
	TypeOutgoing  Type = 2 // salida
	TypeTransfer  Type = 3 // traslado entre zonas
	TypeInventory Type = 4 // inventario físico
	TypeWriteOff  Type = 5 // baja
)

// PriceBasis indica qué precio del renglón alimenta el total monetario del documento.
type PriceBasis int

const (
	BasisNone     PriceBasis = iota // sin total monetario (traslados)
	BasisPurchase                   // precio de compra
	BasisSell                       // precio de venta
)

// Rules agrupa el comportamiento de un tipo de documento. Toda la lógica
// condicionada por tipo consulta esta tabla; no se ramifica ad hoc por sitio de llamada.
type Rules struct {
	NeedsActualQuantity bool // el renglón lleva cantidad física contada
	StockConsuming      bool // sus cantidades descuentan stock registrado
	NeedsSenderZone     bool
	NeedsReceiverZone   bool
	Basis               PriceBasis
}

var rulesByType = map[Type]Rules{
	TypeIncoming:  {NeedsReceiverZone: true, Basis: BasisPurchase},
	TypeOutgoing:  {StockConsuming: true, NeedsSenderZone: true, Basis: BasisSell},
	TypeTransfer:  {NeedsSenderZone: true, NeedsReceiverZone: true, Basis: BasisNone},
	TypeInventory: {NeedsActualQuantity: true, Basis: BasisSell},
	TypeWriteOff:  {NeedsActualQuantity: true, StockConsuming: true, NeedsSenderZone: true, Basis: BasisPurchase},
}

// Valid reporta si el tipo existe en el catálogo.
func (t Type) Valid() bool {
	_, ok := rulesByType[t]
	return ok
}

// Rules devuelve las reglas del tipo. Tipo desconocido devuelve el cero (sin zonas, sin total).
func (t Type) Rules() Rules {
	return rulesByType[t]
}

// String devuelve el nombre del tipo para logs y respuestas.
func (t Type) String() string {
	switch t {
	case TypeIncoming:
		return "incoming"
	case TypeOutgoing:
		return "outgoing"
	case TypeTransfer:
		return "transfer"
	case TypeInventory:
		return "inventory"
	case TypeWriteOff:
		return "write_off"
	default:
		return "unknown"
	}
}
