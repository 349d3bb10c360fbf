package document_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/document"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de colaboradores
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalog map[string]*document.ProductInfo

func (f fakeCatalog) Lookup(productID string) (*document.ProductInfo, error) {
	p, ok := f[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

type fakeZones map[string]string

func (f fakeZones) Lookup(zoneID string) (*document.ZoneInfo, error) {
	name, ok := f[zoneID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &document.ZoneInfo{ID: zoneID, Name: name}, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// producto de catálogo con compra 100, venta 150 y el stock indicado.
func product(id, unit, stock string) *document.ProductInfo {
	return &document.ProductInfo{
		ID:            id,
		Name:          "Producto " + id,
		Unit:          unit,
		PurchasePrice: dec("100"),
		SellPrice:     dec("150"),
		Stock:         dec(stock),
	}
}

func newLedger(t *testing.T, typ document.Type, catalog fakeCatalog) *document.Ledger {
	t.Helper()
	zones := fakeZones{"z-env": "Muelle envío", "z-rec": "Muelle recepción"}
	l, err := document.NewLedger("doc-1", typ, catalog, zones, nil)
	require.NoError(t, err)
	return l
}

var defaults = document.LineDefaults{SenderZoneID: "z-env", ReceiverZoneID: "z-rec"}

// ──────────────────────────────────────────────────────────────────────────────
// AddLine
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: entrada de producto (compra=100, venta=150, stock=0), cantidad 1.
// Total al precio de compra, solo zona receptora, sin cantidad física.
func TestAddLine_Entrada(t *testing.T) {
	l := newLedger(t, document.TypeIncoming, fakeCatalog{"P": product("P", "pz", "0")})

	line, err := l.AddLine("P", defaults)
	require.NoError(t, err, "una entrada no valida stock: stock=0 no impide recibir")

	assert.True(t, line.Quantity.Equal(dec("1")), "la cantidad inicial debe ser 1")
	assert.Nil(t, line.ActualQuantity, "entrada no lleva cantidad física")
	assert.Empty(t, line.SenderZoneID, "entrada no usa zona emisora")
	assert.Equal(t, "z-rec", line.ReceiverZoneID)
	assert.True(t, line.UnitPurchasePrice.Equal(dec("100")))
	assert.True(t, line.UnitSellPrice.Equal(dec("150")))

	totals := l.ComputeTotals()
	assert.True(t, totals.TotalAmount.Equal(dec("100")), "el total de una entrada usa el precio de compra")
	assert.True(t, totals.HasAmount)
	assert.False(t, totals.HasDiscrepancy)
	assert.False(t, totals.HasProfit)
}

func TestAddLine_ProductoDuplicadoRechazado(t *testing.T) {
	l := newLedger(t, document.TypeIncoming, fakeCatalog{"P": product("P", "pz", "0")})

	_, err := l.AddLine("P", defaults)
	require.NoError(t, err)

	_, err = l.AddLine("P", defaults)
	require.Error(t, err, "segundo renglón del mismo producto debe rechazarse")
	assert.ErrorIs(t, err, domain.ErrDuplicateProduct)

	var rej *document.Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, document.ReasonDuplicateProduct, rej.Reason)
	assert.Equal(t, "P", rej.ProductID)
	assert.Equal(t, 1, l.Len(), "el rechazo no debe dejar estado parcial")
}

func TestAddLine_ProductoInexistente(t *testing.T) {
	l := newLedger(t, document.TypeOutgoing, fakeCatalog{})

	_, err := l.AddLine("fantasma", defaults)
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto fuera de catálogo es falla, no rechazo de negocio")
	assert.Equal(t, 0, l.Len())
}

func TestAddLine_SalidaSinStockRechazada(t *testing.T) {
	l := newLedger(t, document.TypeOutgoing, fakeCatalog{"Q": product("Q", "kg", "0")})

	_, err := l.AddLine("Q", defaults)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var rej *document.Rejection
	require.ErrorAs(t, err, &rej)
	assert.True(t, rej.Available.Equal(decimal.Zero))
	assert.Equal(t, "kg", rej.Unit, "el rechazo lleva la unidad para el mensaje correctivo")
	assert.Equal(t, 0, l.Len(), "ningún renglón se agrega tras el rechazo")
}

// Escenario C: en inventario la cantidad física arranca igual al registro;
// contar 3 con registro 1 da discrepancia +2 (sobrante).
func TestAddLine_Inventario_Discrepancia(t *testing.T) {
	l := newLedger(t, document.TypeInventory, fakeCatalog{"R": product("R", "pz", "10")})

	line, err := l.AddLine("R", defaults)
	require.NoError(t, err)
	require.NotNil(t, line.ActualQuantity, "inventario lleva cantidad física")
	assert.True(t, line.ActualQuantity.Equal(dec("1")), "la física arranca igual al registro")
	assert.Empty(t, line.SenderZoneID, "inventario no usa zonas")
	assert.Empty(t, line.ReceiverZoneID)

	_, err = l.UpdateQuantity(line.ID, document.FieldActualQuantity, dec("3"))
	require.NoError(t, err)

	totals := l.ComputeTotals()
	assert.True(t, totals.HasDiscrepancy)
	assert.True(t, totals.Discrepancy.Equal(dec("2")), "discrepancia = física − registro = 3 − 1")
	assert.True(t, totals.TotalAmount.Equal(dec("150")), "inventario totaliza al precio de venta")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateQuantity
// ──────────────────────────────────────────────────────────────────────────────

// Escenario B: stock=5 y el renglón ya coloca 5; subir a 6 se rechaza con
// disponible 0 y máximo admisible 5; el renglón no cambia.
func TestUpdateQuantity_SalidaStockInsuficiente(t *testing.T) {
	l := newLedger(t, document.TypeOutgoing, fakeCatalog{"Q": product("Q", "pz", "5")})

	line, err := l.AddLine("Q", defaults)
	require.NoError(t, err)
	_, err = l.UpdateQuantity(line.ID, document.FieldQuantity, dec("5"))
	require.NoError(t, err, "5 de 5 en stock debe aceptarse")

	_, err = l.UpdateQuantity(line.ID, document.FieldQuantity, dec("6"))
	require.Error(t, err)

	var rej *document.Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, document.ReasonStockInsufficient, rej.Reason)
	assert.True(t, rej.Available.Equal(decimal.Zero), "disponible = stock − ya colocado = 0")
	assert.True(t, rej.Max.Equal(dec("5")), "máximo admisible = stock − otros renglones = 5")

	got := l.Line(line.ID)
	assert.True(t, got.Quantity.Equal(dec("5")), "el renglón queda intacto tras el rechazo")
}

func TestUpdateQuantity_NegativoSeCorrigeACero(t *testing.T) {
	l := newLedger(t, document.TypeIncoming, fakeCatalog{"P": product("P", "pz", "0")})
	line, err := l.AddLine("P", defaults)
	require.NoError(t, err)

	got, err := l.UpdateQuantity(line.ID, document.FieldQuantity, dec("-7"))
	require.NoError(t, err, "entrada negativa se corrige a cero, nunca se rechaza")
	assert.True(t, got.Quantity.Equal(decimal.Zero))
}

func TestUpdateQuantity_FisicaEnTipoSinConciliacion(t *testing.T) {
	l := newLedger(t, document.TypeIncoming, fakeCatalog{"P": product("P", "pz", "0")})
	line, err := l.AddLine("P", defaults)
	require.NoError(t, err)

	_, err = l.UpdateQuantity(line.ID, document.FieldActualQuantity, dec("2"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada no lleva cantidad física")
}

func TestUpdateQuantity_RenglonInexistente(t *testing.T) {
	l := newLedger(t, document.TypeIncoming, fakeCatalog{"P": product("P", "pz", "0")})
	_, err := l.UpdateQuantity("no-existe", document.FieldQuantity, dec("1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El stock liberado al quitar un renglón vuelve a estar disponible.
func TestRemoveLine_LiberaStock(t *testing.T) {
	l := newLedger(t, document.TypeOutgoing, fakeCatalog{"Q": product("Q", "pz", "5")})

	line, err := l.AddLine("Q", defaults)
	require.NoError(t, err)
	_, err = l.UpdateQuantity(line.ID, document.FieldQuantity, dec("5"))
	require.NoError(t, err)

	require.NoError(t, l.RemoveLine(line.ID))

	line2, err := l.AddLine("Q", defaults)
	require.NoError(t, err, "tras eliminar el renglón el stock queda libre otra vez")
	_, err = l.UpdateQuantity(line2.ID, document.FieldQuantity, dec("5"))
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdatePrice
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdatePrice_SoloElPrecioBaseMueveElTotal(t *testing.T) {
	l := newLedger(t, document.TypeIncoming, fakeCatalog{"P": product("P", "pz", "0")})
	line, err := l.AddLine("P", defaults)
	require.NoError(t, err)

	// Entrada totaliza a precio de compra: editar la venta no cambia el total.
	_, err = l.UpdatePrice(line.ID, document.FieldSellPrice, dec("999"))
	require.NoError(t, err)
	assert.True(t, l.ComputeTotals().TotalAmount.Equal(dec("100")))

	_, err = l.UpdatePrice(line.ID, document.FieldPurchasePrice, dec("120"))
	require.NoError(t, err)
	assert.True(t, l.ComputeTotals().TotalAmount.Equal(dec("120")))
}

func TestUpdatePrice_NegativoSeCorrigeACero(t *testing.T) {
	l := newLedger(t, document.TypeIncoming, fakeCatalog{"P": product("P", "pz", "0")})
	line, err := l.AddLine("P", defaults)
	require.NoError(t, err)

	got, err := l.UpdatePrice(line.ID, document.FieldPurchasePrice, dec("-50"))
	require.NoError(t, err)
	assert.True(t, got.UnitPurchasePrice.Equal(decimal.Zero))
}

func TestUpdatePrice_NoMutaElCatalogo(t *testing.T) {
	catalog := fakeCatalog{"P": product("P", "pz", "0")}
	l := newLedger(t, document.TypeIncoming, catalog)
	line, err := l.AddLine("P", defaults)
	require.NoError(t, err)

	_, err = l.UpdatePrice(line.ID, document.FieldPurchasePrice, dec("777"))
	require.NoError(t, err)
	assert.True(t, catalog["P"].PurchasePrice.Equal(dec("100")), "el precio del catálogo no cambia al editar el renglón")
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

// Escenario D: la baja totaliza al precio de compra y no calcula margen.
func TestComputeTotals_Baja(t *testing.T) {
	l := newLedger(t, document.TypeWriteOff, fakeCatalog{"P": product("P", "pz", "10")})
	line, err := l.AddLine("P", defaults)
	require.NoError(t, err)
	require.NotNil(t, line.ActualQuantity, "la baja lleva cantidad física")
	assert.Equal(t, "z-env", line.SenderZoneID, "la baja sale de la zona emisora")

	totals := l.ComputeTotals()
	assert.True(t, totals.TotalAmount.Equal(dec("100")), "la baja totaliza al precio de compra")
	assert.False(t, totals.HasProfit, "el margen no aplica a bajas")
	assert.True(t, totals.HasDiscrepancy)
}

// Escenario E: el margen de una salida se calcula contra el costo del catálogo (80),
// no contra el costo editado del renglón (90): (150−80)×2 = 140.
func TestComputeTotals_SalidaMargenUsaCostoDeCatalogo(t *testing.T) {
	catalog := fakeCatalog{"P": {
		ID: "P", Unit: "pz",
		PurchasePrice: dec("80"),
		SellPrice:     dec("150"),
		Stock:         dec("10"),
	}}
	l := newLedger(t, document.TypeOutgoing, catalog)

	line, err := l.AddLine("P", defaults)
	require.NoError(t, err)
	_, err = l.UpdateQuantity(line.ID, document.FieldQuantity, dec("2"))
	require.NoError(t, err)
	_, err = l.UpdatePrice(line.ID, document.FieldPurchasePrice, dec("90"))
	require.NoError(t, err)

	totals := l.ComputeTotals()
	assert.True(t, totals.HasProfit)
	assert.True(t, totals.Profit.Equal(dec("140")),
		"margen = (venta − costo catálogo) × cantidad = (150−80)×2, no el costo editado")
	assert.True(t, totals.TotalAmount.Equal(dec("300")), "la salida totaliza al precio de venta")
}

func TestComputeTotals_TrasladoSinTotalMonetario(t *testing.T) {
	l := newLedger(t, document.TypeTransfer, fakeCatalog{"P": product("P", "pz", "10")})
	line, err := l.AddLine("P", defaults)
	require.NoError(t, err)
	assert.Equal(t, "z-env", line.SenderZoneID, "traslado usa ambas zonas")
	assert.Equal(t, "z-rec", line.ReceiverZoneID)

	totals := l.ComputeTotals()
	assert.False(t, totals.HasAmount)
	assert.True(t, totals.TotalAmount.Equal(decimal.Zero))
}

// ComputeTotals es pura: dos llamadas sin mutación intermedia dan lo mismo.
func TestComputeTotals_Idempotente(t *testing.T) {
	l := newLedger(t, document.TypeOutgoing, fakeCatalog{"P": product("P", "pz", "10")})
	line, err := l.AddLine("P", defaults)
	require.NoError(t, err)
	_, err = l.UpdateQuantity(line.ID, document.FieldQuantity, dec("3"))
	require.NoError(t, err)

	a := l.ComputeTotals()
	b := l.ComputeTotals()
	assert.True(t, a.TotalQuantity.Equal(b.TotalQuantity))
	assert.True(t, a.TotalActualQuantity.Equal(b.TotalActualQuantity))
	assert.True(t, a.Discrepancy.Equal(b.Discrepancy))
	assert.True(t, a.TotalAmount.Equal(b.TotalAmount))
	assert.True(t, a.Profit.Equal(b.Profit))
}

// Agregar y quitar un renglón sin otra mutación deja los totales como estaban.
func TestAddRemove_RoundTripRestauraTotales(t *testing.T) {
	catalog := fakeCatalog{
		"P": product("P", "pz", "10"),
		"Q": product("Q", "pz", "10"),
	}
	l := newLedger(t, document.TypeOutgoing, catalog)
	_, err := l.AddLine("P", defaults)
	require.NoError(t, err)
	before := l.ComputeTotals()

	line, err := l.AddLine("Q", defaults)
	require.NoError(t, err)
	require.NoError(t, l.RemoveLine(line.ID))

	after := l.ComputeTotals()
	assert.True(t, before.TotalQuantity.Equal(after.TotalQuantity))
	assert.True(t, before.TotalAmount.Equal(after.TotalAmount))
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariantes sobre secuencias de operaciones
// ──────────────────────────────────────────────────────────────────────────────

// Tras cualquier secuencia de altas y bajas nunca hay dos renglones del mismo producto,
// y en tipos que consumen stock lo colocado nunca excede el saldo del catálogo.
func TestSecuencia_InvariantesDeUnicidadYStock(t *testing.T) {
	catalog := fakeCatalog{
		"A": product("A", "pz", "3"),
		"B": product("B", "pz", "2"),
	}
	l := newLedger(t, document.TypeOutgoing, catalog)

	ops := []func() error{
		func() error { _, err := l.AddLine("A", defaults); return err },
		func() error { _, err := l.AddLine("B", defaults); return err },
		func() error { _, err := l.AddLine("A", defaults); return err }, // duplicado
		func() error {
			line := firstLineFor(l, "A")
			_, err := l.UpdateQuantity(line, document.FieldQuantity, dec("3"))
			return err
		},
		func() error {
			line := firstLineFor(l, "B")
			_, err := l.UpdateQuantity(line, document.FieldQuantity, dec("5"))
			return err // excede stock
		},
		func() error { return l.RemoveLine(firstLineFor(l, "B")) },
		func() error { _, err := l.AddLine("B", defaults); return err },
	}

	for i, op := range ops {
		_ = op() // los rechazos son resultados esperados en la secuencia

		seen := map[string]bool{}
		placed := map[string]decimal.Decimal{}
		for _, line := range l.Lines() {
			require.Falsef(t, seen[line.ProductID], "paso %d: producto repetido %s", i, line.ProductID)
			seen[line.ProductID] = true
			prev, ok := placed[line.ProductID]
			if !ok {
				prev = decimal.Zero
			}
			placed[line.ProductID] = prev.Add(line.Quantity)
		}
		for pid, qty := range placed {
			info, err := catalog.Lookup(pid)
			require.NoError(t, err)
			require.Truef(t, qty.LessThanOrEqual(info.Stock),
				"paso %d: colocado %s excede stock %s de %s", i, qty, info.Stock, pid)
		}
	}
}

func firstLineFor(l *document.Ledger, productID string) string {
	for _, line := range l.Lines() {
		if line.ProductID == productID {
			return line.ID
		}
	}
	return ""
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción y utilidades
// ──────────────────────────────────────────────────────────────────────────────

func TestNewLedger_TipoInvalido(t *testing.T) {
	_, err := document.NewLedger("doc-1", document.Type(99), fakeCatalog{}, fakeZones{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRejection_EsErrorPeroNoPanico(t *testing.T) {
	l := newLedger(t, document.TypeOutgoing, fakeCatalog{"Q": product("Q", "pz", "0")})
	_, err := l.AddLine("Q", defaults)

	// Un rechazo es un error tipificado; errors.As recupera los datos correctivos.
	var rej *document.Rejection
	assert.True(t, errors.As(err, &rej))
	assert.NotEmpty(t, rej.Error())
}
