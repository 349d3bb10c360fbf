package document

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/document"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// --- fakes ---

type fakeCatalog map[string]*document.ProductInfo

func (f fakeCatalog) Lookup(productID string) (*document.ProductInfo, error) {
	if p, ok := f[productID]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

type fakeZones map[string]*document.ZoneInfo

func (f fakeZones) Lookup(zoneID string) (*document.ZoneInfo, error) {
	if z, ok := f[zoneID]; ok {
		return z, nil
	}
	return nil, domain.ErrNotFound
}

// fakeLineStore simula el almacén remoto de renglones. Puede fallar a demanda y
// bloquear un Update hasta que el test lo libere, para provocar concurrencia real.
type fakeLineStore struct {
	lines      []*entity.DocumentLine
	failCreate error
	failUpdate error
	failDelete error

	creates int
	updates int
	deletes int

	updateStarted chan struct{}
	updateRelease chan struct{}
}

func (s *fakeLineStore) Create(_ context.Context, line *entity.DocumentLine) (*entity.DocumentLine, error) {
	s.creates++
	if s.failCreate != nil {
		return nil, s.failCreate
	}
	persisted := line.Clone()
	persisted.ID = fmt.Sprintf("srv-%d", s.creates)
	return persisted, nil
}

func (s *fakeLineStore) Update(_ context.Context, line *entity.DocumentLine) (*entity.DocumentLine, error) {
	s.updates++
	if s.updateStarted != nil {
		s.updateStarted <- struct{}{}
		<-s.updateRelease
	}
	if s.failUpdate != nil {
		return nil, s.failUpdate
	}
	return line.Clone(), nil
}

func (s *fakeLineStore) Delete(_ context.Context, _ string) error {
	s.deletes++
	return s.failDelete
}

func (s *fakeLineStore) ListByDocument(_ context.Context, _ string) ([]*entity.DocumentLine, error) {
	return s.lines, nil
}

func (s *fakeLineStore) DeleteByDocument(_ context.Context, _ string) error { return nil }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newTestSession(t *testing.T, docType document.Type, store *fakeLineStore) *Session {
	t.Helper()
	catalog := fakeCatalog{
		"p1": {ID: "p1", Name: "Tornillo", Unit: "caja", PurchasePrice: dec("10"), SellPrice: dec("15"), Stock: dec("5")},
	}
	zones := fakeZones{
		"z1": {ID: "z1", Name: "Estantería A"},
		"z2": {ID: "z2", Name: "Muelle"},
	}
	ledger, err := document.NewLedger("doc-1", docType, catalog, zones, nil)
	require.NoError(t, err)
	return newSession(ledger, store)
}

// --- tests ---

func TestSession_AddLine_AdoptaIDDelServidor(t *testing.T) {
	store := &fakeLineStore{}
	s := newTestSession(t, document.TypeOutgoing, store)

	out, err := s.AddLine(context.Background(), dto.AddLineRequest{ProductID: "p1", SenderZoneID: "z1"})
	require.NoError(t, err)
	require.NotNil(t, out.Line)

	assert.Equal(t, "srv-1", out.Line.ID)
	assert.Equal(t, "1", out.Line.Quantity)
	assert.Equal(t, "1", out.Totals.TotalQuantity)
	assert.Equal(t, 1, store.creates)
}

func TestSession_AddLine_RevierteSiElAlmacenFalla(t *testing.T) {
	store := &fakeLineStore{failCreate: errors.New("timeout")}
	s := newTestSession(t, document.TypeIncoming, store)

	_, err := s.AddLine(context.Background(), dto.AddLineRequest{ProductID: "p1", ReceiverZoneID: "z2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")

	lines, totals := s.Detail()
	assert.Empty(t, lines)
	assert.Equal(t, "0", totals.TotalQuantity)
}

func TestSession_AddLine_RechazoNoLlegaAlAlmacen(t *testing.T) {
	store := &fakeLineStore{}
	s := newTestSession(t, document.TypeOutgoing, store)

	_, err := s.AddLine(context.Background(), dto.AddLineRequest{ProductID: "p1", SenderZoneID: "z1"})
	require.NoError(t, err)

	// Segundo renglón del mismo producto: rechazo de negocio, cero peticiones extra.
	_, err = s.AddLine(context.Background(), dto.AddLineRequest{ProductID: "p1", SenderZoneID: "z1"})
	var rej *document.Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, document.ReasonDuplicateProduct, rej.Reason)
	assert.Equal(t, 1, store.creates)
}

func TestSession_UpdateQuantity_RechazoDejaElRenglonIntacto(t *testing.T) {
	store := &fakeLineStore{}
	s := newTestSession(t, document.TypeOutgoing, store)

	out, err := s.AddLine(context.Background(), dto.AddLineRequest{ProductID: "p1", SenderZoneID: "z1"})
	require.NoError(t, err)
	lineID := out.Line.ID

	_, err = s.UpdateQuantity(context.Background(), lineID, dto.UpdateLineQuantityRequest{Field: "quantity", Value: "9"})
	var rej *document.Rejection
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, document.ReasonStockInsufficient, rej.Reason)
	assert.Equal(t, "5", rej.Max.String())

	lines, _ := s.Detail()
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].Quantity)
	assert.Equal(t, 0, store.updates)
}

func TestSession_UpdateQuantity_RevierteSiElAlmacenFalla(t *testing.T) {
	store := &fakeLineStore{}
	s := newTestSession(t, document.TypeOutgoing, store)

	out, err := s.AddLine(context.Background(), dto.AddLineRequest{ProductID: "p1", SenderZoneID: "z1"})
	require.NoError(t, err)
	lineID := out.Line.ID

	store.failUpdate = errors.New("conexión perdida")
	_, err = s.UpdateQuantity(context.Background(), lineID, dto.UpdateLineQuantityRequest{Field: "quantity", Value: "3"})
	require.Error(t, err)

	lines, totals := s.Detail()
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].Quantity, "la cantidad vuelve al valor previo")
	assert.Equal(t, "1", totals.TotalQuantity)
}

func TestSession_UpdateQuantity_EntradaNoNumericaValeCero(t *testing.T) {
	store := &fakeLineStore{}
	s := newTestSession(t, document.TypeIncoming, store)

	out, err := s.AddLine(context.Background(), dto.AddLineRequest{ProductID: "p1", ReceiverZoneID: "z2"})
	require.NoError(t, err)

	res, err := s.UpdateQuantity(context.Background(), out.Line.ID, dto.UpdateLineQuantityRequest{Field: "quantity", Value: "abc"})
	require.NoError(t, err)
	assert.Equal(t, "0", res.Line.Quantity)
}

func TestSession_UpdatePrice_SiempreProcede(t *testing.T) {
	store := &fakeLineStore{}
	s := newTestSession(t, document.TypeOutgoing, store)

	out, err := s.AddLine(context.Background(), dto.AddLineRequest{ProductID: "p1", SenderZoneID: "z1"})
	require.NoError(t, err)

	res, err := s.UpdatePrice(context.Background(), out.Line.ID, dto.UpdateLinePriceRequest{Field: "sell_price", Value: "99.50"})
	require.NoError(t, err)
	assert.Equal(t, "99.5", res.Line.UnitSellPrice)
	require.NotNil(t, res.Totals.TotalAmount)
	assert.Equal(t, "99.5", *res.Totals.TotalAmount)
}

func TestSession_RemoveLine_ReinsertaSiElAlmacenFalla(t *testing.T) {
	store := &fakeLineStore{}
	s := newTestSession(t, document.TypeIncoming, store)

	out, err := s.AddLine(context.Background(), dto.AddLineRequest{ProductID: "p1", ReceiverZoneID: "z2"})
	require.NoError(t, err)

	store.failDelete = errors.New("timeout")
	_, err = s.RemoveLine(context.Background(), out.Line.ID)
	require.Error(t, err)

	lines, _ := s.Detail()
	assert.Len(t, lines, 1, "el renglón se reinserta al fallar el borrado remoto")
}

func TestSession_RenglonConPeticionEnVueloQuedaBloqueado(t *testing.T) {
	store := &fakeLineStore{
		updateStarted: make(chan struct{}),
		updateRelease: make(chan struct{}),
	}
	s := newTestSession(t, document.TypeIncoming, store)

	out, err := s.AddLine(context.Background(), dto.AddLineRequest{ProductID: "p1", ReceiverZoneID: "z2"})
	require.NoError(t, err)
	lineID := out.Line.ID

	done := make(chan error, 1)
	go func() {
		_, err := s.UpdateQuantity(context.Background(), lineID, dto.UpdateLineQuantityRequest{Field: "quantity", Value: "4"})
		done <- err
	}()

	<-store.updateStarted // la primera petición está en vuelo

	_, err = s.UpdatePrice(context.Background(), lineID, dto.UpdateLinePriceRequest{Field: "sell_price", Value: "20"})
	assert.ErrorIs(t, err, domain.ErrLineBusy)

	_, err = s.RemoveLine(context.Background(), lineID)
	assert.ErrorIs(t, err, domain.ErrLineBusy)

	close(store.updateRelease)
	require.NoError(t, <-done)
	store.updateStarted = nil

	// Con la petición confirmada el renglón vuelve a estar disponible.
	res, err := s.UpdatePrice(context.Background(), lineID, dto.UpdateLinePriceRequest{Field: "sell_price", Value: "20"})
	require.NoError(t, err)
	assert.Equal(t, "4", res.Line.Quantity)
}
