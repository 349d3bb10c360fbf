package document

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/document"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// --- fakes de persistencia para contabilización ---

type fakeDocRepo struct {
	docs map[string]*entity.Document
	seq  int
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{docs: make(map[string]*entity.Document)}
}

func (r *fakeDocRepo) Create(doc *entity.Document) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeDocRepo) GetByID(id string) (*entity.Document, error) {
	return r.docs[id], nil
}

func (r *fakeDocRepo) Update(doc *entity.Document) error {
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeDocRepo) UpdateStatus(id, status string) error {
	if d, ok := r.docs[id]; ok {
		d.Status = status
	}
	return nil
}

func (r *fakeDocRepo) List(_ repository.DocumentFilter) ([]*entity.Document, error) {
	out := make([]*entity.Document, 0, len(r.docs))
	for _, d := range r.docs {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDocRepo) NextNumber(typeID int) (string, error) {
	r.seq++
	return fmt.Sprintf("%06d", r.seq), nil
}

func (r *fakeDocRepo) Delete(id string) error {
	delete(r.docs, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(productID string, quantity decimal.Decimal) error {
	p, ok := r.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}
func (r *fakeProductRepo) List(_, _ int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                   { delete(r.products, id); return nil }

type fakeZoneStockRepo struct {
	stock map[string]*entity.ZoneStock // clave productID/zoneID
}

func zsKey(productID, zoneID string) string { return productID + "/" + zoneID }

func (r *fakeZoneStockRepo) Get(productID, zoneID string) (*entity.ZoneStock, error) {
	return r.stock[zsKey(productID, zoneID)], nil
}

func (r *fakeZoneStockRepo) GetForUpdate(productID, zoneID string) (*entity.ZoneStock, error) {
	return r.stock[zsKey(productID, zoneID)], nil
}

func (r *fakeZoneStockRepo) Upsert(s *entity.ZoneStock) error {
	r.stock[zsKey(s.ProductID, s.ZoneID)] = s
	return nil
}

type fakeZoneRepo struct{}

func (fakeZoneRepo) Create(_ *entity.StorageZone) error { return nil }
func (fakeZoneRepo) GetByID(id string) (*entity.StorageZone, error) {
	return &entity.StorageZone{ID: id, Name: id}, nil
}
func (fakeZoneRepo) Update(_ *entity.StorageZone) error             { return nil }
func (fakeZoneRepo) List(_, _ int) ([]*entity.StorageZone, error)   { return nil, nil }
func (fakeZoneRepo) Delete(_ string) error                          { return nil }

// fakeTxRunner ejecuta la función con los mismos repos, sin transacción real.
type fakeTxRunner struct {
	products  *fakeProductRepo
	zoneStock *fakeZoneStockRepo
	lines     *fakeLineStore
	docs      *fakeDocRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	repository.ProductRepository,
	repository.ZoneStockRepository,
	repository.DocumentLineRepository,
	repository.DocumentRepository,
) error) error {
	return fn(t.products, t.zoneStock, t.lines, t.docs)
}

type postFixture struct {
	uc        *UseCase
	docs      *fakeDocRepo
	products  *fakeProductRepo
	zoneStock *fakeZoneStockRepo
	lines     *fakeLineStore
}

func newPostFixture(t *testing.T, docType document.Type, lines []*entity.DocumentLine) *postFixture {
	t.Helper()
	docs := newFakeDocRepo()
	docs.docs["doc-1"] = &entity.Document{
		ID:     "doc-1",
		TypeID: int(docType),
		Number: "000001",
		Status: entity.DocumentStatusDraft,
	}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Tornillo", UnitMeasure: "caja", PurchasePrice: dec("10"), SellPrice: dec("15"), StockQuantity: dec("20")},
	}}
	zoneStock := &fakeZoneStockRepo{stock: map[string]*entity.ZoneStock{
		zsKey("p1", "z1"): {ProductID: "p1", ZoneID: "z1", Quantity: dec("20")},
	}}
	lineStore := &fakeLineStore{lines: lines}
	tx := &fakeTxRunner{products: products, zoneStock: zoneStock, lines: lineStore, docs: docs}
	sessions := NewSessionManager(docs, lineStore, products, fakeZoneRepo{})
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return &postFixture{
		uc:        NewUseCase(docs, lineStore, products, fakeZoneRepo{}, sessions, tx, log),
		docs:      docs,
		products:  products,
		zoneStock: zoneStock,
		lines:     lineStore,
	}
}

func line(docType document.Type, qty string) *entity.DocumentLine {
	l := &entity.DocumentLine{
		ID:                "l1",
		DocumentID:        "doc-1",
		ProductID:         "p1",
		Quantity:          dec(qty),
		UnitPurchasePrice: dec("10"),
		UnitSellPrice:     dec("15"),
	}
	rules := docType.Rules()
	if rules.NeedsSenderZone {
		l.SenderZoneID = "z1"
	}
	if rules.NeedsReceiverZone {
		l.ReceiverZoneID = "z2"
	}
	if rules.NeedsActualQuantity {
		actual := dec(qty)
		l.ActualQuantity = &actual
	}
	return l
}

func dtoCreate(typeID int) dto.CreateDocumentRequest {
	return dto.CreateDocumentRequest{TypeID: typeID}
}

// --- tests ---

func TestPost_Entrada_SumaStockYZonaReceptora(t *testing.T) {
	f := newPostFixture(t, document.TypeIncoming, []*entity.DocumentLine{line(document.TypeIncoming, "5")})

	res, err := f.uc.Post(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusPosted, res.Status)

	assert.Equal(t, "25", f.products.products["p1"].StockQuantity.String())
	assert.Equal(t, "5", f.zoneStock.stock[zsKey("p1", "z2")].Quantity.String())
	assert.Equal(t, entity.DocumentStatusPosted, f.docs.docs["doc-1"].Status)
}

func TestPost_Salida_DescuentaStockYZonaEmisora(t *testing.T) {
	f := newPostFixture(t, document.TypeOutgoing, []*entity.DocumentLine{line(document.TypeOutgoing, "8")})

	_, err := f.uc.Post(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, "12", f.products.products["p1"].StockQuantity.String())
	assert.Equal(t, "12", f.zoneStock.stock[zsKey("p1", "z1")].Quantity.String())
}

func TestPost_Salida_StockInsuficienteAbortaSinContabilizar(t *testing.T) {
	f := newPostFixture(t, document.TypeOutgoing, []*entity.DocumentLine{line(document.TypeOutgoing, "50")})

	_, err := f.uc.Post(context.Background(), "doc-1")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, entity.DocumentStatusDraft, f.docs.docs["doc-1"].Status)
}

func TestPost_Traslado_MueveEntreZonasSinTocarElTotal(t *testing.T) {
	f := newPostFixture(t, document.TypeTransfer, []*entity.DocumentLine{line(document.TypeTransfer, "7")})

	_, err := f.uc.Post(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, "20", f.products.products["p1"].StockQuantity.String(), "el total del producto no cambia")
	assert.Equal(t, "13", f.zoneStock.stock[zsKey("p1", "z1")].Quantity.String())
	assert.Equal(t, "7", f.zoneStock.stock[zsKey("p1", "z2")].Quantity.String())
}

func TestPost_Inventario_ElConteoPasaASerElSaldo(t *testing.T) {
	l := line(document.TypeInventory, "20")
	actual := dec("17")
	l.ActualQuantity = &actual
	f := newPostFixture(t, document.TypeInventory, []*entity.DocumentLine{l})

	_, err := f.uc.Post(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, "17", f.products.products["p1"].StockQuantity.String())
}

func TestPost_Baja_DescuentaCantidadRegistrada(t *testing.T) {
	f := newPostFixture(t, document.TypeWriteOff, []*entity.DocumentLine{line(document.TypeWriteOff, "4")})

	_, err := f.uc.Post(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, "16", f.products.products["p1"].StockQuantity.String())
	assert.Equal(t, "16", f.zoneStock.stock[zsKey("p1", "z1")].Quantity.String())
}

func TestPost_DocumentoYaContabilizado(t *testing.T) {
	f := newPostFixture(t, document.TypeIncoming, []*entity.DocumentLine{line(document.TypeIncoming, "5")})
	f.docs.docs["doc-1"].Status = entity.DocumentStatusPosted

	_, err := f.uc.Post(context.Background(), "doc-1")
	assert.ErrorIs(t, err, domain.ErrDocumentPosted)
}

func TestPost_DocumentoSinRenglones(t *testing.T) {
	f := newPostFixture(t, document.TypeIncoming, nil)

	_, err := f.uc.Post(context.Background(), "doc-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_AsignaConsecutivoYBorrador(t *testing.T) {
	f := newPostFixture(t, document.TypeIncoming, nil)

	res, err := f.uc.Create(dtoCreate(1), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "000001", res.Number)
	assert.Equal(t, entity.DocumentStatusDraft, res.Status)
	assert.Equal(t, "incoming", res.Type)
}

func TestCreate_TipoDesconocido(t *testing.T) {
	f := newPostFixture(t, document.TypeIncoming, nil)

	_, err := f.uc.Create(dtoCreate(9), "user-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessionManager_NoAbreDocumentosContabilizados(t *testing.T) {
	f := newPostFixture(t, document.TypeIncoming, nil)
	f.docs.docs["doc-1"].Status = entity.DocumentStatusPosted

	m := NewSessionManager(f.docs, f.lines, f.products, fakeZoneRepo{})
	_, err := m.Open(context.Background(), "doc-1")
	assert.ErrorIs(t, err, domain.ErrDocumentPosted)
}

func TestSessionManager_GetSinSesionAbierta(t *testing.T) {
	f := newPostFixture(t, document.TypeIncoming, nil)
	m := NewSessionManager(f.docs, f.lines, f.products, fakeZoneRepo{})

	_, err := m.Get("doc-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	s1, err := m.Open(context.Background(), "doc-1")
	require.NoError(t, err)
	s2, err := m.Get("doc-1")
	require.NoError(t, err)
	assert.Same(t, s1, s2)

	m.Close("doc-1")
	_, err = m.Get("doc-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
