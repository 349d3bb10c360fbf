package document

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/document"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// UseCase casos de uso de documentos: CRUD de cabeceras, detalle con totales
// y contabilización transaccional.
type UseCase struct {
	docRepo     repository.DocumentRepository
	lineRepo    repository.DocumentLineRepository
	productRepo repository.ProductRepository
	zoneRepo    repository.StorageZoneRepository
	sessions    *SessionManager
	tx          TxRunner
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de documentos.
func NewUseCase(
	docRepo repository.DocumentRepository,
	lineRepo repository.DocumentLineRepository,
	productRepo repository.ProductRepository,
	zoneRepo repository.StorageZoneRepository,
	sessions *SessionManager,
	tx TxRunner,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		docRepo:     docRepo,
		lineRepo:    lineRepo,
		productRepo: productRepo,
		zoneRepo:    zoneRepo,
		sessions:    sessions,
		tx:          tx,
		log:         log,
	}
}

// Create crea la cabecera de un documento en borrador y asigna el consecutivo por tipo.
func (uc *UseCase) Create(in dto.CreateDocumentRequest, createdBy string) (*dto.DocumentResponse, error) {
	if !document.Type(in.TypeID).Valid() {
		return nil, fmt.Errorf("%w: tipo de documento %d desconocido", domain.ErrInvalidInput, in.TypeID)
	}
	number, err := uc.docRepo.NextNumber(in.TypeID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	doc := &entity.Document{
		ID:         uuid.New().String(),
		TypeID:     in.TypeID,
		Number:     number,
		Date:       date,
		Comment:    in.Comment,
		Status:     entity.DocumentStatusDraft,
		SupplierID: in.SupplierID,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// GetByID devuelve la cabecera con renglones y totales. Los totales se derivan
// de los renglones persistidos, nunca se leen almacenados.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.DocumentDetailResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.lineRepo.ListByDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	ledger, err := document.NewLedger(
		id,
		document.Type(doc.TypeID),
		catalogAdapter{products: uc.productRepo},
		zoneAdapter{zones: uc.zoneRepo},
		lines,
	)
	if err != nil {
		return nil, err
	}
	lineOut := make([]dto.LineResponse, 0, len(lines))
	for _, line := range ledger.Lines() {
		lineOut = append(lineOut, *toLineResponse(ledger, line))
	}
	return &dto.DocumentDetailResponse{
		Document: *toDocumentResponse(doc),
		Lines:    lineOut,
		Totals:   toTotalsResponse(ledger.ComputeTotals()),
	}, nil
}

// List lista documentos con filtros de tipo, estado y rango de fechas.
func (uc *UseCase) List(filter repository.DocumentFilter) (*dto.DocumentListResponse, error) {
	docs, err := uc.docRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, *toDocumentResponse(d))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Update edita la cabecera de un documento en borrador. Tipo y consecutivo no cambian.
func (uc *UseCase) Update(id string, in dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Status == entity.DocumentStatusPosted {
		return nil, domain.ErrDocumentPosted
	}
	if in.Date != nil {
		doc.Date = *in.Date
	}
	if in.Comment != nil {
		doc.Comment = *in.Comment
	}
	if in.SupplierID != nil {
		doc.SupplierID = *in.SupplierID
	}
	doc.UpdatedAt = time.Now()
	if err := uc.docRepo.Update(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// Delete elimina un documento en borrador junto con sus renglones y cierra su
// sesión de edición si la hay. Los contabilizados no se borran.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if doc.Status == entity.DocumentStatusPosted {
		return domain.ErrDocumentPosted
	}
	if err := uc.lineRepo.DeleteByDocument(ctx, id); err != nil {
		return err
	}
	if err := uc.docRepo.Delete(id); err != nil {
		return err
	}
	uc.sessions.Close(id)
	return nil
}

// Post contabiliza el documento: ajusta stock de productos y zonas según el tipo
// y marca la cabecera como posted, todo dentro de una transacción. Tras
// contabilizar, la sesión de edición se cierra.
func (uc *UseCase) Post(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Status == entity.DocumentStatusPosted {
		return nil, domain.ErrDocumentPosted
	}
	lines, err := uc.lineRepo.ListByDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: documento sin renglones", domain.ErrInvalidInput)
	}

	docType := document.Type(doc.TypeID)
	err = uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		zoneStockRepo repository.ZoneStockRepository,
		_ repository.DocumentLineRepository,
		docRepo repository.DocumentRepository,
	) error {
		for _, line := range lines {
			if err := applyLine(docType, line, productRepo, zoneStockRepo); err != nil {
				return err
			}
		}
		return docRepo.UpdateStatus(id, entity.DocumentStatusPosted)
	})
	if err != nil {
		return nil, err
	}

	uc.sessions.Close(id)
	doc.Status = entity.DocumentStatusPosted
	uc.log.Info().
		Str("document_id", id).
		Str("type", docType.String()).
		Int("lines", len(lines)).
		Msg("documento contabilizado")
	return toDocumentResponse(doc), nil
}

// applyLine ajusta el stock que corresponde a un renglón según el tipo de documento.
func applyLine(
	docType document.Type,
	line *entity.DocumentLine,
	productRepo repository.ProductRepository,
	zoneStockRepo repository.ZoneStockRepository,
) error {
	switch docType {
	case document.TypeIncoming:
		if err := adjustProductStock(productRepo, line.ProductID, line.Quantity); err != nil {
			return err
		}
		return adjustZoneStock(zoneStockRepo, line.ProductID, line.ReceiverZoneID, line.Quantity)

	case document.TypeOutgoing:
		if err := adjustProductStock(productRepo, line.ProductID, line.Quantity.Neg()); err != nil {
			return err
		}
		return adjustZoneStock(zoneStockRepo, line.ProductID, line.SenderZoneID, line.Quantity.Neg())

	case document.TypeTransfer:
		// El total del producto no cambia; solo se mueve entre zonas.
		if err := adjustZoneStock(zoneStockRepo, line.ProductID, line.SenderZoneID, line.Quantity.Neg()); err != nil {
			return err
		}
		return adjustZoneStock(zoneStockRepo, line.ProductID, line.ReceiverZoneID, line.Quantity)

	case document.TypeInventory:
		// El conteo físico pasa a ser el saldo registrado.
		actual := line.Quantity
		if line.ActualQuantity != nil {
			actual = *line.ActualQuantity
		}
		return productRepo.UpdateStock(line.ProductID, actual)

	case document.TypeWriteOff:
		if err := adjustProductStock(productRepo, line.ProductID, line.Quantity.Neg()); err != nil {
			return err
		}
		return adjustZoneStock(zoneStockRepo, line.ProductID, line.SenderZoneID, line.Quantity.Neg())

	default:
		return fmt.Errorf("%w: tipo de documento %d desconocido", domain.ErrInvalidInput, int(docType))
	}
}

// adjustProductStock suma delta al saldo registrado del producto; nunca lo deja negativo.
func adjustProductStock(productRepo repository.ProductRepository, productID string, delta decimal.Decimal) error {
	p, err := productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	next := p.StockQuantity.Add(delta)
	if next.IsNegative() {
		return fmt.Errorf("%w: producto %s, disponible %s", domain.ErrInsufficientStock, p.Name, p.StockQuantity)
	}
	return productRepo.UpdateStock(productID, next)
}

// adjustZoneStock suma delta al stock del producto en la zona, bloqueando la fila.
// Zona sin fila previa parte de cero.
func adjustZoneStock(zoneStockRepo repository.ZoneStockRepository, productID, zoneID string, delta decimal.Decimal) error {
	if zoneID == "" {
		return nil
	}
	zs, err := zoneStockRepo.GetForUpdate(productID, zoneID)
	if err != nil {
		return err
	}
	current := decimal.Zero
	if zs != nil {
		current = zs.Quantity
	}
	next := current.Add(delta)
	if next.IsNegative() {
		return fmt.Errorf("%w: producto %s en zona %s, disponible %s", domain.ErrInsufficientStock, productID, zoneID, current)
	}
	return zoneStockRepo.Upsert(&entity.ZoneStock{
		ProductID: productID,
		ZoneID:    zoneID,
		Quantity:  next,
	})
}
