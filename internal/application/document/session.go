package document

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/document"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// Session es la sesión de edición de un documento abierto: posee su ledger en
// exclusiva y persiste cada mutación como petición independiente al almacén de
// renglones.
//
// Política de persistencia: aplicar localmente y revertir si el almacén falla.
// El rechazo de negocio corta antes de tocar estado; el error de transporte
// deja el ledger como estaba y sube envuelto, sin interpretarse.
//
// Mientras la petición de un renglón está en vuelo ese renglón queda bloqueado
// (marca por renglón, no bandera global); renglones distintos mutan en paralelo.
type Session struct {
	mu       sync.Mutex
	ledger   *document.Ledger
	store    repository.DocumentLineRepository
	inFlight map[string]bool
}

func newSession(ledger *document.Ledger, store repository.DocumentLineRepository) *Session {
	return &Session{
		ledger:   ledger,
		store:    store,
		inFlight: make(map[string]bool),
	}
}

// DocumentID devuelve el documento de la sesión.
func (s *Session) DocumentID() string { return s.ledger.DocumentID() }

// AddLine agrega un renglón al ledger y lo persiste. Si el almacén remoto falla,
// el renglón local se revierte y el error sube envuelto.
func (s *Session) AddLine(ctx context.Context, in dto.AddLineRequest) (*dto.LineMutationResponse, error) {
	s.mu.Lock()
	line, err := s.ledger.AddLine(in.ProductID, document.LineDefaults{
		SenderZoneID:   in.SenderZoneID,
		ReceiverZoneID: in.ReceiverZoneID,
	})
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	placeholderID := line.ID
	s.inFlight[placeholderID] = true
	s.mu.Unlock()

	persisted, storeErr := s.store.Create(ctx, line.Clone())

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, placeholderID)
	if storeErr != nil {
		_ = s.ledger.RemoveLine(placeholderID)
		return nil, fmt.Errorf("persistir renglón nuevo: %w", storeErr)
	}
	s.ledger.AdoptID(placeholderID, persisted.ID)
	final := s.ledger.Line(persisted.ID)
	return &dto.LineMutationResponse{
		Line:   toLineResponse(s.ledger, final),
		Totals: toTotalsResponse(s.ledger.ComputeTotals()),
	}, nil
}

// UpdateQuantity cambia quantity o actual_quantity del renglón. El valor llega como
// string; entrada no numérica se corrige a cero igual que en el dashboard.
func (s *Session) UpdateQuantity(ctx context.Context, lineID string, in dto.UpdateLineQuantityRequest) (*dto.LineMutationResponse, error) {
	value := parseAmount(in.Value)
	return s.mutateLine(ctx, lineID, func() (*entity.DocumentLine, error) {
		return s.ledger.UpdateQuantity(lineID, document.QuantityField(in.Field), value)
	})
}

// UpdatePrice cambia el precio de compra o de venta del renglón.
func (s *Session) UpdatePrice(ctx context.Context, lineID string, in dto.UpdateLinePriceRequest) (*dto.LineMutationResponse, error) {
	value := parseAmount(in.Value)
	return s.mutateLine(ctx, lineID, func() (*entity.DocumentLine, error) {
		return s.ledger.UpdatePrice(lineID, document.PriceField(in.Field), value)
	})
}

// mutateLine aplica una mutación sobre un renglón existente y la persiste,
// revirtiendo al estado previo si el almacén remoto falla.
func (s *Session) mutateLine(ctx context.Context, lineID string, apply func() (*entity.DocumentLine, error)) (*dto.LineMutationResponse, error) {
	s.mu.Lock()
	if s.inFlight[lineID] {
		s.mu.Unlock()
		return nil, domain.ErrLineBusy
	}
	prev := s.ledger.Line(lineID)
	updated, err := apply()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.inFlight[lineID] = true
	s.mu.Unlock()

	_, storeErr := s.store.Update(ctx, updated.Clone())

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, lineID)
	if storeErr != nil {
		s.ledger.Restore(prev)
		return nil, fmt.Errorf("persistir cambio de renglón: %w", storeErr)
	}
	return &dto.LineMutationResponse{
		Line:   toLineResponse(s.ledger, s.ledger.Line(lineID)),
		Totals: toTotalsResponse(s.ledger.ComputeTotals()),
	}, nil
}

// RemoveLine elimina el renglón local y remotamente. Si el borrado remoto falla,
// el renglón se reinserta.
func (s *Session) RemoveLine(ctx context.Context, lineID string) (*dto.LineMutationResponse, error) {
	s.mu.Lock()
	if s.inFlight[lineID] {
		s.mu.Unlock()
		return nil, domain.ErrLineBusy
	}
	prev := s.ledger.Line(lineID)
	if err := s.ledger.RemoveLine(lineID); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.inFlight[lineID] = true
	s.mu.Unlock()

	storeErr := s.store.Delete(ctx, lineID)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, lineID)
	if storeErr != nil {
		s.ledger.Restore(prev)
		return nil, fmt.Errorf("eliminar renglón remoto: %w", storeErr)
	}
	return &dto.LineMutationResponse{
		Totals: toTotalsResponse(s.ledger.ComputeTotals()),
	}, nil
}

// Detail devuelve los renglones y totales actuales de la sesión.
func (s *Session) Detail() ([]dto.LineResponse, dto.TotalsResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.ledger.Lines()
	out := make([]dto.LineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, *toLineResponse(s.ledger, line))
	}
	return out, toTotalsResponse(s.ledger.ComputeTotals())
}

// Totals devuelve los totales corridos.
func (s *Session) Totals() dto.TotalsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toTotalsResponse(s.ledger.ComputeTotals())
}

// parseAmount convierte la entrada del dashboard a decimal. No numérico o vacío
// vale cero; el ledger corrige además los negativos.
func parseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
