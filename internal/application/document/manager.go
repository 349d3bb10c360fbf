package document

import (
	"context"
	"sync"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/document"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// SessionManager abre y cierra sesiones de edición de documentos. Cada documento
// abierto tiene a lo sumo una sesión; documentos distintos no comparten nada.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	docRepo     repository.DocumentRepository
	lineRepo    repository.DocumentLineRepository
	productRepo repository.ProductRepository
	zoneRepo    repository.StorageZoneRepository
}

// NewSessionManager construye el administrador de sesiones.
func NewSessionManager(
	docRepo repository.DocumentRepository,
	lineRepo repository.DocumentLineRepository,
	productRepo repository.ProductRepository,
	zoneRepo repository.StorageZoneRepository,
) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		docRepo:     docRepo,
		lineRepo:    lineRepo,
		productRepo: productRepo,
		zoneRepo:    zoneRepo,
	}
}

// Open abre (o devuelve, si ya existe) la sesión de edición del documento:
// carga sus renglones persistidos y arma el ledger. Documentos contabilizados
// no se editan.
func (m *SessionManager) Open(ctx context.Context, documentID string) (*Session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[documentID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	doc, err := m.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	if doc.Status == entity.DocumentStatusPosted {
		return nil, domain.ErrDocumentPosted
	}
	lines, err := m.lineRepo.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	ledger, err := document.NewLedger(
		documentID,
		document.Type(doc.TypeID),
		catalogAdapter{products: m.productRepo},
		zoneAdapter{zones: m.zoneRepo},
		lines,
	)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Otra petición pudo abrir la sesión mientras cargábamos; gana la primera.
	if s, ok := m.sessions[documentID]; ok {
		return s, nil
	}
	s := newSession(ledger, m.lineRepo)
	m.sessions[documentID] = s
	return s, nil
}

// Get devuelve la sesión abierta del documento o ErrSessionNotFound.
func (m *SessionManager) Get(documentID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[documentID]; ok {
		return s, nil
	}
	return nil, domain.ErrSessionNotFound
}

// Close descarta la sesión del documento. Los renglones ya confirmados por el
// almacén remoto quedan persistidos; el estado en memoria se descarta.
func (m *SessionManager) Close(documentID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, documentID)
}
