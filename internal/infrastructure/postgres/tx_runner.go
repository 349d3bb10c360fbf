package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appdoc "github.com/jhoicas/bodega-api/internal/application/document"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ appdoc.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	zoneStockRepo repository.ZoneStockRepository,
	lineRepo repository.DocumentLineRepository,
	docRepo repository.DocumentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	zoneStockRepo := NewZoneStockRepository(tx)
	lineRepo := NewDocumentLineRepository(tx)
	docRepo := NewDocumentRepository(tx)

	if err := fn(productRepo, zoneStockRepo, lineRepo, docRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
