package repository

import (
	"context"

	"github.com/jhoicas/bin-inventory-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para movimientos por escaneo (DIP).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByBatch(ctx context.Context, batchID string) ([]*entity.StockMovement, error)
	ListByMaterial(ctx context.Context, materialID string, limit, offset int) ([]*entity.StockMovement, error)
}
