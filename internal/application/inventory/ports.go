package inventory

import (
	"context"

	"github.com/jhoicas/bin-inventory-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; un guardado de escaneos es todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
