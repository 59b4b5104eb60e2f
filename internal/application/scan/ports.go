package scan

import (
	"context"

	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
)

// StatusLookup puerto de salida: estado base autoritativo (configuración + cantidad) de un material.
// Debe devolver un error que envuelva binstock.ErrMaterialNotFound si el código no existe.
// Timeouts y reintentos son responsabilidad del adaptador; aquí solo importa éxito o fallo.
type StatusLookup interface {
	Status(ctx context.Context, materialCode string) (binstock.MaterialStockState, error)
}
