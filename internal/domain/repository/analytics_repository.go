package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovementTotals agregados de movimientos de escaneo en un período.
type MovementTotals struct {
	InCount     int
	OutCount    int
	InQuantity  int // unidades ingresadas (suma de deltas positivos)
	OutQuantity int // unidades despachadas, en valor absoluto
}

// MaterialActivity resultado crudo del ranking de materiales más escaneados.
type MaterialActivity struct {
	Code        string
	Description string
	Movements   int
	NetQuantity int
}

// AnalyticsRepository consultas de solo lectura para el tablero de llenado.
type AnalyticsRepository interface {
	// RemarkCounts cuenta materiales por remark (shortage, preshortage, ok, invalid, N/A).
	RemarkCounts(ctx context.Context) (map[string]int, error)
	// AverageFill promedio de currentQuantity / maxBinQty de los materiales configurados (0..1).
	AverageFill(ctx context.Context) (decimal.Decimal, error)
	// MovementTotals entradas y salidas registradas entre from y to.
	MovementTotals(ctx context.Context, from, to time.Time) (MovementTotals, error)
	// TopMaterials los `limit` materiales con más movimientos entre from y to.
	TopMaterials(ctx context.Context, from, to time.Time, limit int) ([]MaterialActivity, error)
}
