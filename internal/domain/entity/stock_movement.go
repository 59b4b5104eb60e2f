package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock por escaneo.
const (
	MovementTypeIN  = "IN"  // entrada: +1 pack
	MovementTypeOUT = "OUT" // salida: -1 pack
)

// StockMovement registro de un movimiento aplicado a un material (un token de escaneo confirmado).
type StockMovement struct {
	ID             string
	BatchID        string // agrupa los tokens de un mismo guardado
	MaterialID     string
	MaterialCode   string
	Type           string // IN, OUT
	Quantity       int    // delta firmado: +pack / -pack
	QuantityBefore int
	QuantityAfter  int
	FillRatio      decimal.Decimal // QuantityAfter / MaxBinQty
	CreatedAt      time.Time
	CreatedBy      string // username del token
}
