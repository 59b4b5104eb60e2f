// Package binstock contiene la lógica pura del control de stock por bins:
// configuración de bins, clasificación de llenado y resolución de escaneos IN/OUT.
// No tiene dependencias de infraestructura; todo es determinista.
package binstock

import (
	"fmt"

	"github.com/jhoicas/bin-inventory-api/internal/domain"
)

// BinConfiguration configuración inmutable de bins de un material.
// MaxBinQty suele ser múltiplo de PackQuantity, pero no se asume.
type BinConfiguration struct {
	PackQuantity int `json:"packQuantity"` // unidades por movimiento (1 bin / 1 pack)
	MaxBinQty    int `json:"maxBinQty"`    // capacidad máxima
	MinBinQty    int `json:"minBinQty"`    // umbral de reorden configurado
}

// Configured indica si la configuración permite dibujar bins (pack y max positivos).
func (c BinConfiguration) Configured() bool {
	return c.PackQuantity > 0 && c.MaxBinQty > 0
}

// ReorderPoint punto de reorden efectivo: max(MinBinQty, PackQuantity).
func (c BinConfiguration) ReorderPoint() int {
	if c.MinBinQty > c.PackQuantity {
		return c.MinBinQty
	}
	return c.PackQuantity
}

// TotalBins número de bins: ceil(MaxBinQty / PackQuantity). 0 si no está configurado.
func (c BinConfiguration) TotalBins() int {
	if !c.Configured() {
		return 0
	}
	return (c.MaxBinQty + c.PackQuantity - 1) / c.PackQuantity
}

// Validate verifica la configuración al editarla (maestro de materiales).
// El clasificador nunca la invoca: trata la configuración recibida como no confiable.
func (c BinConfiguration) Validate() error {
	if c.PackQuantity <= 0 {
		return fmt.Errorf("%w: packQuantity debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if c.MaxBinQty < 0 || c.MinBinQty < 0 {
		return fmt.Errorf("%w: cantidades negativas", domain.ErrInvalidInput)
	}
	if c.MaxBinQty < c.MinBinQty {
		return fmt.Errorf("%w: maxBinQty no puede ser menor que minBinQty", domain.ErrInvalidInput)
	}
	return nil
}

// MaterialStockState estado de stock de un material junto con su configuración.
// CurrentQuantity puede quedar fuera de [0, MaxBinQty] tras una mala secuencia de escaneos;
// se reporta, nunca se recorta.
type MaterialStockState struct {
	BinConfiguration
	CurrentQuantity int `json:"currentQuantity"`
}

// WithQuantity devuelve una copia con otra cantidad.
func (s MaterialStockState) WithQuantity(q int) MaterialStockState {
	s.CurrentQuantity = q
	return s
}
