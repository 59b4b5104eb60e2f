package entity

import (
	"time"

	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
)

// Material representa un material del maestro con su configuración de bins y stock actual.
// Code es el identificador que aparece en las etiquetas de escaneo ("{code}_IN" / "{code}_OUT").
type Material struct {
	ID              string
	Code            string // único
	Description     string
	Location        string
	VendorCode      string
	PIC             string // responsable
	PackQuantity    int
	MaxBinQty       int
	MinBinQty       int
	CurrentQuantity int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BinConfiguration configuración de bins del material.
func (m *Material) BinConfiguration() binstock.BinConfiguration {
	return binstock.BinConfiguration{
		PackQuantity: m.PackQuantity,
		MaxBinQty:    m.MaxBinQty,
		MinBinQty:    m.MinBinQty,
	}
}

// StockState estado de stock (configuración + cantidad actual) para el motor de bins.
func (m *Material) StockState() binstock.MaterialStockState {
	return binstock.MaterialStockState{
		BinConfiguration: m.BinConfiguration(),
		CurrentQuantity:  m.CurrentQuantity,
	}
}
