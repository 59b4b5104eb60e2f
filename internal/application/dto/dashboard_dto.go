package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Estado de llenado de todos los materiales más la actividad de escaneo del día y del mes.
type DashboardSummaryDTO struct {
	// Materiales por remark del clasificador
	TotalMaterials int             `json:"totalMaterials"`
	Shortage       int             `json:"shortage"`
	PreShortage    int             `json:"preshortage"`
	Ok             int             `json:"ok"`
	Invalid        int             `json:"invalid"`
	Unconfigured   int             `json:"unconfigured"`
	AverageFill    decimal.Decimal `json:"averageFill"` // 0..1

	Today ScanActivityDTO `json:"today"`
	Month ScanActivityDTO `json:"month"`

	// Materiales con más movimientos en el mes
	TopMaterials []TopMaterialDTO `json:"topMaterials"`

	DateLabel string `json:"dateLabel"` // ej: "Febrero 2026"
}

// ScanActivityDTO entradas y salidas de un período.
type ScanActivityDTO struct {
	InCount     int `json:"inCount"`
	OutCount    int `json:"outCount"`
	InQuantity  int `json:"inQuantity"`
	OutQuantity int `json:"outQuantity"`
}

// TopMaterialDTO material en el ranking de actividad.
type TopMaterialDTO struct {
	Material            string `json:"material"`
	MaterialDescription string `json:"materialDescription"`
	Movements           int    `json:"movements"`
	NetQuantity         int    `json:"netQuantity"`
}
