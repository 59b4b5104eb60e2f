package binstock

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Status clasificación global del stock de un material.
type Status string

const (
	StatusUnconfigured Status = "unconfigured"
	StatusShortage     Status = "shortage"
	StatusPreShortage  Status = "preshortage"
	StatusOk           Status = "ok"
	StatusInvalid      Status = "invalid" // cantidad fuera de [0, max]: integridad de datos
)

// Remark texto de la columna "Remark" del tablero.
func (s Status) Remark() string {
	if s == StatusUnconfigured || s == "" {
		return "N/A"
	}
	return string(s)
}

// Color color de semáforo asociado al estado.
func (s Status) Color() string {
	switch s {
	case StatusShortage:
		return "red"
	case StatusPreShortage:
		return "yellow"
	case StatusOk:
		return "green"
	case StatusInvalid:
		return "destructive"
	default:
		return "gray"
	}
}

// FillSegment un bin dentro de la capacidad total del material.
type FillSegment struct {
	Index    int             `json:"index"`
	Start    int             `json:"start"`
	Capacity int             `json:"capacity"`
	Percent  decimal.Decimal `json:"percent"` // 0..100, dos decimales
}

// End cantidad en la que el bin queda lleno.
func (f FillSegment) End() int { return f.Start + f.Capacity }

// Classification resultado del clasificador para un material.
type Classification struct {
	Config          BinConfiguration `json:"config"`
	CurrentQuantity int              `json:"currentQuantity"`
	Bins            []FillSegment    `json:"bins"`
	Status          Status           `json:"status"`
}

// Remark atajo a Status.Remark.
func (c Classification) Remark() string { return c.Status.Remark() }

// Label texto "Stok: actual / max" que acompaña la barra de bins.
func (c Classification) Label() string {
	return fmt.Sprintf("Stok: %d / %d", c.CurrentQuantity, c.Config.MaxBinQty)
}

// FillRatio fracción total de llenado (current/max) con 4 decimales. Cero si no está configurado.
func (c Classification) FillRatio() decimal.Decimal {
	if !c.Config.Configured() {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(c.CurrentQuantity)).
		Div(decimal.NewFromInt(int64(c.Config.MaxBinQty))).
		Round(4)
}

var hundred = decimal.NewFromInt(100)

// Classify calcula los bins y el estado para (configuración, cantidad actual).
// Función pura: no falla nunca; una configuración inválida produce un resultado "sin configurar".
//
// Orden de clasificación:
//
//	current < 0 || current > max  → invalid
//	current <= max(min, pack)     → shortage
//	current <= max/2              → preshortage
//	resto                         → ok
func Classify(cfg BinConfiguration, current int) Classification {
	out := Classification{
		Config:          cfg,
		CurrentQuantity: current,
		Bins:            []FillSegment{},
		Status:          StatusUnconfigured,
	}
	if !cfg.Configured() {
		return out
	}

	total := cfg.TotalBins()
	out.Bins = make([]FillSegment, 0, total)
	for i := 0; i < total; i++ {
		start := i * cfg.PackQuantity
		capacity := cfg.PackQuantity
		// El último bin puede ser parcial.
		if i == total-1 {
			capacity = cfg.MaxBinQty - start
		}
		seg := FillSegment{Index: i, Start: start, Capacity: capacity, Percent: decimal.Zero}
		switch {
		case current >= seg.End():
			seg.Percent = hundred
		case current > start:
			seg.Percent = decimal.NewFromInt(int64(current - start)).
				Div(decimal.NewFromInt(int64(capacity))).
				Mul(hundred).
				Round(2)
		}
		out.Bins = append(out.Bins, seg)
	}

	switch {
	case current < 0 || current > cfg.MaxBinQty:
		out.Status = StatusInvalid
	case current <= cfg.ReorderPoint():
		out.Status = StatusShortage
	case 2*current <= cfg.MaxBinQty:
		out.Status = StatusPreShortage
	default:
		out.Status = StatusOk
	}
	return out
}
