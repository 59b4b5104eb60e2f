// Package analytics contiene el resumen del tablero: estado de llenado de los bins
// y actividad de escaneo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bin-inventory-api/internal/application/dto"
	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
	"github.com/jhoicas/bin-inventory-api/internal/domain/repository"
)

const dashboardTopMaterials = 5 // materiales en el widget de actividad

// DashboardUseCase genera el resumen de llenado y de escaneos del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco consultas en paralelo:
//  1. RemarkCounts          → materiales por remark
//  2. AverageFill           → llenado promedio
//  3. MovementTotals(hoy)   → Today
//  4. MovementTotals(mes)   → Month
//  5. TopMaterials(mes, 5)  → TopMaterials
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// ── Goroutines para paralelizar las consultas ─────────────────────────────
	type countsResult struct {
		counts map[string]int
		err    error
	}
	type fillResult struct {
		avg decimal.Decimal
		err error
	}
	type totalsResult struct {
		totals repository.MovementTotals
		err    error
	}
	type topResult struct {
		items []repository.MaterialActivity
		err   error
	}

	countsCh := make(chan countsResult, 1)
	fillCh := make(chan fillResult, 1)
	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		counts, err := uc.analyticsRepo.RemarkCounts(ctx)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		avg, err := uc.analyticsRepo.AverageFill(ctx)
		fillCh <- fillResult{avg, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.MovementTotals(ctx, todayStart, todayEnd)
		todayCh <- totalsResult{t, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.MovementTotals(ctx, monthStart, todayEnd)
		monthCh <- totalsResult{t, err}
	}()
	go func() {
		items, err := uc.analyticsRepo.TopMaterials(ctx, monthStart, todayEnd, dashboardTopMaterials)
		topCh <- topResult{items, err}
	}()

	counts := <-countsCh
	fill := <-fillCh
	today := <-todayCh
	month := <-monthCh
	top := <-topCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: materiales por remark: %w", counts.err)
	}
	if fill.err != nil {
		return nil, fmt.Errorf("dashboard: llenado promedio: %w", fill.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: escaneos de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: escaneos del mes: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top materiales: %w", top.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	out := &dto.DashboardSummaryDTO{
		Shortage:     counts.counts[binstock.StatusShortage.Remark()],
		PreShortage:  counts.counts[binstock.StatusPreShortage.Remark()],
		Ok:           counts.counts[binstock.StatusOk.Remark()],
		Invalid:      counts.counts[binstock.StatusInvalid.Remark()],
		Unconfigured: counts.counts[binstock.StatusUnconfigured.Remark()],
		AverageFill:  fill.avg,
		Today:        toActivity(today.totals),
		Month:        toActivity(month.totals),
		TopMaterials: make([]dto.TopMaterialDTO, 0, len(top.items)),
		DateLabel:    monthLabel(now),
	}
	for _, n := range counts.counts {
		out.TotalMaterials += n
	}
	for _, it := range top.items {
		out.TopMaterials = append(out.TopMaterials, dto.TopMaterialDTO{
			Material:            it.Code,
			MaterialDescription: it.Description,
			Movements:           it.Movements,
			NetQuantity:         it.NetQuantity,
		})
	}
	return out, nil
}

func toActivity(t repository.MovementTotals) dto.ScanActivityDTO {
	return dto.ScanActivityDTO{
		InCount:     t.InCount,
		OutCount:    t.OutCount,
		InQuantity:  t.InQuantity,
		OutQuantity: t.OutQuantity,
	}
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
