package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bin-inventory-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el tablero de llenado.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// RemarkCounts agrupa los materiales con la misma clasificación que binstock.Classify.
func (r *AnalyticsRepo) RemarkCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT (`+remarkExpr+`) AS remark, count(*) FROM materials GROUP BY 1`)
	if err != nil {
		return nil, fmt.Errorf("analytics.RemarkCounts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var remark string
		var n int
		if err := rows.Scan(&remark, &n); err != nil {
			return nil, fmt.Errorf("analytics.RemarkCounts scan: %w", err)
		}
		counts[remark] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.RemarkCounts rows: %w", err)
	}
	return counts, nil
}

// AverageFill usa COALESCE para devolver cero si no hay materiales configurados.
func (r *AnalyticsRepo) AverageFill(ctx context.Context) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(ROUND(AVG(
	    LEAST(GREATEST(current_quantity, 0), max_bin_qty)::numeric / max_bin_qty), 4), 0)
	FROM materials
	WHERE pack_quantity > 0 AND max_bin_qty > 0`

	var avg decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&avg); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.AverageFill: %w", err)
	}
	return avg, nil
}

// MovementTotals cuenta entradas y salidas del período.
func (r *AnalyticsRepo) MovementTotals(ctx context.Context, from, to time.Time) (repository.MovementTotals, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE type = 'IN')                  AS in_count,
	    COUNT(*) FILTER (WHERE type = 'OUT')                 AS out_count,
	    COALESCE(SUM(quantity)  FILTER (WHERE type = 'IN'), 0)  AS in_qty,
	    COALESCE(-SUM(quantity) FILTER (WHERE type = 'OUT'), 0) AS out_qty
	FROM stock_movements
	WHERE created_at BETWEEN $1 AND $2`

	var t repository.MovementTotals
	err := r.q.QueryRow(ctx, query, from, to).Scan(&t.InCount, &t.OutCount, &t.InQuantity, &t.OutQuantity)
	if err != nil {
		return repository.MovementTotals{}, fmt.Errorf("analytics.MovementTotals: %w", err)
	}
	return t, nil
}

// TopMaterials ranking por cantidad de movimientos; a igual cantidad, por código.
func (r *AnalyticsRepo) TopMaterials(ctx context.Context, from, to time.Time, limit int) ([]repository.MaterialActivity, error) {
	const query = `
	SELECT
	    m.code,
	    m.description,
	    COUNT(*)                    AS movements,
	    COALESCE(SUM(s.quantity), 0) AS net_quantity
	FROM stock_movements s
	JOIN materials m ON m.id = s.material_id
	WHERE s.created_at BETWEEN $1 AND $2
	GROUP BY m.code, m.description
	ORDER BY movements DESC, m.code
	LIMIT $3`

	rows, err := r.q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopMaterials: %w", err)
	}
	defer rows.Close()

	results := []repository.MaterialActivity{}
	for rows.Next() {
		var item repository.MaterialActivity
		if err := rows.Scan(&item.Code, &item.Description, &item.Movements, &item.NetQuantity); err != nil {
			return nil, fmt.Errorf("analytics.TopMaterials scan: %w", err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("analytics.TopMaterials rows: %w", err)
	}
	return results, nil
}
