package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bin-inventory-api/internal/domain"
	"github.com/jhoicas/bin-inventory-api/internal/domain/entity"
	"github.com/jhoicas/bin-inventory-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, code, description, location, vendor_code, pic,
	pack_quantity, max_bin_qty, min_bin_qty, current_quantity, created_at, updated_at`

// remarkExpr misma clasificación que binstock.Classify, para filtrar por remark en SQL.
const remarkExpr = `CASE
	WHEN pack_quantity <= 0 OR max_bin_qty <= 0 THEN 'N/A'
	WHEN current_quantity < 0 OR current_quantity > max_bin_qty THEN 'invalid'
	WHEN current_quantity <= GREATEST(min_bin_qty, pack_quantity) THEN 'shortage'
	WHEN 2 * current_quantity <= max_bin_qty THEN 'preshortage'
	ELSE 'ok' END`

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(
		&m.ID, &m.Code, &m.Description, &m.Location, &m.VendorCode, &m.PIC,
		&m.PackQuantity, &m.MaxBinQty, &m.MinBinQty, &m.CurrentQuantity, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste un nuevo material.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Code, m.Description, m.Location, m.VendorCode, m.PIC,
		m.PackQuantity, m.MaxBinQty, m.MinBinQty, m.CurrentQuantity, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

func (r *MaterialRepo) getOne(ctx context.Context, query string, arg any) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// GetByID obtiene un material por ID.
func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	m, err := r.getOne(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// GetByCode obtiene un material por código.
func (r *MaterialRepo) GetByCode(ctx context.Context, code string) (*entity.Material, error) {
	m, err := r.getOne(ctx, `SELECT `+materialColumns+` FROM materials WHERE code = $1`, code)
	if err != nil {
		return nil, fmt.Errorf("get material by code: %w", err)
	}
	return m, nil
}

// GetByCodeForUpdate bloquea la fila del material hasta el fin de la transacción.
func (r *MaterialRepo) GetByCodeForUpdate(ctx context.Context, code string) (*entity.Material, error) {
	m, err := r.getOne(ctx, `SELECT `+materialColumns+` FROM materials WHERE code = $1 FOR UPDATE`, code)
	if err != nil {
		return nil, fmt.Errorf("lock material: %w", err)
	}
	return m, nil
}

// Update actualiza datos maestros y configuración de bins.
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materials SET code = $2, description = $3, location = $4, vendor_code = $5, pic = $6,
			pack_quantity = $7, max_bin_qty = $8, min_bin_qty = $9, current_quantity = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		m.ID, m.Code, m.Description, m.Location, m.VendorCode, m.PIC,
		m.PackQuantity, m.MaxBinQty, m.MinBinQty, m.CurrentQuantity, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity fija la cantidad actual (motor de escaneo).
func (r *MaterialRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE materials SET current_quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update material quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista materiales con filtros y devuelve también el total sin paginar.
func (r *MaterialRepo) List(ctx context.Context, f repository.MaterialFilter) ([]*entity.Material, int, error) {
	where, args := materialWhere(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM materials`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count materials: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`SELECT %s FROM materials%s ORDER BY code LIMIT $%d OFFSET $%d`,
		materialColumns, where, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var list []*entity.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// materialWhere arma la cláusula WHERE con placeholders numerados.
func materialWhere(f repository.MaterialFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Search != "" {
		add(`(code ILIKE $%[1]d OR description ILIKE $%[1]d)`, "%"+f.Search+"%")
	}
	if f.VendorCode != "" {
		add(`vendor_code = $%d`, f.VendorCode)
	}
	if f.Remark != "" {
		add(`(`+remarkExpr+`) = $%d`, f.Remark)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Delete elimina un material. Con movimientos registrados devuelve domain.ErrConflict.
func (r *MaterialRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
