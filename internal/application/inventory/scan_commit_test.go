package inventory_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bin-inventory-api/internal/application/dto"
	"github.com/jhoicas/bin-inventory-api/internal/application/inventory"
	"github.com/jhoicas/bin-inventory-api/internal/domain"
	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
	"github.com/jhoicas/bin-inventory-api/internal/domain/entity"
	"github.com/jhoicas/bin-inventory-api/internal/domain/repository"
)

// ──── Fakes en memoria ─────────────────────────────────────────────────────

type memDB struct {
	materials map[string]*entity.Material // por código
	movements []*entity.StockMovement
	dbErr     error
	locks     []string // códigos bloqueados, en orden
}

func newMemDB(ms ...*entity.Material) *memDB {
	db := &memDB{materials: map[string]*entity.Material{}}
	for _, m := range ms {
		db.materials[m.Code] = m
	}
	return db
}

func (db *memDB) clone() *memDB {
	c := &memDB{materials: map[string]*entity.Material{}, dbErr: db.dbErr}
	for k, m := range db.materials {
		cp := *m
		c.materials[k] = &cp
	}
	c.movements = append(c.movements, db.movements...)
	return c
}

type memMaterials struct{ db *memDB }

var _ repository.MaterialRepository = memMaterials{}

func (r memMaterials) Create(_ context.Context, m *entity.Material) error {
	r.db.materials[m.Code] = m
	return nil
}

func (r memMaterials) GetByID(_ context.Context, id string) (*entity.Material, error) {
	for _, m := range r.db.materials {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memMaterials) GetByCode(_ context.Context, code string) (*entity.Material, error) {
	if r.db.dbErr != nil {
		return nil, r.db.dbErr
	}
	m, ok := r.db.materials[code]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r memMaterials) GetByCodeForUpdate(ctx context.Context, code string) (*entity.Material, error) {
	r.db.locks = append(r.db.locks, code)
	return r.GetByCode(ctx, code)
}

func (r memMaterials) Update(_ context.Context, m *entity.Material) error {
	r.db.materials[m.Code] = m
	return nil
}

func (r memMaterials) UpdateQuantity(_ context.Context, id string, qty int) error {
	for _, m := range r.db.materials {
		if m.ID == id {
			m.CurrentQuantity = qty
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r memMaterials) List(context.Context, repository.MaterialFilter) ([]*entity.Material, int, error) {
	return nil, 0, nil
}

func (r memMaterials) Delete(context.Context, string) error { return nil }

type memMovements struct{ db *memDB }

func (r memMovements) Create(_ context.Context, m *entity.StockMovement) error {
	r.db.movements = append(r.db.movements, m)
	return nil
}

func (r memMovements) ListByBatch(_ context.Context, batchID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.db.movements {
		if m.BatchID == batchID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r memMovements) ListByMaterial(_ context.Context, materialID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.db.movements {
		if m.MaterialID == materialID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// memTx trabaja sobre una copia y solo la publica si fn no falla (Rollback implícito).
type memTx struct{ db *memDB }

func (t *memTx) Run(_ context.Context, fn func(repository.MaterialRepository, repository.StockMovementRepository) error) error {
	work := t.db.clone()
	err := fn(memMaterials{work}, memMovements{work})
	locks := append(t.db.locks, work.locks...)
	if err == nil {
		*t.db = *work
	}
	t.db.locks = locks
	return err
}

func material(id, code string, qty, pack, max, min int) *entity.Material {
	return &entity.Material{
		ID: id, Code: code, VendorCode: "V01",
		PackQuantity: pack, MaxBinQty: max, MinBinQty: min, CurrentQuantity: qty,
	}
}

// ──── Commit ───────────────────────────────────────────────────────────────

func TestCommit_AplicaLoteEncadenado(t *testing.T) {
	db := newMemDB(material("id-1", "M1", 0, 5, 20, 0), material("id-2", "M2", 10, 2, 10, 2))
	uc := inventory.NewScanCommitUseCase(&memTx{db: db}, nil)

	out, err := uc.Commit(context.Background(), []string{"M1_IN", "m2_out", "M1_in", "M1_OUT"}, "user-1")
	require.Error(t, err)
	assert.Nil(t, out)
	// "m2" no existe (códigos sensibles a mayúsculas): nada se aplicó
	assert.ErrorIs(t, err, binstock.ErrMaterialNotFound)
	assert.Equal(t, 0, db.materials["M1"].CurrentQuantity)
	assert.Empty(t, db.movements)

	out, err = uc.Commit(context.Background(), []string{"M1_IN", "M2_OUT", "M1_in", "M1_OUT"}, "user-1")
	require.NoError(t, err)
	require.Len(t, out.Results, 4)
	assert.NotEmpty(t, out.BatchID)

	assert.Equal(t, "M1_IN", out.Results[2].Token)
	assert.Equal(t, 5, out.Results[2].Before)
	assert.Equal(t, 10, out.Results[2].After)
	assert.Equal(t, 5, out.Results[3].After)

	assert.Equal(t, 5, db.materials["M1"].CurrentQuantity)
	assert.Equal(t, 8, db.materials["M2"].CurrentQuantity)
	require.Len(t, db.movements, 4)
	for _, m := range db.movements {
		assert.Equal(t, out.BatchID, m.BatchID)
		assert.Equal(t, "user-1", m.CreatedBy)
	}
	assert.Equal(t, -2, db.movements[1].Quantity)
	assert.Equal(t, "0.8", db.movements[1].FillRatio.String())
}

func TestCommit_OverflowHaceRollback(t *testing.T) {
	db := newMemDB(material("id-1", "M1", 18, 5, 20, 0), material("id-2", "M2", 0, 5, 20, 0))
	uc := inventory.NewScanCommitUseCase(&memTx{db: db}, nil)

	_, err := uc.Commit(context.Background(), []string{"M2_IN", "M1_IN"}, "u")

	var cerr *inventory.CommitError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 1, cerr.Failed())
	assert.NoError(t, cerr.Results[0].Err)
	assert.ErrorIs(t, cerr.Results[1].Err, binstock.ErrOverflowAboveMax)
	assert.Equal(t, 23, cerr.Results[1].After)

	assert.Equal(t, 0, db.materials["M2"].CurrentQuantity)
	assert.Equal(t, 18, db.materials["M1"].CurrentQuantity)
	assert.Empty(t, db.movements)
}

func TestCommit_RechazaTokensNoCanonicos(t *testing.T) {
	db := newMemDB(material("id-1", "M1", 0, 5, 20, 0))
	uc := inventory.NewScanCommitUseCase(&memTx{db: db}, nil)

	_, err := uc.Commit(context.Background(), []string{"M1_IN", "M1", "M_1", ""}, "u")
	var cerr *inventory.CommitError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 3, cerr.Failed())
	assert.ErrorIs(t, cerr.Results[1].Err, binstock.ErrMalformedSuffix)
	assert.ErrorIs(t, cerr.Results[3].Err, binstock.ErrEmptyScan)

	results := inventory.ToScanResults(cerr.Results)
	assert.Empty(t, results[0].Error)
	assert.NotEmpty(t, results[2].Error)
}

func TestCommit_BloqueaMaterialesEnOrden(t *testing.T) {
	db := newMemDB(
		material("id-1", "M1", 10, 5, 20, 0),
		material("id-2", "M2", 10, 5, 20, 0),
		material("id-3", "M3", 10, 5, 20, 0),
	)
	uc := inventory.NewScanCommitUseCase(&memTx{db: db}, nil)

	out, err := uc.Commit(context.Background(), []string{"M3_OUT", "M1_IN", "M2_IN", "M1_OUT"}, "u")
	require.NoError(t, err)
	assert.Equal(t, []string{"M1", "M2", "M3"}, db.locks)

	// los movimientos conservan el orden de los tokens
	require.Len(t, db.movements, 4)
	assert.Equal(t, "M3", db.movements[0].MaterialCode)
	assert.Equal(t, "M1", db.movements[1].MaterialCode)
	assert.Equal(t, 10, out.Results[3].After)

	db.locks = nil
	_, err = uc.Commit(context.Background(), []string{"M2_IN", "X9_IN", "M1_IN"}, "u")
	assert.ErrorIs(t, err, binstock.ErrMaterialNotFound)
	assert.Equal(t, []string{"M1", "M2", "X9"}, db.locks)
}

func TestCommit_ListaVacia(t *testing.T) {
	uc := inventory.NewScanCommitUseCase(&memTx{db: newMemDB()}, nil)
	_, err := uc.Commit(context.Background(), nil, "u")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCommit_ErrorDeBaseDeDatos(t *testing.T) {
	db := newMemDB(material("id-1", "M1", 0, 5, 20, 0))
	db.dbErr = errors.New("conexión perdida")
	uc := inventory.NewScanCommitUseCase(&memTx{db: db}, nil)

	_, err := uc.Commit(context.Background(), []string{"M1_IN"}, "u")
	require.Error(t, err)
	var cerr *inventory.CommitError
	assert.False(t, errors.As(err, &cerr))
	assert.Contains(t, err.Error(), "conexión perdida")
}

// ──── Status ───────────────────────────────────────────────────────────────

func TestStatus_EstadoBase(t *testing.T) {
	db := newMemDB(material("id-1", "M1", 7, 5, 20, 3))
	uc := inventory.NewStatusUseCase(memMaterials{db}, memMovements{db})

	st, err := uc.Status(context.Background(), " M1 ")
	require.NoError(t, err)
	assert.Equal(t, 7, st.CurrentQuantity)
	assert.Equal(t, 5, st.PackQuantity)

	resp, err := uc.GetStatus(context.Background(), "M1")
	require.NoError(t, err)
	assert.Equal(t, 20, resp.MaxBinQty)
	assert.Equal(t, 3, resp.MinBinQty)

	_, err = uc.Status(context.Background(), "X9")
	assert.ErrorIs(t, err, binstock.ErrMaterialNotFound)
}

func TestStatus_HistorialYLote(t *testing.T) {
	db := newMemDB(material("id-1", "M1", 0, 5, 20, 0))
	commit := inventory.NewScanCommitUseCase(&memTx{db: db}, nil)
	status := inventory.NewStatusUseCase(memMaterials{db}, memMovements{db})
	ctx := context.Background()

	out, err := commit.Commit(ctx, []string{"M1_IN", "M1_IN"}, "u")
	require.NoError(t, err)

	batch, err := status.Batch(ctx, out.BatchID)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, 10, batch[1].QuantityAfter)

	history, err := status.Movements(ctx, "id-1", dto.PageRequest{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = status.Movements(ctx, "nope", dto.PageRequest{Limit: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = status.Batch(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
