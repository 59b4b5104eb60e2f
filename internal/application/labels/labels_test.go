package labels_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bin-inventory-api/internal/application/labels"
	"github.com/jhoicas/bin-inventory-api/internal/domain"
	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
	"github.com/jhoicas/bin-inventory-api/internal/domain/entity"
	"github.com/jhoicas/bin-inventory-api/internal/domain/repository"
)

func TestBuildSheet_TokensCanonicos(t *testing.T) {
	m := &entity.Material{ID: "1", Code: "MAT-01", PackQuantity: 5, MaxBinQty: 20}
	sheet, err := labels.BuildSheet(m, 3)
	require.NoError(t, err)
	require.Len(t, sheet.Pairs, 3)

	in, out := sheet.Pairs[0][0], sheet.Pairs[0][1]
	assert.Equal(t, "MAT-01_IN", in.Token)
	assert.Equal(t, "MAT-01_OUT", out.Token)
	assert.Equal(t, "IN  +5", in.Caption)

	for _, l := range sheet.Pairs[2] {
		code, err := binstock.ParseScan(l.Token)
		require.NoError(t, err)
		assert.Equal(t, "MAT-01", code.Identifier)
		assert.Equal(t, l.Movement, code.Movement)
	}
}

func TestBuildSheet_Validaciones(t *testing.T) {
	_, err := labels.BuildSheet(&entity.Material{Code: "M1"}, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = labels.BuildSheet(&entity.Material{Code: "M1", PackQuantity: 1, MaxBinQty: 1}, labels.MaxCopies+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	s, err := labels.BuildSheet(&entity.Material{Code: "M1", PackQuantity: 1, MaxBinQty: 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Copies)
}

type stubRepo struct {
	repository.MaterialRepository
	m *entity.Material
}

func (r stubRepo) GetByID(context.Context, string) (*entity.Material, error) { return r.m, nil }

type stubGenerator struct{ got labels.Sheet }

func (g *stubGenerator) GenerateLabelSheet(_ context.Context, s labels.Sheet) ([]byte, error) {
	g.got = s
	return []byte("%PDF-1.3"), nil
}

func TestDownload(t *testing.T) {
	gen := &stubGenerator{}
	uc := labels.NewUseCase(stubRepo{m: &entity.Material{ID: "1", Code: "MAT 01/x", PackQuantity: 2, MaxBinQty: 8}}, gen)

	pdf, name, err := uc.Download(context.Background(), "1", 2)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(pdf))
	assert.Equal(t, "etiquetas_MAT-01-x.pdf", name)
	assert.Equal(t, 2, gen.got.Copies)

	uc = labels.NewUseCase(stubRepo{}, gen)
	_, _, err = uc.Download(context.Background(), "1", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
