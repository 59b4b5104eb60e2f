package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bin-inventory-api/internal/domain/repository"
)

type mockAnalyticsRepo struct{ mock.Mock }

func (m *mockAnalyticsRepo) RemarkCounts(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).(map[string]int)
	return r, args.Error(1)
}

func (m *mockAnalyticsRepo) AverageFill(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockAnalyticsRepo) MovementTotals(ctx context.Context, from, to time.Time) (repository.MovementTotals, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(repository.MovementTotals), args.Error(1)
}

func (m *mockAnalyticsRepo) TopMaterials(ctx context.Context, from, to time.Time, limit int) ([]repository.MaterialActivity, error) {
	args := m.Called(ctx, from, to, limit)
	r, _ := args.Get(0).([]repository.MaterialActivity)
	return r, args.Error(1)
}

var fixedNow = time.Date(2026, time.February, 14, 15, 30, 0, 0, time.UTC)

func newTestUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	uc := NewDashboardUseCase(repo)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestGetSummary_ArmaResumen(t *testing.T) {
	repo := &mockAnalyticsRepo{}
	todayStart := time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	repo.On("RemarkCounts", mock.Anything).Return(map[string]int{"shortage": 2, "ok": 5, "N/A": 1}, nil)
	repo.On("AverageFill", mock.Anything).Return(decimal.RequireFromString("0.5625"), nil)
	repo.On("MovementTotals", mock.Anything, todayStart, mock.Anything).
		Return(repository.MovementTotals{InCount: 3, InQuantity: 15}, nil)
	repo.On("MovementTotals", mock.Anything, monthStart, mock.Anything).
		Return(repository.MovementTotals{InCount: 10, OutCount: 4, InQuantity: 50, OutQuantity: 20}, nil)
	repo.On("TopMaterials", mock.Anything, monthStart, mock.Anything, dashboardTopMaterials).
		Return([]repository.MaterialActivity{{Code: "M1", Movements: 9, NetQuantity: 25}}, nil)

	out, err := newTestUseCase(repo).GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, out.TotalMaterials)
	assert.Equal(t, 2, out.Shortage)
	assert.Equal(t, 0, out.PreShortage)
	assert.Equal(t, 1, out.Unconfigured)
	assert.Equal(t, "0.5625", out.AverageFill.String())
	assert.Equal(t, 15, out.Today.InQuantity)
	assert.Equal(t, 4, out.Month.OutCount)
	require.Len(t, out.TopMaterials, 1)
	assert.Equal(t, "M1", out.TopMaterials[0].Material)
	assert.Equal(t, "Febrero 2026", out.DateLabel)
	repo.AssertExpectations(t)
}

func TestGetSummary_PropagaError(t *testing.T) {
	repo := &mockAnalyticsRepo{}
	repo.On("RemarkCounts", mock.Anything).Return(map[string]int{}, nil)
	repo.On("AverageFill", mock.Anything).Return(decimal.Zero, nil)
	repo.On("MovementTotals", mock.Anything, mock.Anything, mock.Anything).Return(repository.MovementTotals{}, nil)
	repo.On("TopMaterials", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))

	_, err := newTestUseCase(repo).GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top materiales")
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Diciembre 2025", monthLabel(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)))
}
