package binstock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
)

func cfg(pack, max, min int) binstock.BinConfiguration {
	return binstock.BinConfiguration{PackQuantity: pack, MaxBinQty: max, MinBinQty: min}
}

func TestClassify_SinConfiguracion(t *testing.T) {
	for _, c := range []binstock.BinConfiguration{cfg(0, 20, 5), cfg(5, 0, 0), cfg(-1, 10, 0)} {
		out := binstock.Classify(c, 3)
		assert.Equal(t, binstock.StatusUnconfigured, out.Status)
		assert.Empty(t, out.Bins)
		assert.Equal(t, "N/A", out.Remark())
		assert.Equal(t, "gray", out.Status.Color())
	}
}

// Para todo pack>0, max>0: ceil(max/pack) bins cuyas capacidades suman exactamente max.
func TestClassify_CapacidadesSumanMax(t *testing.T) {
	for pack := 1; pack <= 12; pack++ {
		for max := 1; max <= 60; max++ {
			out := binstock.Classify(cfg(pack, max, 0), 0)
			want := (max + pack - 1) / pack
			require.Len(t, out.Bins, want, "pack=%d max=%d", pack, max)

			sum := 0
			for i, b := range out.Bins {
				sum += b.Capacity
				if i < len(out.Bins)-1 {
					assert.Equal(t, pack, b.Capacity)
				}
				assert.Greater(t, b.Capacity, 0)
			}
			assert.Equal(t, max, sum, "pack=%d max=%d", pack, max)
		}
	}
}

func TestClassify_UltimoBinParcial(t *testing.T) {
	out := binstock.Classify(cfg(5, 12, 0), 11)
	require.Len(t, out.Bins, 3)

	assert.Equal(t, 2, out.Bins[2].Capacity)
	assert.Equal(t, 10, out.Bins[2].Start)
	assert.True(t, out.Bins[0].Percent.Equal(decimal.NewFromInt(100)))
	assert.True(t, out.Bins[1].Percent.Equal(decimal.NewFromInt(100)))
	assert.True(t, out.Bins[2].Percent.Equal(decimal.NewFromInt(50)), "got %s", out.Bins[2].Percent)
}

func TestClassify_PorcentajeParcial(t *testing.T) {
	out := binstock.Classify(cfg(3, 9, 0), 4)
	require.Len(t, out.Bins, 3)
	assert.True(t, out.Bins[0].Percent.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "33.33", out.Bins[1].Percent.StringFixed(2))
	assert.True(t, out.Bins[2].Percent.IsZero())
}

func TestClassify_Umbrales(t *testing.T) {
	// pack=5, max=40, min=8 → R = 8, mitad = 20
	c := cfg(5, 40, 8)
	tests := []struct {
		qty  int
		want binstock.Status
	}{
		{0, binstock.StatusShortage},
		{8, binstock.StatusShortage},
		{9, binstock.StatusPreShortage},
		{20, binstock.StatusPreShortage},
		{21, binstock.StatusOk},
		{40, binstock.StatusOk},
		{41, binstock.StatusInvalid},
		{-1, binstock.StatusInvalid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, binstock.Classify(c, tt.qty).Status, "qty=%d", tt.qty)
	}
}

// El punto de reorden nunca es menor que un pack.
func TestClassify_ReorderPointMinimoEsPack(t *testing.T) {
	c := cfg(10, 100, 2)
	assert.Equal(t, 10, c.ReorderPoint())
	assert.Equal(t, binstock.StatusShortage, binstock.Classify(c, 10).Status)
	assert.Equal(t, binstock.StatusPreShortage, binstock.Classify(c, 11).Status)
}

// Dentro de [0, max] el estado es exactamente uno de shortage/preshortage/ok; fuera, invalid.
func TestClassify_PropiedadDominio(t *testing.T) {
	for pack := 1; pack <= 6; pack++ {
		for max := 1; max <= 30; max++ {
			for min := 0; min <= max; min += 3 {
				c := cfg(pack, max, min)
				for qty := -3; qty <= max+3; qty++ {
					st := binstock.Classify(c, qty).Status
					if qty < 0 || qty > max {
						assert.Equal(t, binstock.StatusInvalid, st)
						continue
					}
					assert.Contains(t, []binstock.Status{
						binstock.StatusShortage, binstock.StatusPreShortage, binstock.StatusOk,
					}, st)
				}
			}
		}
	}
}

func TestClassify_Determinista(t *testing.T) {
	a := binstock.Classify(cfg(5, 22, 4), 13)
	b := binstock.Classify(cfg(5, 22, 4), 13)
	assert.Equal(t, a, b)
	assert.Equal(t, "Stok: 13 / 22", a.Label())
	assert.Equal(t, "0.5909", a.FillRatio().StringFixed(4))
}

func TestBinConfiguration_Validate(t *testing.T) {
	assert.NoError(t, cfg(5, 20, 5).Validate())
	assert.Error(t, cfg(0, 20, 5).Validate())
	assert.Error(t, cfg(5, 4, 5).Validate())
	assert.Error(t, cfg(5, 20, -1).Validate())
	assert.Equal(t, 5, cfg(5, 22, 0).TotalBins())
}
