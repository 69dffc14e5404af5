package providers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agrisathi/advisory"
	"go-agrisathi/models"
)

func TestMarketSimulatorFetch(t *testing.T) {
	t.Run("quotes every tracked crop", func(t *testing.T) {
		sim := NewMarketSimulatorSeed(1)
		snapshot, err := sim.Fetch()
		require.NoError(t, err)
		require.Len(t, snapshot.Quotes, len(marketBase))

		for i, quote := range snapshot.Quotes {
			assert.Equal(t, marketBase[i].crop, quote.Crop)
			assert.GreaterOrEqual(t, quote.Price, floorPrice)
			// 价格四舍五入到0.1
			rounded := math.Round(quote.Price*10) / 10
			assert.Equal(t, rounded, quote.Price)
		}
	})

	t.Run("price stays near the base price", func(t *testing.T) {
		sim := NewMarketSimulatorSeed(42)
		snapshot, err := sim.Fetch()
		require.NoError(t, err)
		for i, quote := range snapshot.Quotes {
			assert.InDelta(t, marketBase[i].price, quote.Price, 2.1, quote.Crop)
		}
	})

	t.Run("trend follows the previous sample", func(t *testing.T) {
		sim := NewMarketSimulatorSeed(7)
		first, err := sim.Fetch()
		require.NoError(t, err)
		second, err := sim.Fetch()
		require.NoError(t, err)

		for i, quote := range second.Quotes {
			want := advisory.DeriveMarketTrend(first.Quotes[i].Price, quote.Price)
			assert.Equal(t, want, quote.Trend, quote.Crop)
		}
	})

	t.Run("first fetch derives trend from the base price", func(t *testing.T) {
		sim := NewMarketSimulatorSeed(3)
		snapshot, err := sim.Fetch()
		require.NoError(t, err)
		for i, quote := range snapshot.Quotes {
			want := advisory.DeriveMarketTrend(marketBase[i].price, quote.Price)
			assert.Equal(t, want, quote.Trend, quote.Crop)
		}
	})

	t.Run("same seed reproduces the series", func(t *testing.T) {
		a := NewMarketSimulatorSeed(99)
		b := NewMarketSimulatorSeed(99)
		snapA, err := a.Fetch()
		require.NoError(t, err)
		snapB, err := b.Fetch()
		require.NoError(t, err)
		assert.Equal(t, snapA.Quotes, snapB.Quotes)
	})
}

func TestMarketQuoteTrendValues(t *testing.T) {
	sim := NewMarketSimulatorSeed(5)
	snapshot, err := sim.Fetch()
	require.NoError(t, err)
	for _, quote := range snapshot.Quotes {
		assert.Contains(t, []models.Trend{models.TrendUp, models.TrendDown, models.TrendFlat}, quote.Trend)
	}
}
