package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agrisathi/models"
)

func TestWeatherSimulatorFetch(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	sim := &WeatherSimulator{Now: func() time.Time { return fixed }}

	t.Run("five day forecast with valid ranges", func(t *testing.T) {
		snapshot, err := sim.Fetch("Jorethang")
		require.NoError(t, err)
		assert.Equal(t, "Jorethang", snapshot.City)
		assert.Equal(t, fixed, snapshot.Timestamp)
		require.Len(t, snapshot.Forecast, models.ForecastDays)

		assert.Equal(t, "Today", snapshot.Forecast[0].Day)
		for _, day := range snapshot.Forecast {
			assert.GreaterOrEqual(t, day.RainChance, 0.0)
			assert.LessOrEqual(t, day.RainChance, 100.0)
			assert.GreaterOrEqual(t, day.WindSpeed, 0.0)
			assert.NotEmpty(t, day.Condition)
			assert.NotEmpty(t, day.Icon)
		}
	})

	t.Run("current conditions mirror the first forecast day", func(t *testing.T) {
		snapshot, err := sim.Fetch("Delhi")
		require.NoError(t, err)
		assert.Equal(t, snapshot.Forecast[0].Temp, snapshot.CurrentTemp)
		assert.Equal(t, snapshot.Forecast[0].Humidity, snapshot.CurrentHumidity)
		assert.Equal(t, snapshot.Forecast[0].WindSpeed, snapshot.CurrentWind)
	})

	t.Run("deterministic for the same city", func(t *testing.T) {
		first, err := sim.Fetch("Mumbai")
		require.NoError(t, err)
		second, err := sim.Fetch("Mumbai")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("city lookup is case insensitive", func(t *testing.T) {
		lower, err := sim.Fetch("chennai")
		require.NoError(t, err)
		upper, err := sim.Fetch("Chennai")
		require.NoError(t, err)
		assert.Equal(t, lower.CurrentTemp, upper.CurrentTemp)
	})

	t.Run("unknown city uses default pattern", func(t *testing.T) {
		snapshot, err := sim.Fetch("Atlantis")
		require.NoError(t, err)
		assert.Len(t, snapshot.Forecast, models.ForecastDays)
	})

	t.Run("rainy pattern picks the rain icon", func(t *testing.T) {
		snapshot, err := sim.Fetch("Jorethang")
		require.NoError(t, err)
		assert.Equal(t, "10d", snapshot.Forecast[0].Icon)

		dry, err := sim.Fetch("Delhi")
		require.NoError(t, err)
		assert.Equal(t, "02d", dry.Forecast[0].Icon)
	})
}

func TestVariationBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		v := variation("mumbai", i, 20)
		assert.GreaterOrEqual(t, v, -20)
		assert.LessOrEqual(t, v, 20)
	}
}
