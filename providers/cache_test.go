package providers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agrisathi/models"
)

func TestSnapshotCache(t *testing.T) {
	cache := NewSnapshotCache[models.WeatherSnapshot]()

	t.Run("miss on empty cache", func(t *testing.T) {
		_, ok := cache.Get("Jorethang")
		assert.False(t, ok)
	})

	t.Run("put then get", func(t *testing.T) {
		cache.Put("Jorethang", models.WeatherSnapshot{City: "Jorethang", CurrentTemp: 20})
		snapshot, ok := cache.Get("Jorethang")
		require.True(t, ok)
		assert.Equal(t, "Jorethang", snapshot.City)
	})

	t.Run("put replaces the whole entry", func(t *testing.T) {
		cache.Put("Jorethang", models.WeatherSnapshot{City: "Jorethang", CurrentTemp: 25})
		snapshot, ok := cache.Get("Jorethang")
		require.True(t, ok)
		assert.Equal(t, 25.0, snapshot.CurrentTemp)
	})

	t.Run("keys are independent", func(t *testing.T) {
		cache.Put("Delhi", models.WeatherSnapshot{City: "Delhi"})
		cache.Invalidate("Jorethang")

		_, ok := cache.Get("Jorethang")
		assert.False(t, ok)
		_, ok = cache.Get("Delhi")
		assert.True(t, ok)
	})

	t.Run("invalidating a missing key is a no-op", func(t *testing.T) {
		cache.Invalidate("Atlantis")
	})
}

func TestSnapshotCacheConcurrentAccess(t *testing.T) {
	cache := NewSnapshotCache[int]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cache.Put("key", n)
				cache.Get("key")
				cache.Invalidate("key")
			}
		}(i)
	}
	wg.Wait()
}
