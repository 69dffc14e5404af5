package providers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newForecastServer 返回覆盖地理编码和预报两个接口的stub服务
func newForecastServer(t *testing.T, entries int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/direct", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("q"), ",IN")
		fmt.Fprint(w, `[{"lat":27.1,"lon":88.3}]`)
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		fmt.Fprint(w, `{"list":[`)
		base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC).Unix()
		for i := 0; i < entries; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{
				"dt": %d,
				"main": {"temp": %f, "humidity": 65},
				"weather": [{"description": "light rain", "icon": "10d"}],
				"wind": {"speed": 4.5},
				"pop": 0.35
			}`, base+int64(i)*3*3600, 24.6+float64(i%8))
		}
		fmt.Fprint(w, `]}`)
	})
	return httptest.NewServer(mux)
}

func newTestClient(server *httptest.Server) *OpenWeatherClient {
	client := NewOpenWeatherClient("test-key")
	client.GeoBaseURL = server.URL
	client.DataBaseURL = server.URL
	return client
}

func TestOpenWeatherClientFetch(t *testing.T) {
	t.Run("full five day forecast", func(t *testing.T) {
		server := newForecastServer(t, 40)
		defer server.Close()

		snapshot, err := newTestClient(server).Fetch("Jorethang")
		require.NoError(t, err)
		assert.Equal(t, "Jorethang", snapshot.City)
		assert.Equal(t, 25.0, snapshot.CurrentTemp)
		assert.Equal(t, 65, snapshot.CurrentHumidity)
		assert.Equal(t, 4.5, snapshot.CurrentWind)
		assert.Equal(t, "light rain", snapshot.Condition)
		assert.Equal(t, "10d", snapshot.Icon)

		// 每8条取1条
		require.Len(t, snapshot.Forecast, 5)
		assert.Equal(t, 35.0, snapshot.Forecast[0].RainChance)
		assert.NotEmpty(t, snapshot.Forecast[0].Day)
	})

	t.Run("short forecast list", func(t *testing.T) {
		server := newForecastServer(t, 10)
		defer server.Close()

		snapshot, err := newTestClient(server).Fetch("Delhi")
		require.NoError(t, err)
		assert.Len(t, snapshot.Forecast, 2)
	})

	t.Run("empty geocode result", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/direct", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[]`)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		_, err := newTestClient(server).Fetch("Atlantis")
		assert.ErrorIs(t, err, ErrProvider)
	})

	t.Run("upstream http error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := newTestClient(server).Fetch("Delhi")
		assert.ErrorIs(t, err, ErrProvider)
	})

	t.Run("unreachable server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestClient(server).Fetch("Delhi")
		assert.ErrorIs(t, err, ErrProvider)
	})

	t.Run("empty forecast list", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/direct", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"lat":27.1,"lon":88.3}]`)
		})
		mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"list":[]}`)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		_, err := newTestClient(server).Fetch("Delhi")
		assert.ErrorIs(t, err, ErrProvider)
	})
}
