package providers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"go-agrisathi/models"
)

// OpenWeatherClient 调用OpenWeatherMap接口的天气源：
// 先地理编码取坐标，再取5天预报（3小时粒度，每8条取1条作为当天代表）
type OpenWeatherClient struct {
	APIKey     string
	HTTPClient *http.Client

	// 基础地址可覆盖，测试时指向本地stub
	GeoBaseURL  string
	DataBaseURL string
}

// NewOpenWeatherClient 创建一个OpenWeatherMap客户端
func NewOpenWeatherClient(apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		APIKey:      apiKey,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
		GeoBaseURL:  "http://api.openweathermap.org/geo/1.0",
		DataBaseURL: "https://api.openweathermap.org/data/2.5",
	}
}

type geoResult struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
}

type forecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Pop float64 `json:"pop"`
}

// Fetch 实现WeatherProvider接口
func (c *OpenWeatherClient) Fetch(city string) (models.WeatherSnapshot, error) {
	var geo []geoResult
	geoURL := fmt.Sprintf("%s/direct?q=%s,IN&limit=1&appid=%s",
		c.GeoBaseURL, url.QueryEscape(city), url.QueryEscape(c.APIKey))
	if err := c.getJSON(geoURL, &geo); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("%w: geocode %s: %v", ErrProvider, city, err)
	}
	if len(geo) == 0 {
		return models.WeatherSnapshot{}, fmt.Errorf("%w: geocode %s: no result", ErrProvider, city)
	}

	var forecast forecastResponse
	dataURL := fmt.Sprintf("%s/forecast?lat=%f&lon=%f&appid=%s&units=metric",
		c.DataBaseURL, geo[0].Lat, geo[0].Lon, url.QueryEscape(c.APIKey))
	if err := c.getJSON(dataURL, &forecast); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("%w: forecast %s: %v", ErrProvider, city, err)
	}
	if len(forecast.List) == 0 {
		return models.WeatherSnapshot{}, fmt.Errorf("%w: forecast %s: empty list", ErrProvider, city)
	}

	snapshot := models.WeatherSnapshot{
		City:      city,
		Timestamp: time.Now(),
	}

	current := forecast.List[0]
	snapshot.CurrentTemp = math.Round(current.Main.Temp)
	snapshot.CurrentHumidity = current.Main.Humidity
	snapshot.CurrentWind = current.Wind.Speed
	if len(current.Weather) > 0 {
		snapshot.Condition = current.Weather[0].Description
		snapshot.Icon = current.Weather[0].Icon
	}

	// 每8条（24小时）取1条，最多5天
	limit := len(forecast.List)
	if limit > 40 {
		limit = 40
	}
	for i := 0; i < limit; i += 8 {
		entry := forecast.List[i]
		day := models.ForecastDay{
			Day:        time.Unix(entry.Dt, 0).Format("Mon"),
			Temp:       math.Round(entry.Main.Temp),
			Humidity:   entry.Main.Humidity,
			RainChance: entry.Pop * 100,
			WindSpeed:  entry.Wind.Speed,
		}
		if len(entry.Weather) > 0 {
			day.Condition = entry.Weather[0].Description
			day.Icon = entry.Weather[0].Icon
		}
		snapshot.Forecast = append(snapshot.Forecast, day)
	}

	return snapshot, nil
}

func (c *OpenWeatherClient) getJSON(rawURL string, out interface{}) error {
	resp, err := c.HTTPClient.Get(rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
