package providers

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"go-agrisathi/models"
)

// cityPattern 某城市的基准天气
type cityPattern struct {
	baseTemp   float64
	rainChance float64
	windSpeed  float64
}

var cityPatterns = map[string]cityPattern{
	"chennai":    {32, 60, 12},
	"madras":     {32, 60, 12},
	"mumbai":     {30, 70, 15},
	"bombay":     {30, 70, 15},
	"delhi":      {28, 20, 10},
	"new delhi":  {28, 20, 10},
	"bangalore":  {26, 40, 8},
	"bengaluru":  {26, 40, 8},
	"jorethang":  {20, 80, 18},
	"gangtok":    {20, 80, 18},
	"darjeeling": {20, 80, 18},
}

var defaultPattern = cityPattern{28, 50, 10}

var forecastDayLabels = [models.ForecastDays]string{"Today", "Mon", "Tue", "Wed", "Thu"}

// WeatherSimulator 确定性的天气模拟源，用于演示环境和线上接口不可用时的降级。
// 同一城市两次抓取得到完全相同的快照（时间戳除外），不引入随机抖动
type WeatherSimulator struct {
	// Now 可注入时钟，为nil时用time.Now
	Now func() time.Time
}

// Fetch 实现WeatherProvider接口，永不失败
func (s *WeatherSimulator) Fetch(city string) (models.WeatherSnapshot, error) {
	pattern, ok := cityPatterns[strings.ToLower(city)]
	if !ok {
		pattern = defaultPattern
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	icon := "02d"
	if pattern.rainChance >= 50 {
		icon = "10d"
	}

	forecast := make([]models.ForecastDay, 0, models.ForecastDays)
	for i, label := range forecastDayLabels {
		rain := pattern.rainChance + float64(variation(city, i, 20))
		if rain < 0 {
			rain = 0
		}
		if rain > 100 {
			rain = 100
		}
		wind := pattern.windSpeed + float64(variation(city, i+100, 5))
		if wind < 0 {
			wind = 0
		}
		forecast = append(forecast, models.ForecastDay{
			Day:        label,
			Temp:       pattern.baseTemp + float64(variation(city, i+200, 3)),
			Humidity:   60 + variation(city, i+300, 15),
			RainChance: rain,
			WindSpeed:  wind,
			Condition:  "Partly cloudy",
			Icon:       icon,
		})
	}

	return models.WeatherSnapshot{
		City:            city,
		CurrentTemp:     forecast[0].Temp,
		CurrentHumidity: forecast[0].Humidity,
		CurrentWind:     forecast[0].WindSpeed,
		Condition:       forecast[0].Condition,
		Icon:            "02d",
		Forecast:        forecast,
		Timestamp:       now(),
	}, nil
}

// variation 由城市名和序号确定的[-span, span]内的偏移量
func variation(city string, index, span int) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s#%d", strings.ToLower(city), index)
	return int(h.Sum32()%uint32(2*span+1)) - span
}
