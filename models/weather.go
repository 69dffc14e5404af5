package models

import "time"

// ForecastDay 未来一天的天气预报，下标0代表今天
type ForecastDay struct {
	Day        string  `json:"day"`
	Temp       float64 `json:"temp"`
	Humidity   int     `json:"humidity"`
	RainChance float64 `json:"rainChance"`
	WindSpeed  float64 `json:"windSpeed"`
	Condition  string  `json:"condition"`
	Icon       string  `json:"icon"`
}

// ForecastDays 预报序列的固定长度
const ForecastDays = 5

// WeatherSnapshot 某地某次抓取的天气快照，生成后不再修改
type WeatherSnapshot struct {
	City            string        `json:"city"`
	CurrentTemp     float64       `json:"currentTemp"`
	CurrentHumidity int           `json:"currentHumidity"`
	CurrentWind     float64       `json:"currentWind"`
	Condition       string        `json:"condition"`
	Icon            string        `json:"icon"`
	Forecast        []ForecastDay `json:"forecast"`
	Timestamp       time.Time     `json:"timestamp"`
}
