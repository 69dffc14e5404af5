package providers

import (
	"log"

	"go-agrisathi/models"
)

// FallbackWeather 先走线上数据源，失败时降级到备用源。
// 备用源配置为模拟器时，调用方永远拿不到天气数据的原始网络错误
type FallbackWeather struct {
	Primary  WeatherProvider
	Fallback WeatherProvider
}

// Fetch 实现WeatherProvider接口
func (f *FallbackWeather) Fetch(city string) (models.WeatherSnapshot, error) {
	snapshot, err := f.Primary.Fetch(city)
	if err == nil {
		return snapshot, nil
	}
	log.Printf("weather provider degraded for %s: %v", city, err)
	return f.Fallback.Fetch(city)
}

// FallbackMarket 行情数据源的同款降级包装
type FallbackMarket struct {
	Primary  MarketProvider
	Fallback MarketProvider
}

// Fetch 实现MarketProvider接口
func (f *FallbackMarket) Fetch() (models.MarketSnapshot, error) {
	snapshot, err := f.Primary.Fetch()
	if err == nil {
		return snapshot, nil
	}
	log.Printf("market provider degraded: %v", err)
	return f.Fallback.Fetch()
}
