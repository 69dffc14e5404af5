package providers

import (
	"errors"

	"go-agrisathi/models"
)

// ErrProvider 外部数据源失败（网络或解析）的包装错误
var ErrProvider = errors.New("provider error")

// WeatherProvider 按地点抓取天气快照的数据源。
// 快照生成后不可变，下次抓取整体替换
type WeatherProvider interface {
	Fetch(city string) (models.WeatherSnapshot, error)
}

// MarketProvider 抓取市场行情快照的数据源
type MarketProvider interface {
	Fetch() (models.MarketSnapshot, error)
}
