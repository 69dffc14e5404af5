package models

import "time"

// Trend 价格走势标记
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// MarketQuote 单个作物的行情
type MarketQuote struct {
	Crop  string  `json:"crop"`
	Price float64 `json:"price"`
	Trend Trend   `json:"trend"`
}

// MarketSnapshot 某次抓取的市场行情快照，生成后不再修改
type MarketSnapshot struct {
	Quotes    []MarketQuote `json:"quotes"`
	Timestamp time.Time     `json:"timestamp"`
}
