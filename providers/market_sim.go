package providers

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"go-agrisathi/advisory"
	"go-agrisathi/models"
)

// basePrice 作物的行情基准价（₹/kg）
type basePrice struct {
	crop  string
	price float64
}

var marketBase = []basePrice{
	{"Rice", 40}, {"Wheat", 30}, {"Tomato", 25},
	{"Potato", 20}, {"Maize", 22}, {"Sugarcane", 15},
}

// floorPrice 模拟价的下限
const floorPrice = 5.0

// MarketSimulator 行情模拟源：在基准价附近采样，
// 走势由上次采样价和本次采样价经容差带推导，不可直接设置
type MarketSimulator struct {
	mu   sync.Mutex
	rng  *rand.Rand
	last map[string]float64
}

// NewMarketSimulator 创建一个行情模拟源
func NewMarketSimulator() *MarketSimulator {
	return NewMarketSimulatorSeed(time.Now().UnixNano())
}

// NewMarketSimulatorSeed 创建指定随机种子的行情模拟源，便于测试复现
func NewMarketSimulatorSeed(seed int64) *MarketSimulator {
	return &MarketSimulator{
		rng:  rand.New(rand.NewSource(seed)),
		last: make(map[string]float64),
	}
}

// Fetch 实现MarketProvider接口
func (m *MarketSimulator) Fetch() (models.MarketSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	quotes := make([]models.MarketQuote, 0, len(marketBase))
	for _, b := range marketBase {
		prev, ok := m.last[b.crop]
		if !ok {
			prev = b.price
		}

		price := b.price + m.rng.Float64()*4 - 2
		if price < floorPrice {
			price = floorPrice
		}
		price = math.Round(price*10) / 10

		quotes = append(quotes, models.MarketQuote{
			Crop:  b.crop,
			Price: price,
			Trend: advisory.DeriveMarketTrend(prev, price),
		})
		m.last[b.crop] = price
	}

	return models.MarketSnapshot{Quotes: quotes, Timestamp: time.Now()}, nil
}
