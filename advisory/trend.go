package advisory

import "go-agrisathi/models"

// trendDeadband 价格波动容差，绝对变化不超过该值视为持平，
// 避免微小波动在每次刷新时来回翻转走势箭头
const trendDeadband = 0.5

// DeriveMarketTrend 根据前后两次采样价推导走势。
// 变化量正好等于±0.5时落在容差带内，判定为持平
func DeriveMarketTrend(prev, next float64) models.Trend {
	delta := next - prev
	switch {
	case delta > trendDeadband:
		return models.TrendUp
	case delta < -trendDeadband:
		return models.TrendDown
	default:
		return models.TrendFlat
	}
}
