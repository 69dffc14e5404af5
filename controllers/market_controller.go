package controllers

import (
	"github.com/gin-gonic/gin"

	"go-agrisathi/models"
	"go-agrisathi/providers"
	"go-agrisathi/utils"
)

// marketCacheKey 行情快照的缓存键
const marketCacheKey = "market"

// MarketController 处理市场行情相关的请求
type MarketController struct {
	Provider providers.MarketProvider
	Cache    *providers.SnapshotCache[models.MarketSnapshot]
}

// NewMarketController 创建一个新的MarketController实例
func NewMarketController(provider providers.MarketProvider) *MarketController {
	return &MarketController{
		Provider: provider,
		Cache:    providers.NewSnapshotCache[models.MarketSnapshot](),
	}
}

// GetPrices 返回各作物的行情快照。refresh=1时强制重新抓取
func (c *MarketController) GetPrices(ctx *gin.Context) {
	if ctx.Query("refresh") == "1" {
		c.Cache.Invalidate(marketCacheKey)
	}

	snapshot, ok := c.Cache.Get(marketCacheKey)
	if !ok {
		var err error
		snapshot, err = c.Provider.Fetch()
		if err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		c.Cache.Put(marketCacheKey, snapshot)
	}

	utils.Success(ctx, snapshot)
}
