package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-agrisathi/advisory"
	"go-agrisathi/knowledge"
	"go-agrisathi/models"
	"go-agrisathi/providers"
	"go-agrisathi/utils"
)

// defaultCity 未指定地点时的默认城市
const defaultCity = "Jorethang"

// WeatherController 处理天气与预警相关的请求
type WeatherController struct {
	Provider providers.WeatherProvider
	Cache    *providers.SnapshotCache[models.WeatherSnapshot]
}

// NewWeatherController 创建一个新的WeatherController实例
func NewWeatherController(provider providers.WeatherProvider) *WeatherController {
	return &WeatherController{
		Provider: provider,
		Cache:    providers.NewSnapshotCache[models.WeatherSnapshot](),
	}
}

// localizeMessage 取指定语言的消息，缺译时显式回退英文。
// 知识库不做静默回退，回退是展示层的决定
func localizeMessage(key, lang string) string {
	message, err := knowledge.Message(key, lang)
	if err == nil {
		return message
	}
	if errors.Is(err, knowledge.ErrMissingTranslation) {
		if fallback, ferr := knowledge.Message(key, models.LangEnglish); ferr == nil {
			return fallback
		}
	}
	return key
}

// GetWeather 返回某城市的天气快照、主预警和次级提醒。
// refresh=1时先使缓存失效强制重新抓取
func (c *WeatherController) GetWeather(ctx *gin.Context) {
	city := ctx.DefaultQuery("city", defaultCity)
	lang := langFromQuery(ctx)

	if ctx.Query("refresh") == "1" {
		c.Cache.Invalidate(city)
	}

	snapshot, ok := c.Cache.Get(city)
	if !ok {
		var err error
		snapshot, err = c.Provider.Fetch(city)
		if err != nil {
			// ErrProvider到不了这里，除非数据源未配降级
			utils.InternalServerError(ctx, err.Error())
			return
		}
		c.Cache.Put(city, snapshot)
	}

	alert, warnings := advisory.EvaluateAlerts(snapshot)
	if alert != nil {
		alert.Message = localizeMessage(alert.Key, lang)
	}
	for i := range warnings {
		warnings[i].Message = localizeMessage(warnings[i].Key, lang)
	}

	utils.Success(ctx, gin.H{
		"snapshot": snapshot,
		"alert":    alert,
		"warnings": warnings,
	})
}

// GetCities 返回支持的城市列表
func (c *WeatherController) GetCities(ctx *gin.Context) {
	utils.Success(ctx, knowledge.Cities())
}
