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

// AdvisoryController 处理提问分类、自动解答和图片分析请求
type AdvisoryController struct {
	Detector   advisory.Detector
	Translator providers.Translator
	Speaker    providers.Speaker
}

// NewAdvisoryController 创建一个新的AdvisoryController实例
func NewAdvisoryController(detector advisory.Detector, translator providers.Translator, speaker providers.Speaker) *AdvisoryController {
	return &AdvisoryController{Detector: detector, Translator: translator, Speaker: speaker}
}

// normalizeLang 校验请求体里的语言代码，不认识的回退英文
func normalizeLang(lang string) string {
	for _, supported := range models.SupportedLanguages {
		if lang == supported {
			return lang
		}
	}
	return models.LangEnglish
}

// ClassifyRequest 提问分类请求
type ClassifyRequest struct {
	Query    string `json:"query" binding:"required"`
	Language string `json:"language"`
}

// ClassifyQuery 对农民提问做意图分类并尝试自动解答
func (c *AdvisoryController) ClassifyQuery(ctx *gin.Context) {
	var req ClassifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	lang := normalizeLang(req.Language)

	interpretation := advisory.ClassifyQuery(req.Query)

	resolution, err := advisory.ResolveAdvisory(interpretation, lang)
	if err != nil && errors.Is(err, knowledge.ErrMissingTranslation) {
		// 缺译时展示层显式回退英文
		resolution, err = advisory.ResolveAdvisory(interpretation, models.LangEnglish)
	}
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	response := gin.H{
		"interpretation": interpretation,
		"resolution":     resolution,
	}
	if resolution.Status == advisory.StatusNoAutomatedMatch {
		response["message"] = localizeMessage(knowledge.MsgNoAutomatedMatch, lang)
	}

	utils.Success(ctx, response)
}

// AnalyzeRequest 植物图片分析请求。图片本体由展示层处理，
// 这里只需要已选作物
type AnalyzeRequest struct {
	Crop     string `json:"crop" binding:"required"`
	Language string `json:"language"`
	Speak    bool   `json:"speak"`
}

// AnalyzeImage 对上传的植物图片做病害检测（模拟）
func (c *AdvisoryController) AnalyzeImage(ctx *gin.Context) {
	var req AnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	lang := normalizeLang(req.Language)

	resolution, err := advisory.AnalyzeImage(c.Detector, req.Crop, lang)
	if err != nil && errors.Is(err, knowledge.ErrMissingTranslation) {
		resolution, err = advisory.AnalyzeImage(c.Detector, req.Crop, models.LangEnglish)
	}
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	response := gin.H{"resolution": resolution}
	if resolution.Status == advisory.StatusHealthyOrUnknown {
		response["message"] = localizeMessage(knowledge.MsgHealthyOrUnknown, lang)
	}

	if req.Speak && resolution.Advice != nil {
		c.Speaker.Speak(resolution.Advice.Treatment+" "+resolution.Advice.Prevention, lang)
	}

	utils.Success(ctx, response)
}

// GetTips 返回土壤健康建议、农业建议、政府项目和作物日历。
// 底稿是英文，非英文请求经翻译边界转换，翻译失败时原文返回
func (c *AdvisoryController) GetTips(ctx *gin.Context) {
	lang := langFromQuery(ctx)

	translate := func(items []string) []string {
		if lang == models.LangEnglish {
			return items
		}
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = c.Translator.Translate(item, lang)
		}
		return out
	}

	utils.Success(ctx, gin.H{
		"soilTips":   translate(knowledge.SoilTips()),
		"agriTips":   translate(knowledge.AgriTips()),
		"govSchemes": translate(knowledge.GovSchemes()),
		"calendar":   knowledge.CropCalendar(),
	})
}
