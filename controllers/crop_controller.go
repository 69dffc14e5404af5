package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-agrisathi/knowledge"
	"go-agrisathi/models"
	"go-agrisathi/utils"
)

// CropController 处理作物知识库相关的请求
type CropController struct{}

// NewCropController 创建一个新的CropController实例
func NewCropController() *CropController {
	return &CropController{}
}

// langFromQuery 取lang查询参数，不认识的值回退英文
func langFromQuery(ctx *gin.Context) string {
	lang := ctx.DefaultQuery("lang", models.LangEnglish)
	for _, supported := range models.SupportedLanguages {
		if lang == supported {
			return lang
		}
	}
	return models.LangEnglish
}

// ListCrops 返回作物名列表
func (c *CropController) ListCrops(ctx *gin.Context) {
	utils.Success(ctx, knowledge.Crops())
}

// GetProfile 返回指定语言的作物档案
func (c *CropController) GetProfile(ctx *gin.Context) {
	crop := ctx.Query("crop")
	if crop == "" {
		utils.BadRequest(ctx, "crop is required")
		return
	}
	lang := langFromQuery(ctx)

	profile, err := knowledge.GetCropProfile(crop, lang)
	if err != nil {
		if errors.Is(err, knowledge.ErrMissingTranslation) {
			utils.NotFound(ctx, err.Error())
		} else {
			utils.NotFound(ctx, "unknown crop: "+crop)
		}
		return
	}
	utils.Success(ctx, profile)
}

// GetDiseases 返回某作物的病害列表。无记录返回空列表，不是错误
func (c *CropController) GetDiseases(ctx *gin.Context) {
	crop := ctx.Query("crop")
	if crop == "" {
		utils.BadRequest(ctx, "crop is required")
		return
	}
	lang := langFromQuery(ctx)

	records := knowledge.GetDiseases(crop)
	infos := make([]models.DiseaseInfo, 0, len(records))
	for _, record := range records {
		info, err := record.Localize(lang)
		if err != nil {
			utils.NotFound(ctx, err.Error())
			return
		}
		infos = append(infos, info)
	}
	utils.Success(ctx, infos)
}

// GetDisease 返回单条病害记录
func (c *CropController) GetDisease(ctx *gin.Context) {
	crop := ctx.Query("crop")
	disease := ctx.Query("disease")
	if crop == "" || disease == "" {
		utils.BadRequest(ctx, "crop and disease are required")
		return
	}
	lang := langFromQuery(ctx)

	info, err := knowledge.GetDisease(crop, disease, lang)
	if err != nil {
		utils.NotFound(ctx, err.Error())
		return
	}
	utils.Success(ctx, info)
}
