package advisory

import (
	"go-agrisathi/knowledge"
	"go-agrisathi/models"
)

// 解决结果状态。"未命中"是合法结果而不是错误，
// 调用方据此走人工专家兜底而不是异常分支
const (
	StatusMatched          = "matched"
	StatusNoAutomatedMatch = "no_automated_match"
	StatusDetected         = "detected"
	StatusHealthyOrUnknown = "healthy_or_unknown"
)

// Resolution 提问自动解答的结果
type Resolution struct {
	Status string              `json:"status"`
	Advice *models.DiseaseInfo `json:"advice,omitempty"`
}

// ResolveAdvisory 基于提问解读给出自动建议：
// 取检出顺序中第一个有病害记录的作物，返回其第一条记录（收录顺序）的处置建议。
// 未检出症状、或所有检出作物都没有病害记录时返回NoAutomatedMatch。
// 仅当目标语言缺译时报错
func ResolveAdvisory(interp models.QueryInterpretation, lang string) (Resolution, error) {
	if len(interp.Symptoms) == 0 || len(interp.CropNames) == 0 {
		return Resolution{Status: StatusNoAutomatedMatch}, nil
	}

	for _, crop := range interp.CropNames {
		records := knowledge.GetDiseases(crop)
		if len(records) == 0 {
			continue
		}
		info, err := records[0].Localize(lang)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Status: StatusMatched, Advice: &info}, nil
	}

	return Resolution{Status: StatusNoAutomatedMatch}, nil
}

// AnalyzeImage 处理上传植物图片的分析请求。
// 检测器给不出结果（作物没有已知病害）时返回HealthyOrUnknown
func AnalyzeImage(detector Detector, crop, lang string) (Resolution, error) {
	record, ok := detector.Detect(crop)
	if !ok {
		return Resolution{Status: StatusHealthyOrUnknown}, nil
	}
	info, err := record.Localize(lang)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Status: StatusDetected, Advice: &info}, nil
}
