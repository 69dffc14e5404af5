package knowledge

import (
	"errors"
	"fmt"

	"go-agrisathi/models"
)

// 知识库查询的错误类型。查询失败必须显式报错，不做静默英文回退
var (
	ErrUnknownCrop        = errors.New("unknown crop")
	ErrUnknownDisease     = errors.New("unknown disease")
	ErrMissingTranslation = errors.New("missing translation")
)

// localized 按语言代码索引的文本，英文为基准语言
type localized map[string]string

// get 取指定语言的文本，缺译时报ErrMissingTranslation
func (l localized) get(lang string) (string, error) {
	if s, ok := l[lang]; ok && s != "" {
		return s, nil
	}
	return "", fmt.Errorf("%q: %w", lang, ErrMissingTranslation)
}

// Crops 返回全部作物名，按知识库收录顺序
func Crops() []string {
	names := make([]string, 0, len(cropEntries))
	for _, c := range cropEntries {
		names = append(names, c.name)
	}
	return names
}

// HasCrop 判断作物是否收录
func HasCrop(crop string) bool {
	for _, c := range cropEntries {
		if c.name == crop {
			return true
		}
	}
	return false
}

// GetCropProfile 查找作物档案并解析为指定语言
func GetCropProfile(crop, lang string) (models.CropProfile, error) {
	for _, c := range cropEntries {
		if c.name != crop {
			continue
		}

		profile := models.CropProfile{
			Crop:      c.name,
			WaterNeed: c.water,
			PHMin:     c.phMin,
			PHMax:     c.phMax,
		}

		var err error
		if profile.SoilType, err = c.soilType.get(lang); err != nil {
			return models.CropProfile{}, fmt.Errorf("crop %s soil type: %w", crop, err)
		}
		if profile.Season, err = c.season.get(lang); err != nil {
			return models.CropProfile{}, fmt.Errorf("crop %s season: %w", crop, err)
		}
		if profile.WaterNeedLabel, err = waterLabels[c.water].get(lang); err != nil {
			return models.CropProfile{}, fmt.Errorf("crop %s water need: %w", crop, err)
		}
		if profile.CommonPests, err = c.pests.get(lang); err != nil {
			return models.CropProfile{}, fmt.Errorf("crop %s pests: %w", crop, err)
		}
		if profile.Fertilizer, err = c.fertilizer.get(lang); err != nil {
			return models.CropProfile{}, fmt.Errorf("crop %s fertilizer: %w", crop, err)
		}
		return profile, nil
	}
	return models.CropProfile{}, fmt.Errorf("%q: %w", crop, ErrUnknownCrop)
}

// DiseaseRecord 一条病害记录，文本字段按语言维护
type DiseaseRecord struct {
	Crop string
	Name string

	symptoms   localized
	treatment  localized
	prevention localized
}

// Localize 将病害记录解析为指定语言的视图
func (r DiseaseRecord) Localize(lang string) (models.DiseaseInfo, error) {
	info := models.DiseaseInfo{Crop: r.Crop, Disease: r.Name}

	var err error
	if info.Symptoms, err = r.symptoms.get(lang); err != nil {
		return models.DiseaseInfo{}, fmt.Errorf("disease %s/%s symptoms: %w", r.Crop, r.Name, err)
	}
	if info.Treatment, err = r.treatment.get(lang); err != nil {
		return models.DiseaseInfo{}, fmt.Errorf("disease %s/%s treatment: %w", r.Crop, r.Name, err)
	}
	if info.Prevention, err = r.prevention.get(lang); err != nil {
		return models.DiseaseInfo{}, fmt.Errorf("disease %s/%s prevention: %w", r.Crop, r.Name, err)
	}
	return info, nil
}

// GetDiseases 返回某作物的全部病害记录，按收录顺序。
// 无记录返回空切片，这是合法状态而非错误
func GetDiseases(crop string) []DiseaseRecord {
	var records []DiseaseRecord
	for _, d := range diseaseEntries {
		if d.Crop == crop {
			records = append(records, d)
		}
	}
	return records
}

// GetDisease 查找并解析某条病害记录
func GetDisease(crop, disease, lang string) (models.DiseaseInfo, error) {
	for _, d := range diseaseEntries {
		if d.Crop == crop && d.Name == disease {
			return d.Localize(lang)
		}
	}
	return models.DiseaseInfo{}, fmt.Errorf("%s/%s: %w", crop, disease, ErrUnknownDisease)
}
