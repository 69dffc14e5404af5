package models

// WaterNeed 作物需水等级
type WaterNeed string

const (
	WaterLow    WaterNeed = "low"
	WaterMedium WaterNeed = "medium"
	WaterHigh   WaterNeed = "high"
)

// CropProfile 单一语言下的作物档案视图
type CropProfile struct {
	Crop           string    `json:"crop"`
	SoilType       string    `json:"soilType"`
	Season         string    `json:"season"`
	WaterNeed      WaterNeed `json:"waterNeed"`
	WaterNeedLabel string    `json:"waterNeedLabel"`
	PHMin          float64   `json:"phMin"`
	PHMax          float64   `json:"phMax"`
	CommonPests    string    `json:"commonPests"`
	Fertilizer     string    `json:"fertilizer"`
}

// DiseaseInfo 单一语言下的病害记录视图
type DiseaseInfo struct {
	Crop       string `json:"crop"`
	Disease    string `json:"disease"`
	Symptoms   string `json:"symptoms"`
	Treatment  string `json:"treatment"`
	Prevention string `json:"prevention"`
}
