package models

// Intent 农民提问的意图标签
type Intent string

const (
	IntentQuestion Intent = "question"
	IntentProblem  Intent = "problem"
	IntentUnknown  Intent = "unknown"
)

// QueryInterpretation 对一条自由文本提问的结构化解读
type QueryInterpretation struct {
	Intent Intent `json:"intent"`
	// Crops 按首次出现顺序去重后的作物关键词原文
	Crops []string `json:"crops"`
	// CropNames Crops对应的知识库规范名，顺序一致，无对应项的关键词被跳过
	CropNames []string `json:"cropNames"`
	// Symptoms 按首次出现顺序去重后的症状关键词
	Symptoms []string `json:"symptoms"`
	// Query 原始提问文本，原样保留
	Query string `json:"query"`
}
