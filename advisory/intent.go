package advisory

import (
	"sort"
	"strings"

	"go-agrisathi/models"
)

// 意图关键词，三种语言混在同一列表中同时匹配
var questionKeywords = []string{
	"how", "what", "why", "when", "where",
	"कैसे", "क्या", "क्यों", "कब",
	"ਕਿਵੇਂ", "ਕੀ", "ਕਿਉਂ", "ਕਦੋਂ",
}

var problemKeywords = []string{
	"problem", "issue", "wrong", "help",
	"समस्या", "मदद",
	"ਮੁਸ਼ਕਲ", "ਸਮੱਸਿਆ", "ਮਦਦ",
}

// cropKeyword 作物关键词及其知识库规范名。
// 泛指词（如फसल）没有规范名，只作为检出记录
type cropKeyword struct {
	token string
	crop  string
}

var cropKeywords = []cropKeyword{
	{"tomato", "Tomato"}, {"potato", "Potato"}, {"rice", "Rice"},
	{"wheat", "Wheat"}, {"maize", "Maize"}, {"sugarcane", "Sugarcane"},
	{"फसल", ""}, {"टमाटर", "Tomato"}, {"आलू", "Potato"},
	{"गेहूं", "Wheat"}, {"चावल", "Rice"},
	{"ਮਕੀ", "Maize"}, {"ਗੰਨਾ", "Sugarcane"}, {"ਫਸਲ", ""},
	{"ਟਮਾਟਰ", "Tomato"}, {"ਆਲੂ", "Potato"},
}

// symptomKeywords 症状关键词。" insect"带前导空格沿用既有关键词表
var symptomKeywords = []string{
	"yellow", "spot", "wilting", "hole", " insect", "pest",
	"पीला", "धब्बे", "मुरझाना", "कीट",
	"ਕੀੜਾ", "ਪੀਲਾ", "ਧੱਬੇ", "ਮੁਰਝਾਨਾ",
}

// ClassifyQuery 对农民提问做关键词级的意图分类和实体抽取。
// 意图判定先查疑问词再查求助词，先命中者定性；
// 实体按子串匹配，不做词边界处理（"tomato"同样命中"tomatoes"），
// 检出结果按在原文中首次出现的位置排序并去重
func ClassifyQuery(query string) models.QueryInterpretation {
	lower := strings.ToLower(query)

	intent := models.IntentUnknown
	for _, kw := range questionKeywords {
		if strings.Contains(lower, kw) {
			intent = models.IntentQuestion
			break
		}
	}
	if intent == models.IntentUnknown {
		for _, kw := range problemKeywords {
			if strings.Contains(lower, kw) {
				intent = models.IntentProblem
				break
			}
		}
	}

	type match struct {
		token string
		crop  string
		pos   int
	}

	var cropMatches []match
	for _, kw := range cropKeywords {
		if pos := strings.Index(lower, kw.token); pos >= 0 {
			cropMatches = append(cropMatches, match{token: kw.token, crop: kw.crop, pos: pos})
		}
	}
	sort.SliceStable(cropMatches, func(i, j int) bool { return cropMatches[i].pos < cropMatches[j].pos })

	var symptomMatches []match
	for _, kw := range symptomKeywords {
		if pos := strings.Index(lower, kw); pos >= 0 {
			symptomMatches = append(symptomMatches, match{token: kw, pos: pos})
		}
	}
	sort.SliceStable(symptomMatches, func(i, j int) bool { return symptomMatches[i].pos < symptomMatches[j].pos })

	interp := models.QueryInterpretation{
		Intent: intent,
		Query:  query,
	}

	seenTokens := make(map[string]bool)
	seenCrops := make(map[string]bool)
	for _, m := range cropMatches {
		if seenTokens[m.token] {
			continue
		}
		seenTokens[m.token] = true
		interp.Crops = append(interp.Crops, m.token)
		if m.crop != "" && !seenCrops[m.crop] {
			seenCrops[m.crop] = true
			interp.CropNames = append(interp.CropNames, m.crop)
		}
	}

	seenSymptoms := make(map[string]bool)
	for _, m := range symptomMatches {
		if seenSymptoms[m.token] {
			continue
		}
		seenSymptoms[m.token] = true
		interp.Symptoms = append(interp.Symptoms, strings.TrimSpace(m.token))
	}

	return interp
}
