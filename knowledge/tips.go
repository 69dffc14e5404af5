package knowledge

// CalendarEntry 作物日历中某个月的农事活动
type CalendarEntry struct {
	Month    string `json:"month"`
	Activity string `json:"activity"`
}

var soilTips = []string{
	"Test soil every season for nutrient levels",
	"Add organic compost to improve soil structure",
	"Practice crop rotation to maintain soil health",
	"Use cover crops to prevent erosion",
	"Maintain proper pH levels for your crops",
}

var agriTips = []string{
	"Rotate crops to prevent soil depletion",
	"Use organic fertilizers for sustainable farming",
	"Implement drip irrigation to conserve water",
	"Monitor plants regularly for early pest detection",
	"Consider intercropping to maximize land use",
}

var govSchemes = []string{
	"PM-KISAN: ₹6,000/year financial support",
	"Soil Health Card Scheme: Free soil testing",
	"National Mission on Sustainable Agriculture",
	"Pradhan Mantri Fasal Bima Yojana: Crop insurance",
}

var cropCalendar = []CalendarEntry{
	{"Jan", "Planning"}, {"Feb", "Soil Prep"}, {"Mar", "Sowing"},
	{"Apr", "Irrigation"}, {"May", "Weeding"}, {"Jun", "Fertilization"},
	{"Jul", "Pest Control"}, {"Aug", "Harvest"}, {"Sep", "Post-Harvest"},
	{"Oct", "Marketing"}, {"Nov", "Rest"}, {"Dec", "Planning"},
}

// SoilTips 土壤健康建议，英文底稿，展示层按需翻译
func SoilTips() []string {
	out := make([]string, len(soilTips))
	copy(out, soilTips)
	return out
}

// AgriTips 通用农业建议
func AgriTips() []string {
	out := make([]string, len(agriTips))
	copy(out, agriTips)
	return out
}

// GovSchemes 政府扶持项目清单
func GovSchemes() []string {
	out := make([]string, len(govSchemes))
	copy(out, govSchemes)
	return out
}

// CropCalendar 十二个月的农事日历
func CropCalendar() []CalendarEntry {
	out := make([]CalendarEntry, len(cropCalendar))
	copy(out, cropCalendar)
	return out
}
