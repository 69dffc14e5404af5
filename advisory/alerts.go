package advisory

import (
	"go-agrisathi/knowledge"
	"go-agrisathi/models"
)

// 主预警阈值。降雨阈值高于次级提醒，因为主预警触发的是立即收割的紧急动作
const (
	primaryRainThreshold = 70.0
	primaryTempThreshold = 35.0
	primaryWindThreshold = 15.0
)

// 次级提醒阈值，相互独立，可同时触发
const (
	warnRainThreshold = 60.0
	warnTempThreshold = 33.0
	warnWindThreshold = 15.0
)

// EvaluateAlerts 根据天气快照推导至多一条主预警和若干次级提醒。
// 主预警按严格优先级取第一条命中的规则：暴雨、高温、大风；
// 次级提醒不分优先级，所有命中的都返回。
// 纯函数，相同快照多次评估结果相同
func EvaluateAlerts(w models.WeatherSnapshot) (*models.Alert, []models.Warning) {
	var todayRain float64
	if len(w.Forecast) > 0 {
		todayRain = w.Forecast[0].RainChance
	}

	var alert *models.Alert
	switch {
	case todayRain > primaryRainThreshold:
		alert = &models.Alert{Severity: models.SeverityUrgent, Key: knowledge.MsgRainAlert}
	case w.CurrentTemp > primaryTempThreshold:
		alert = &models.Alert{Severity: models.SeverityAdvisory, Key: knowledge.MsgTempAlert}
	case w.CurrentWind > primaryWindThreshold:
		alert = &models.Alert{Severity: models.SeverityAdvisory, Key: knowledge.MsgWindAlert}
	}

	var warnings []models.Warning
	if todayRain > warnRainThreshold {
		warnings = append(warnings, models.Warning{Key: knowledge.MsgWaterloggingWarn})
	}
	if w.CurrentTemp > warnTempThreshold {
		warnings = append(warnings, models.Warning{Key: knowledge.MsgIrrigationWarn})
	}
	if w.CurrentWind > warnWindThreshold {
		warnings = append(warnings, models.Warning{Key: knowledge.MsgSecureItemsWarn})
	}

	return alert, warnings
}
