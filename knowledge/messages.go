package knowledge

import (
	"fmt"

	"go-agrisathi/models"
)

// 预警与提示的消息键
const (
	MsgRainAlert        = "rain_alert"
	MsgTempAlert        = "temp_alert"
	MsgWindAlert        = "wind_alert"
	MsgWaterloggingWarn = "waterlogging_warning"
	MsgIrrigationWarn   = "irrigation_warning"
	MsgSecureItemsWarn  = "wind_warning"
	MsgExpertThankYou   = "thank_you"
	MsgHealthyOrUnknown = "healthy_or_unknown"
	MsgNoAutomatedMatch = "no_automated_match"
)

// messages 消息目录。次级提醒的文案只有英文来源，
// 其他语言的调用方需自行捕获ErrMissingTranslation并回退
var messages = map[string]localized{
	MsgRainAlert: {
		models.LangEnglish: "Heavy rain expected in next 3 days. Harvest mature crops immediately.",
		models.LangHindi:   "अगले 3 दिनों में भारी बारिश की संभावना। पके हुए फसलों की तुरंत कटाई करें।",
		models.LangPunjabi: "ਅਗਲੇ 3 ਦਿਨਾਂ ਵਿੱਚ ਭਾਰੀ ਬਾਰਸ਼ ਦੀ ਸੰਭਾਵਨਾ। ਪੱਕੇ ਹੋਏ ਫਸਲਾਂ ਦੀ ਤੁਰੰਤ ਕਟਾਈ ਕਰੋ।",
	},
	MsgTempAlert: {
		models.LangEnglish: "High temperature warning. Water plants in early morning or late evening.",
		models.LangHindi:   "उच्च तापमान चेतावनी। पौधों को सुबह जल्दी या शाम को पानी दें।",
		models.LangPunjabi: "ਉੱਚ ਤਾਪਮਾਨ ਚੇਤਾਵਨੀ। ਪੌਦਿਆਂ ਨੂੰ ਸਵੇਰੇ ਜਲਦੀ ਜਾਂ ਸ਼ਾਮ ਨੂੰ ਪਾਣੀ ਦਿਓ।",
	},
	MsgWindAlert: {
		models.LangEnglish: "Strong winds expected. Secure loose structures and protect young plants.",
		models.LangHindi:   "तेज हवाओं की संभावना। ढीली संरचनाओं को सुरक्षित करें और युवा पौधों की रक्षा करें।",
		models.LangPunjabi: "ਤੇਜ਼ ਹਵਾਵਾਂ ਦੀ ਉਮੀਦ ਹੈ। ਢਿੱਲੀਆਂ ਬਣਤਰਾਂ ਨੂੰ ਸੁਰੱਖਿਅਤ ਕਰੋ ਅਤੇ ਨੌਜਵਾਨ ਪੌਦਿਆਂ ਦੀ ਰੱਖਿਆ ਕਰੋ।",
	},
	MsgWaterloggingWarn: {
		models.LangEnglish: "Heavy rainfall expected. Consider delaying outdoor activities and protect crops from waterlogging.",
	},
	MsgIrrigationWarn: {
		models.LangEnglish: "High temperatures may stress crops. Ensure adequate irrigation.",
	},
	MsgSecureItemsWarn: {
		models.LangEnglish: "Strong winds expected. Secure loose items and protect delicate plants.",
	},
	MsgExpertThankYou: {
		models.LangEnglish: "Thank you! An expert will contact you within 24 hours.",
		models.LangHindi:   "धन्यवाद! एक विशेषज्ञ 24 घंटे के भीतर आपसे संपर्क करेगा।",
		models.LangPunjabi: "ਧੰਨਵਾਦ! ਇੱਕ ਮਾਹਿਰ 24 ਘੰਟੇ ਦੇ ਅੰਦਰ ਤੁਹਾਡੇ ਨਾਲ ਸੰਪਰਕ ਕਰੇਗਾ।",
	},
	MsgHealthyOrUnknown: {
		models.LangEnglish: "No diseases known for this crop or healthy plant detected",
	},
	MsgNoAutomatedMatch: {
		models.LangEnglish: "No automated match found. Your question has been routed to an expert.",
	},
}

// Message 取指定语言的消息文案
func Message(key, lang string) (string, error) {
	l, ok := messages[key]
	if !ok {
		return "", fmt.Errorf("unknown message key %q", key)
	}
	return l.get(lang)
}
