package knowledge

import "go-agrisathi/models"

// cropEntry 作物档案原始数据
type cropEntry struct {
	name       string
	soilType   localized
	season     localized
	water      models.WaterNeed
	phMin      float64
	phMax      float64
	pests      localized
	fertilizer localized
}

// waterLabels 需水等级的显示文本
var waterLabels = map[models.WaterNeed]localized{
	models.WaterLow: {
		models.LangEnglish: "Low",
		models.LangHindi:   "कम",
		models.LangPunjabi: "ਘੱਟ",
	},
	models.WaterMedium: {
		models.LangEnglish: "Medium",
		models.LangHindi:   "मध्यम",
		models.LangPunjabi: "ਦਰਮਿਆਨਾ",
	},
	models.WaterHigh: {
		models.LangEnglish: "High",
		models.LangHindi:   "उच्च",
		models.LangPunjabi: "ਉੱਚ",
	},
}

// cropEntries 作物档案，进程启动时加载一次，之后只读
var cropEntries = []cropEntry{
	{
		name: "Rice",
		soilType: localized{
			models.LangEnglish: "Clayey loam",
			models.LangHindi:   "चिकनी दोमट मिट्टी",
			models.LangPunjabi: "ਚਿਕੀ ਦੋਮਟ ਮਿੱਟੀ",
		},
		season: localized{
			models.LangEnglish: "Kharif (June-October)",
			models.LangHindi:   "खरीफ (जून-अक्टूबर)",
			models.LangPunjabi: "ਖਰੀਫ (ਜੂਨ-ਅਕਤੂਬਰ)",
		},
		water: models.WaterHigh,
		phMin: 5.0,
		phMax: 6.5,
		pests: localized{
			models.LangEnglish: "Stem borer, Brown plant hopper",
			models.LangHindi:   "तना छेदक, भूरा प्लांट हॉपर",
			models.LangPunjabi: "ਤਣਾ ਬੋਰਰ, ਬ੍ਰਾਊਨ ਪਲਾਂਟ ਹੌਪਰ",
		},
		fertilizer: localized{
			models.LangEnglish: "N:P:K - 100:50:50 kg/ha",
			models.LangHindi:   "N:P:K - 100:50:50 kg/हेक्टेयर",
			models.LangPunjabi: "N:P:K - 100:50:50 kg/ਹੈਕਟੇਅਰ",
		},
	},
	{
		name: "Wheat",
		soilType: localized{
			models.LangEnglish: "Well-drained loamy soil",
			models.LangHindi:   "अच्छी जल निकासी वाली दोमट मिट्टी",
			models.LangPunjabi: "ਚੰਗੀ ਤਰ੍ਹਾਂ ਨਾਲ ਸੁੱਕੀ ਦੋਮਟ ਮਿੱਟੀ",
		},
		season: localized{
			models.LangEnglish: "Rabi (November-April)",
			models.LangHindi:   "रबी (नवंबर-अप्रैल)",
			models.LangPunjabi: "ਰਬੀ (ਨਵੰਬਰ-ਅਪ੍ਰੈਲ)",
		},
		water: models.WaterMedium,
		phMin: 6.0,
		phMax: 7.5,
		pests: localized{
			models.LangEnglish: "Aphids, Armyworm",
			models.LangHindi:   "एफिड्स, आर्मीवर्म",
			models.LangPunjabi: "ਐਫਿਡ, ਆਰਮੀਵਰਮ",
		},
		fertilizer: localized{
			models.LangEnglish: "N:P:K - 120:60:40 kg/ha",
			models.LangHindi:   "N:P:K - 120:60:40 kg/हेक्टेयर",
			models.LangPunjabi: "N:P:K - 120:60:40 kg/ਹੈਕਟੇਅਰ",
		},
	},
	{
		name: "Tomato",
		soilType: localized{
			models.LangEnglish: "Well-drained sandy loam",
			models.LangHindi:   "अच्छी जल निकासी वाली बलुई दोमट मिट्टी",
			models.LangPunjabi: "ਚੰਗੀ ਤਰ੍ਹਾਂ ਨਾਲ ਸੁੱਕੀ ਰੇਤਲੀ ਦੋਮਟ ਮਿੱਟੀ",
		},
		season: localized{
			models.LangEnglish: "Year-round with irrigation",
			models.LangHindi:   "सिंचाई के साथ साल भर",
			models.LangPunjabi: "ਸਿੰਜਾਈ ਨਾਲ ਸਾਲ ਭਰ",
		},
		water: models.WaterMedium,
		phMin: 6.0,
		phMax: 6.8,
		pests: localized{
			models.LangEnglish: "Whiteflies, Tomato fruit borer",
			models.LangHindi:   "व्हाइटफ्लाइज़, टमाटर फल बोरर",
			models.LangPunjabi: "ਵ੍ਹਾਈਟਫਲਾਈਜ਼, ਟਮਾਟਰ ਫਲ ਬੋਰਰ",
		},
		fertilizer: localized{
			models.LangEnglish: "N:P:K - 150:100:100 kg/ha",
			models.LangHindi:   "N:P:K - 150:100:100 kg/हेक्टेयर",
			models.LangPunjabi: "N:P:K - 150:100:100 kg/ਹੈਕਟੇਅਰ",
		},
	},
	{
		name: "Potato",
		soilType: localized{
			models.LangEnglish: "Well-drained sandy loam",
			models.LangHindi:   "अच्छी जल निकासी वाली बलुई दोमट मिट्टी",
			models.LangPunjabi: "ਚੰਗੀ ਤਰ੍ਹਾਂ ਨਾਲ ਸੁੱਕੀ ਰੇਤਲੀ ਦੋਮਟ ਮਿੱਟੀ",
		},
		season: localized{
			models.LangEnglish: "Rabi (October-March)",
			models.LangHindi:   "रबी (अक्टूबर-मार्च)",
			models.LangPunjabi: "ਰਬੀ (ਅਕਤੂਬਰ-ਮਾਰਚ)",
		},
		water: models.WaterMedium,
		phMin: 5.0,
		phMax: 6.5,
		pests: localized{
			models.LangEnglish: "Colorado potato beetle, Aphids",
			models.LangHindi:   "कोलोराडो आलू बीटल, एफिड्स",
			models.LangPunjabi: "ਕੋਲੋਰਾਡੋ ਆਲੂ ਬੀਟਲ, ਐਫਿਡ",
		},
		fertilizer: localized{
			models.LangEnglish: "N:P:K - 100:50:50 kg/ha",
			models.LangHindi:   "N:P:K - 100:50:50 kg/हेक्टेयर",
			models.LangPunjabi: "N:P:K - 100:50:50 kg/ਹੈਕਟੇਅਰ",
		},
	},
	{
		name: "Maize",
		soilType: localized{
			models.LangEnglish: "Well-drained loamy soil",
			models.LangHindi:   "अच्छी जल निकासी वाली दोमट मिट्टी",
			models.LangPunjabi: "ਚੰਗੀ ਤਰ੍ਹਾਂ ਨਾਲ ਸੁੱਕੀ ਦੋਮਟ ਮਿੱਟੀ",
		},
		season: localized{
			models.LangEnglish: "Kharif (June-September)",
			models.LangHindi:   "खरीफ (जून-सितंबर)",
			models.LangPunjabi: "ਖਰੀਫ (ਜੂਨ-ਸਤੰਬਰ)",
		},
		water: models.WaterMedium,
		phMin: 5.5,
		phMax: 7.0,
		pests: localized{
			models.LangEnglish: "Stem borer, Armyworm",
			models.LangHindi:   "तना छेदक, आर्मीवर्म",
			models.LangPunjabi: "ਤਣਾ ਬੋਰਰ, ਆਰਮੀਵਰਮ",
		},
		fertilizer: localized{
			models.LangEnglish: "N:P:K - 100:50:50 kg/ha",
			models.LangHindi:   "N:P:K - 100:50:50 kg/हेक्टेयर",
			models.LangPunjabi: "N:P:K - 100:50:50 kg/ਹੈਕਟੇਅਰ",
		},
	},
	{
		name: "Sugarcane",
		soilType: localized{
			models.LangEnglish: "Deep rich loamy soil",
			models.LangHindi:   "गहरी उपजाऊ दोमट मिट्टी",
			models.LangPunjabi: "ਡੂੰਘੀ ਅਮੀਰ ਦੋਮਟ ਮਿੱਟੀ",
		},
		season: localized{
			models.LangEnglish: "Year-round with irrigation",
			models.LangHindi:   "सिंचाई के साथ साल भर",
			models.LangPunjabi: "ਸਿੰਜਾਈ ਨਾਲ ਸਾਲ ਭਰ",
		},
		water: models.WaterHigh,
		phMin: 6.0,
		phMax: 7.5,
		pests: localized{
			models.LangEnglish: "Top borer, Scale insects",
			models.LangHindi:   "टॉप बोरर, स्केल कीट",
			models.LangPunjabi: "ਟਾਪ ਬੋਰਰ, ਸਕੇਲ ਕੀੜੇ",
		},
		fertilizer: localized{
			models.LangEnglish: "N:P:K - 100:50:50 kg/ha",
			models.LangHindi:   "N:P:K - 100:50:50 kg/हेक्टेयर",
			models.LangPunjabi: "N:P:K - 100:50:50 kg/ਹੈਕਟੇਅਰ",
		},
	},
}

// diseaseEntries 病害记录，每条的Crop必须是cropEntries中的作物名。
// 切片顺序即解决器遍历的收录顺序
var diseaseEntries = []DiseaseRecord{
	{
		Crop: "Tomato",
		Name: "Early Blight",
		symptoms: localized{
			models.LangEnglish: "Dark spots with concentric rings on leaves, stems and fruits",
			models.LangHindi:   "पत्तियों, तनों और फलों पर केंद्रित छल्ले वाले काले धब्बे",
			models.LangPunjabi: "ਪੱਤੀਆਂ, ਡੰਡੀਆਂ ਅਤੇ ਫਲਾਂ 'ਤੇ ਕੇਂਦਰਿਤ ਰਿੰਗਾਂ ਵਾਲੇ ਡਾਰਕ ਧੱਬੇ",
		},
		treatment: localized{
			models.LangEnglish: "Apply chlorothalonil or copper-based fungicides",
			models.LangHindi:   "क्लोरोथालोनिल या तांबे आधारित कवकनाशी लगाएं",
			models.LangPunjabi: "ਕਲੋਰੋਥਾਲੋਨਿਲ ਜਾਂ ਤਾਂਬੇ-ਅਧਾਰਤ ਫੰਗੀਸਾਈਡਸ ਲਗਾਓ",
		},
		prevention: localized{
			models.LangEnglish: "Rotate crops, remove infected plants, ensure good air circulation",
			models.LangHindi:   "फसलों का रोटेशन, संक्रमित पौधों को हटाना, अच्छा वायु संचार सुनिश्चित करना",
			models.LangPunjabi: "ਫਸਲਾਂ ਦੀ ਘੁੰਮਾਓ, ਸੰਕਰਮਿਤ ਪੌਦਿਆਂ ਨੂੰ ਹਟਾਓ, ਚੰਗੀ ਹਵਾ ਪ੍ਰਣਾਲੀ ਨੂੰ ਯਕੀਨੀ ਬਣਾਓ",
		},
	},
	{
		Crop: "Tomato",
		Name: "Late Blight",
		symptoms: localized{
			models.LangEnglish: "Water-soaked lesions that turn brown and papery",
			models.LangHindi:   "पानी से लथपथ घाव जो भूरे और कागजी हो जाते हैं",
			models.LangPunjabi: "ਪਾਣੀ ਨਾਲ ਭਿੱਜੇ ਘਾਉ ਜੋ ਭੂਰੇ ਅਤੇ ਕਾਗਜ਼ੀ ਹੋ ਜਾਂਦੇ ਹਨ",
		},
		treatment: localized{
			models.LangEnglish: "Apply fungicides containing mancozeb or metalaxyl",
			models.LangHindi:   "मैंकोजेब या मेटालाक्सिल युक्त कवकनाशी लगाएं",
			models.LangPunjabi: "ਮੈਨਕੋਜ਼ੇਬ ਜਾਂ ਮੈਟਾਲਾਕਸੀਲ ਯੁਕਤ ਫੰਗੀਸਾਈਡਸ ਲਗਾਓ",
		},
		prevention: localized{
			models.LangEnglish: "Avoid overhead watering, remove volunteer plants",
			models.LangHindi:   "ओवरहेड वाटरिंग से बचें, स्वयंसेवक पौधों को हटा दें",
			models.LangPunjabi: "ਓਵਰਹੈਡ ਵਾਟਰਿੰਗ ਤੋਂ ਬਚੋ, ਰੁੱਖੇ ਪੌਦੇ ਹਟਾਓ",
		},
	},
	{
		Crop: "Potato",
		Name: "Late Blight",
		symptoms: localized{
			models.LangEnglish: "Dark, water-soaked spots on leaves with white mold under wet conditions",
			models.LangHindi:   "गीली परिस्थितियों में सफेद मोल्ड के साथ पत्तियों पर काले, पानी से लथपथ धब्बे",
			models.LangPunjabi: "ਗਿੱਲੀ ਹਾਲਤ ਵਿੱਚ ਚਿੱਟੇ ਮੋਲਡ ਨਾਲ ਪੱਤੀਆਂ 'ਤੇ ਡਾਰਕ, ਪਾਣੀ ਨਾਲ ਭਿੱਜੇ ਧੱਬੇ",
		},
		treatment: localized{
			models.LangEnglish: "Apply fungicides containing chlorothalonil or mancozeb",
			models.LangHindi:   "क्लोरोथालोनिल या मैंकोजेब युक्त कवकनाशी लगाएं",
			models.LangPunjabi: "ਕਲੋਰੋਥਾਲੋਨਿਲ ਜਾਂ ਮੈਨਕੋਜ਼ੇਬ ਯੁਕਤ ਫੰਗੀਸਾਈਡਸ ਲਗਾਓ",
		},
		prevention: localized{
			models.LangEnglish: "Plant resistant varieties, avoid overhead irrigation",
			models.LangHindi:   "प्रतिरोधी किस्में लगाएं, ओवरहेड सिंचाई से बचें",
			models.LangPunjabi: "ਪ੍ਰਤੀਰੋਧਕ ਕਿਸਮਾਂ ਲਗਾਓ, ਓਵਰਹੈਡ ਸਿੰਜਾਈ ਤੋਂ ਬਚੋ",
		},
	},
	{
		Crop: "Rice",
		Name: "Blast",
		symptoms: localized{
			models.LangEnglish: "Spindle-shaped lesions with gray centers and brown margins",
			models.LangHindi:   "ग्रे सेंटर और भूरे मार्जिन के साथ स्पिंडल के आकार के घाव",
			models.LangPunjabi: "ਸਲੇਟੀ ਸੈਂਟਰ ਅਤੇ ਭੂਰੇ ਮਾਰਜਿਨ ਨਾਲ ਸਪਿੰਡਲ-ਆਕਾਰ ਦੇ ਘਾਉ",
		},
		treatment: localized{
			models.LangEnglish: "Apply fungicides containing tricyclazole or azoxystrobin",
			models.LangHindi:   "ट्राइसाइक्लाजोल या एज़ोक्सिस्ट्रोबिन युक्त कवकनाशी लगाएं",
			models.LangPunjabi: "ਟ੍ਰਾਈਸਾਈਕਲਾਜ਼ੋਲ ਜਾਂ ਅਜ਼ੋਕਸੀਸਟ੍ਰੋਬਿਨ ਯੁਕਤ ਫੰਗੀਸਾਈਡਸ ਲਗਾਓ",
		},
		prevention: localized{
			models.LangEnglish: "Use resistant varieties, avoid excessive nitrogen fertilization",
			models.LangHindi:   "प्रतिरोधी किस्मों का उपयोग करें, अत्यधिक नाइट्रोजन निषेचन से बचें",
			models.LangPunjabi: "ਪ੍ਰਤੀਰੋਧਕ ਕਿਸਮਾਂ ਦੀ ਵਰਤੋਂ ਕਰੋ, ਜ਼ਿਆਦਾ ਨਾਈਟ੍ਰੋਜਨ ਖਾਦ ਤੋਂ ਬਚੋ",
		},
	},
}

// cities 天气查询支持的城市列表
var cities = []string{
	"Jorethang", "Gangtok", "Darjeeling", "Kolkata", "Mumbai", "Delhi", "Chennai",
	"Bangalore", "Hyderabad", "Pune", "Ahmedabad", "Jaipur", "Lucknow", "Bhopal",
	"Patna", "Chandigarh", "Dehradun", "Shimla", "Agartala", "Guwahati", "Dispur",
}

// Cities 返回支持的城市列表
func Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}
