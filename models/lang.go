package models

// 支持的界面语言代码
const (
	LangEnglish = "en"
	LangHindi   = "hi"
	LangPunjabi = "pa"
)

// SupportedLanguages 所有维护了咨询内容的语言
var SupportedLanguages = []string{LangEnglish, LangHindi, LangPunjabi}
