package providers

import (
	"os/exec"

	"go-agrisathi/models"
)

// Speaker 语音播报边界。播报失败静默跳过，绝不向调用方抛错
type Speaker interface {
	Speak(text, lang string)
}

// NoopSpeaker 主机上没有TTS引擎时的占位实现
type NoopSpeaker struct{}

// Speak 什么都不做
func (NoopSpeaker) Speak(string, string) {}

// espeak的语音名
var espeakVoices = map[string]string{
	models.LangEnglish: "en",
	models.LangHindi:   "hi",
	models.LangPunjabi: "pa",
}

// CommandSpeaker 调用本机espeak-ng播报文本
type CommandSpeaker struct {
	// Command 可覆盖，默认espeak-ng
	Command string
}

// Speak 实现Speaker接口，执行失败时忽略
func (s *CommandSpeaker) Speak(text, lang string) {
	if text == "" {
		return
	}
	command := s.Command
	if command == "" {
		command = "espeak-ng"
	}
	voice, ok := espeakVoices[lang]
	if !ok {
		voice = "en"
	}
	_ = exec.Command(command, "-v", voice, text).Run()
}
