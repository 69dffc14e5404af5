package utils

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid"
)

// 工单号格式：AGS-前缀加10位编码，农民回电时报号即可定位记录
const (
	ticketPrefix   = "AGS-"
	ticketLength   = 10
	ticketAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
)

// NewTicketCode 生成一个专家求助工单号
func NewTicketCode() string {
	id, err := gonanoid.Generate(ticketAlphabet, ticketLength)
	if err != nil {
		// 随机源不可用时退回时间戳编码
		id = fmt.Sprintf("%0*X", ticketLength, time.Now().UnixNano()&0xFFFFFFFFFF)
	}
	return ticketPrefix + id
}

// ValidateTicketCode 验证工单号格式
func ValidateTicketCode(code string) bool {
	if !strings.HasPrefix(code, ticketPrefix) {
		return false
	}
	body := strings.TrimPrefix(code, ticketPrefix)
	if len(body) != ticketLength {
		return false
	}
	for _, char := range body {
		if !strings.ContainsRune(ticketAlphabet, char) {
			return false
		}
	}
	return true
}
