package models

// Severity 预警级别
type Severity string

const (
	SeverityUrgent   Severity = "urgent"
	SeverityAdvisory Severity = "advisory"
)

// Alert 由天气快照推导出的主预警，每次评估至多一条
type Alert struct {
	Severity Severity `json:"severity"`
	Key      string   `json:"key"`
	Message  string   `json:"message,omitempty"`
}

// Warning 次级提醒，可与主预警及其他提醒同时出现
type Warning struct {
	Key     string `json:"key"`
	Message string `json:"message,omitempty"`
}
