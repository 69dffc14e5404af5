package models

// ExpertRequest 农民提交给专家的求助记录
type ExpertRequest struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	Ticket    string `json:"ticket"`
	Phone     string `json:"phone"`
	Question  string `json:"question"`
	Language  string `json:"language"`
	Intent    string `json:"intent"`
	Crops     string `json:"crops"`
	Symptoms  string `json:"symptoms"`
	Advice    string `json:"advice"`
	Timestamp string `json:"timestamp"`
}
