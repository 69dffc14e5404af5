package models

// ForumPost 社区论坛帖子
type ForumPost struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Feedback 用户反馈记录
type Feedback struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}
