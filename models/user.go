package models

// User 农户账号
type User struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	Password          string `json:"password,omitempty"`
	Phone             string `json:"phone,omitempty"`
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
}
