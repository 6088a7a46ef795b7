package models

import "time"

// Message is a board post. Only approved messages are public.
type Message struct {
	MessageID uint      `gorm:"column:message_id;primaryKey;autoIncrement" json:"messageID"`
	UserID    string    `gorm:"column:user_id;size:64;index;not null"      json:"userID"`
	Content   string    `gorm:"type:text;not null"                         json:"content"`
	Time      time.Time `gorm:"index"                                      json:"time"`
	State     State     `gorm:"not null;default:1;index"                   json:"state"`
}

func (Message) TableName() string { return "message" }
