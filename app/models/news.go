package models

import "time"

// News is an announcement written by an admin.
type News struct {
	NewsID  uint      `gorm:"column:news_id;primaryKey;autoIncrement" json:"newsID"`
	Title   string    `gorm:"size:255;not null"                       json:"title"`
	Content string    `gorm:"type:text;not null"                      json:"content"`
	Time    time.Time `gorm:"index"                                   json:"time"`
}

func (News) TableName() string { return "news" }
