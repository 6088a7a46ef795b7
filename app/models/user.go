package models

// User is a registered customer or operator. UserID is the login name.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"                    json:"id"`
	UserID   string `gorm:"column:user_id;size:64;uniqueIndex;not null" json:"userID"`
	UserName string `gorm:"column:user_name;size:255;not null"          json:"userName"`
	Password string `gorm:"size:255;not null"                           json:"-"`
	Email    string `gorm:"size:255"                                    json:"email"`
	Phone    string `gorm:"size:32"                                     json:"phone"`
	IsAdmin  int    `gorm:"column:is_admin;not null;default:0"          json:"isadmin"`
	Picture  string `gorm:"size:255"                                    json:"picture"`
}

func (User) TableName() string { return "user" }

func (u User) Admin() bool { return u.IsAdmin == 1 }
