package models

import (
	"fmt"
	"strings"
	"time"
)

// StartLayout is the layout of the date and start-time form fields joined
// by a space.
const StartLayout = "2006-01-02 15:04"

// Order is a booking of a venue for whole hours from StartTime.
type Order struct {
	OrderID   uint      `gorm:"column:order_id;primaryKey;autoIncrement" json:"orderID"`
	UserID    string    `gorm:"column:user_id;size:64;index;not null"    json:"userID"`
	VenueID   uint      `gorm:"column:venue_id;index;not null"           json:"venueID"`
	State     State     `gorm:"not null;default:1"                       json:"state"`
	OrderTime time.Time `gorm:"column:order_time"                        json:"orderTime"`
	StartTime time.Time `gorm:"column:start_time;index"                  json:"startTime"`
	Hours     int       `gorm:"not null"                                 json:"hours"`
	Total     int       `gorm:"not null;default:0"                       json:"total"`
}

func (Order) TableName() string { return "orders" }

// ParseStart joins a "2006-01-02" date and a "15:04" clock in loc. A clock
// that already carries the date ("2006-01-02 15:04") is taken as is.
func ParseStart(date, clock string, loc *time.Location) (time.Time, error) {
	value := strings.TrimSpace(clock)
	if !strings.Contains(value, " ") {
		value = strings.TrimSpace(date) + " " + value
	}
	t, err := time.ParseInLocation(StartLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("start time %q %q: %w", date, clock, err)
	}
	return t, nil
}
