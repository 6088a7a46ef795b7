package models

// Venue is a bookable place. Price is per hour.
type Venue struct {
	VenueID     uint   `gorm:"column:venue_id;primaryKey;autoIncrement"          json:"venueID"`
	VenueName   string `gorm:"column:venue_name;size:255;uniqueIndex;not null"   json:"venueName"`
	Description string `gorm:"type:text"                                         json:"description"`
	Price       int    `gorm:"not null;default:0"                                json:"price"`
	Picture     string `gorm:"size:255"                                          json:"picture"`
	Address     string `gorm:"size:255"                                          json:"address"`
	OpenTime    string `gorm:"column:open_time;size:8"                           json:"open_time"`
	CloseTime   string `gorm:"column:close_time;size:8"                          json:"close_time"`
}

func (Venue) TableName() string { return "venue" }
