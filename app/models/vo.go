package models

import "github.com/shashiranjanraj/venuebook/pkg/collection"

// OrderVo is an Order with the venue name for list views.
type OrderVo struct {
	Order
	VenueName string `json:"venueName"`
}

// MessageVo is a Message with its author's display fields.
type MessageVo struct {
	Message
	UserName string `json:"userName"`
	Picture  string `json:"picture"`
}

// ToOrderVos projects orders one to one, in order. Unknown venues leave
// VenueName empty.
func ToOrderVos(orders []Order, venueNames map[uint]string) []OrderVo {
	vos := make([]OrderVo, len(orders))
	for i, o := range orders {
		vos[i] = OrderVo{Order: o, VenueName: venueNames[o.VenueID]}
	}
	return vos
}

// ToMessageVos projects messages one to one, in order. Unknown authors
// leave the display fields empty.
func ToMessageVos(messages []Message, users map[string]User) []MessageVo {
	vos := make([]MessageVo, len(messages))
	for i, m := range messages {
		u := users[m.UserID]
		vos[i] = MessageVo{Message: m, UserName: u.UserName, Picture: u.Picture}
	}
	return vos
}

// VenueIDs collects the distinct venue IDs of orders.
func VenueIDs(orders []Order) []uint {
	return collection.Unique(collection.Map(orders, func(o Order) uint { return o.VenueID }))
}

// UserIDs collects the distinct author IDs of messages.
func UserIDs(messages []Message) []string {
	return collection.Unique(collection.Map(messages, func(m Message) string { return m.UserID }))
}
