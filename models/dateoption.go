package models

import "time"

// BookingDateOption is a candidate calendar date for booking a tour,
// with its own (possibly weekend- or holiday-adjusted) price.
type BookingDateOption struct {
	ID        string    `bson:"id" json:"id"`
	Date      time.Time `bson:"date" json:"date"`
	DayOfWeek int       `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday
	Price     float64   `bson:"price" json:"price"`
	Holiday   bool      `bson:"isHoliday" json:"isHoliday"`
	Selected  bool      `bson:"-" json:"isSelected"`
	Available bool      `bson:"-" json:"isAvailable"`
}

var dayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayName returns the short weekday name for the option.
func (o BookingDateOption) DayName() string {
	if o.DayOfWeek >= 0 && o.DayOfWeek < len(dayNames) {
		return dayNames[o.DayOfWeek]
	}
	return ""
}
