package models

import (
	"fmt"
	"time"
)

// OpeningHours is an inclusive window of wall-clock hours
type OpeningHours struct {
	Open  int
	Close int
}

// StandardHours is the window shared by every catalog restaurant: noon through 11 PM
var StandardHours = OpeningHours{Open: 12, Close: 23}

// IsOpenAt reports whether t's local hour falls inside the window
func (h OpeningHours) IsOpenAt(t time.Time) bool {
	hour := t.Hour()
	return hour >= h.Open && hour <= h.Close
}

func (h OpeningHours) String() string {
	return fmt.Sprintf("%s - %s", clockHour(h.Open), clockHour(h.Close))
}

func clockHour(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d %s", hour, suffix)
}
