// Package calendar buckets dated items relative to the current day.
package calendar

import "time"

// Category is the display bucket of an event.
type Category string

const (
	Happening Category = "happening"
	Upcoming  Category = "upcoming"
	Expired   Category = "expired"
)

// Classify compares the calendar day of eventDate with the calendar day of
// today, both taken in today's location. Times of day are ignored.
func Classify(eventDate, today time.Time) Category {
	ey, em, ed := eventDate.In(today.Location()).Date()
	ty, tm, td := today.Date()

	event := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	now := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	switch {
	case event.Equal(now):
		return Happening
	case event.After(now):
		return Upcoming
	default:
		return Expired
	}
}

// Label is the human readable form used by templates.
func (c Category) Label() string {
	switch c {
	case Happening:
		return "Happening Now"
	case Upcoming:
		return "Upcoming"
	default:
		return "Expired"
	}
}
