package models

import (
	"time"

	"github.com/yigit/sitehub/internal/pkg/calendar"
)

// Event is a dated happening on campus.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Image       string    `json:"image"`
}

// CategorizedEvent pairs an event with its bucket for the current day.
// The category is never stored.
type CategorizedEvent struct {
	Event
	Category calendar.Category `json:"category"`
}
