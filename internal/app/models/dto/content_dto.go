package dto

import "time"

// NewsRequest creates or updates a news item. Slug follows the same rules as
// DepartmentRequest.Slug.
type NewsRequest struct {
	Title       string     `json:"title" validate:"notblank,max=255"`
	Slug        *string    `json:"slug,omitempty"`
	Description string     `json:"description"`
	Image       string     `json:"image" validate:"max=255"`
	Author      string     `json:"author" validate:"max=100"`
	Date        *time.Time `json:"date,omitempty"`
}

// CourseRequest creates or updates a course.
type CourseRequest struct {
	Title       string  `json:"title" validate:"notblank,max=100"`
	Slug        *string `json:"slug,omitempty"`
	Description string  `json:"description"`
	Duration    string  `json:"duration" validate:"max=50"`
	Image       string  `json:"image" validate:"max=255"`
}

// EventRequest creates or updates an event.
type EventRequest struct {
	Title       string    `json:"title" validate:"notblank,max=200"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Venue       string    `json:"venue" validate:"max=200"`
	Image       string    `json:"image" validate:"max=255"`
}

// BookRequest creates a library book.
type BookRequest struct {
	Title         string `json:"title" validate:"notblank,max=255"`
	Author        string `json:"author" validate:"max=255"`
	Publisher     string `json:"publisher" validate:"max=255"`
	Category      string `json:"category" validate:"required,max=50"`
	Edition       string `json:"edition" validate:"max=50"`
	PublishedYear string `json:"publishedYear" validate:"omitempty,numeric,len=4"`
	Description   string `json:"description"`
	Image         string `json:"image" validate:"max=255"`
}

// GalleryImageRequest adds a gallery picture.
type GalleryImageRequest struct {
	Image   string `json:"image" validate:"notblank,max=255"`
	Caption string `json:"caption" validate:"max=255"`
}
