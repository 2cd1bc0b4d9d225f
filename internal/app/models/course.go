package models

import "time"

// Course is a program or short course advertised on the site.
type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// News is a dated article.
type News struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Author      string    `json:"author"`
	Date        time.Time `json:"date"`
}

// DefaultNewsAuthor is stored when a news item has no author.
const DefaultNewsAuthor = "GCMS Admin"
