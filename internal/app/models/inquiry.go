package models

import "time"

// ContactMessage is submitted from the contact page.
type ContactMessage struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Subject  string    `json:"subject"`
	Message  string    `json:"message"`
	DateSent time.Time `json:"dateSent"`
}

// VisitRequest is a request to tour the labs or hostel.
type VisitRequest struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Interest    string    `json:"interest"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// OnlineApplication is a prospective student's admission request.
type OnlineApplication struct {
	ID                int64     `json:"id"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	Program           string    `json:"program"`
	PreviousInstitute string    `json:"previousInstitute"`
	YearCompleted     int       `json:"yearCompleted"`
	CreatedAt         time.Time `json:"createdAt"`
}
