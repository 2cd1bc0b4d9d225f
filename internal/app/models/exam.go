package models

import "time"

// DefaultResultStatus is the status of a result that has not been published.
const DefaultResultStatus = "Not Released"

// Exam is scheduled by a department.
type Exam struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	DepartmentID int64     `json:"departmentId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Time         string    `json:"time"`
	Venue        string    `json:"venue"`
	Instructions string    `json:"instructions,omitempty"`
	Status       string    `json:"status"`
	ScheduleFile string    `json:"scheduleFile,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ExamResult describes how and when the results of an exam are published.
type ExamResult struct {
	ID           int64     `json:"id"`
	ExamID       int64     `json:"examId"`
	Status       string    `json:"status"`
	ReleaseDate  time.Time `json:"releaseDate"`
	AccessMethod string    `json:"accessMethod"`
	RequiredInfo string    `json:"requiredInfo"`
	Progress     int       `json:"progress"`
	ResultFile   string    `json:"resultFile,omitempty"`

	Exam *Exam `json:"exam,omitempty"`
}

// Rule is an examination rule shown on the examination page when visible.
type Rule struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Visible   bool      `json:"visible"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}
