package models

// FacultyMember belongs to exactly one department. Members are listed by name.
type FacultyMember struct {
	ID           int64  `json:"id"`
	DepartmentID int64  `json:"departmentId"`
	Name         string `json:"name"`
	Designation  string `json:"designation,omitempty"`
	Subject      string `json:"subject"`
	Image        string `json:"image"`
}

// DefaultFacultyImage is used when a member is saved without a photo.
const DefaultFacultyImage = "faculty_images/default.jpg"
