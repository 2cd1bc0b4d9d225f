package dto

// DepartmentRequest creates or updates a department.
//
// Slug handling: on create, a missing or empty slug is derived from Name. On
// update, a missing slug keeps the stored one, an empty string clears it so a
// new one is derived from Name, and any other value replaces it verbatim.
type DepartmentRequest struct {
	Name             string  `json:"name" validate:"notblank,max=100"`
	Slug             *string `json:"slug,omitempty"`
	Image            string  `json:"image" validate:"max=255"`
	Faculty          string  `json:"faculty" validate:"max=100"`
	HeadOfDepartment string  `json:"headOfDepartment" validate:"max=100"`
	HODImage         string  `json:"hodImage" validate:"max=255"`
	Description      string  `json:"description"`
	NumOfCourses     int     `json:"numOfCourses" validate:"gte=0"`
	NumOfStudents    int     `json:"numOfStudents" validate:"gte=0"`
	DegreeType       string  `json:"degreeType" validate:"max=20"`
}

// FacultyMemberRequest adds a member to a department.
type FacultyMemberRequest struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Designation string `json:"designation" validate:"max=50"`
	Subject     string `json:"subject" validate:"notblank,max=100"`
	Image       string `json:"image" validate:"max=255"`
}
