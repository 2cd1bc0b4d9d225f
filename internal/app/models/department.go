package models

// DefaultDepartmentImage is used when a department is saved without an image.
const DefaultDepartmentImage = "departments/default.png"

// Department is an academic department. Slug is derived from Name.
type Department struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Image            string `json:"image"`
	Faculty          string `json:"faculty"`
	HeadOfDepartment string `json:"headOfDepartment"`
	HODImage         string `json:"hodImage,omitempty"`
	Description      string `json:"description"`
	NumOfCourses     int    `json:"numOfCourses"`
	NumOfStudents    int    `json:"numOfStudents"`
	DegreeType       string `json:"degreeType"`

	// Populated for detail and exam pages
	FacultyMembers []FacultyMember `json:"facultyMembers,omitempty"`
	Exams          []Exam          `json:"exams,omitempty"`
}

// DegreeLabel returns the long form of DegreeType.
func (d Department) DegreeLabel() string {
	return DegreeTypes.Label(d.DegreeType)
}
