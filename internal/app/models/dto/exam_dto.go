package dto

// ExamRequest schedules an exam. Dates use the YYYY-MM-DD layout.
type ExamRequest struct {
	Title        string `json:"title" validate:"notblank,max=200"`
	DepartmentID int64  `json:"departmentId" validate:"required,gt=0"`
	StartDate    string `json:"startDate" validate:"required"`
	EndDate      string `json:"endDate" validate:"required"`
	Time         string `json:"time" validate:"notblank,max=100"`
	Venue        string `json:"venue" validate:"notblank,max=200"`
	Instructions string `json:"instructions"`
	Status       string `json:"status" validate:"notblank,max=100"`
	ScheduleFile string `json:"scheduleFile" validate:"max=255"`
}

// ExamResultRequest publishes result information for an exam.
type ExamResultRequest struct {
	ExamID       int64  `json:"examId" validate:"required,gt=0"`
	Status       string `json:"status" validate:"max=20"`
	ReleaseDate  string `json:"releaseDate" validate:"required"`
	AccessMethod string `json:"accessMethod" validate:"max=100"`
	RequiredInfo string `json:"requiredInfo" validate:"max=100"`
	Progress     int    `json:"progress" validate:"gte=0,lte=100"`
	ResultFile   string `json:"resultFile" validate:"max=255"`
}

// RuleRequest adds an examination rule.
type RuleRequest struct {
	Category  string `json:"category" validate:"max=100"`
	Content   string `json:"content" validate:"notblank"`
	Visible   *bool  `json:"visible,omitempty"`
	SortOrder int    `json:"sortOrder" validate:"gte=0"`
}
