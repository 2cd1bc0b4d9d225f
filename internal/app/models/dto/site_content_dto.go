package dto

// Requests for the editable page blocks, one per content kind. Empty optional
// fields fall back to the schema defaults.

type PrincipalMessageRequest struct {
	Title    string `json:"title" validate:"max=200"`
	Subtitle string `json:"subtitle" validate:"max=200"`
	Message  string `json:"message" validate:"notblank"`
	Image    string `json:"image" validate:"max=255"`
}

type AcademicExcellenceRequest struct {
	BackgroundImage   string `json:"backgroundImage" validate:"max=255"`
	Heading           string `json:"heading" validate:"notblank,max=255"`
	Subheading        string `json:"subheading" validate:"max=255"`
	SearchPlaceholder string `json:"searchPlaceholder" validate:"max=255"`
	StudentsEnrolled  int    `json:"studentsEnrolled" validate:"gte=0"`
	AcademicPrograms  int    `json:"academicPrograms" validate:"gte=0"`
	EmploymentRate    int    `json:"employmentRate" validate:"gte=0,lte=100"`
}

type TestimonialRequest struct {
	Name    string `json:"name" validate:"notblank,max=100"`
	Role    string `json:"role" validate:"max=150"`
	Message string `json:"message" validate:"notblank"`
	Image   string `json:"image" validate:"max=255"`
}

// FacilityRequest describes a lab. Name is a lab type and defaults to
// "programming".
type FacilityRequest struct {
	Name        string   `json:"name" validate:"max=50"`
	Title       string   `json:"title" validate:"notblank,max=100"`
	Description string   `json:"description"`
	Image       string   `json:"image" validate:"max=255"`
	Features    []string `json:"features"`
}

type HostelIntroRequest struct {
	Heading     string `json:"heading" validate:"notblank,max=200"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"max=255"`
}

type HostelFacilityRequest struct {
	Title       string   `json:"title" validate:"notblank,max=100"`
	Description string   `json:"description"`
	Image       string   `json:"image" validate:"max=255"`
	Features    []string `json:"features"`
}

type AdmissionStepRequest struct {
	Title       string `json:"title" validate:"notblank,max=100"`
	IconClass   string `json:"iconClass" validate:"max=50"`
	Description string `json:"description"`
}

// FeeStructureRequest adds a fee row. Department defaults to "engineering".
type FeeStructureRequest struct {
	Department string `json:"department" validate:"max=50"`
	Program    string `json:"program" validate:"notblank,max=100"`
	FeeRange   string `json:"feeRange" validate:"max=50"`
	Duration   string `json:"duration" validate:"max=20"`
}

// ApplicationDownloadRequest publishes a new application form. FormFile is a
// path returned by the upload endpoint.
type ApplicationDownloadRequest struct {
	IntakeSeason string `json:"intakeSeason" validate:"notblank,max=50"`
	Description  string `json:"description"`
	FormFile     string `json:"formFile" validate:"notblank,max=255"`
}

type AdmissionRequest struct {
	Department  string `json:"department" validate:"notblank,max=200"`
	Program     string `json:"program"`
	Duration    string `json:"duration" validate:"max=50"`
	Eligibility string `json:"eligibility"`
}

type PhilosophyBlockRequest struct {
	Title       string `json:"title" validate:"notblank,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=255"`
}

type StatisticRequest struct {
	Title string `json:"title" validate:"notblank,max=100"`
	Count int    `json:"count" validate:"gte=0"`
	Color string `json:"color" validate:"max=20"`
}

type HighlightSectionRequest struct {
	Heading         string `json:"heading" validate:"notblank,max=200"`
	Subheading      string `json:"subheading" validate:"max=200"`
	Description     string `json:"description"`
	BackgroundImage string `json:"backgroundImage" validate:"max=255"`
	ButtonText      string `json:"buttonText" validate:"max=100"`
	ButtonURL       string `json:"buttonUrl" validate:"max=255"`
}

type ContactInformationRequest struct {
	Address        string `json:"address" validate:"notblank,max=255"`
	Phone          string `json:"phone" validate:"notblank,max=20"`
	Email          string `json:"email" validate:"required,email,max=254"`
	FacebookLink   string `json:"facebookLink" validate:"omitempty,url,max=255"`
	TwitterLink    string `json:"twitterLink" validate:"omitempty,url,max=255"`
	LinkedinLink   string `json:"linkedinLink" validate:"omitempty,url,max=255"`
	GooglePlusLink string `json:"googlePlusLink" validate:"omitempty,url,max=255"`
}
