package models

// Site-wide content blocks edited from the back office. Several of them are
// singletons: the pages show one row, chosen by SingletonPolicy.

type PrincipalMessage struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Message  string `json:"message"`
	Image    string `json:"image"`
}

type AcademicExcellence struct {
	ID                int64  `json:"id"`
	BackgroundImage   string `json:"backgroundImage"`
	Heading           string `json:"heading"`
	Subheading        string `json:"subheading"`
	SearchPlaceholder string `json:"searchPlaceholder"`
	StudentsEnrolled  int    `json:"studentsEnrolled"`
	AcademicPrograms  int    `json:"academicPrograms"`
	EmploymentRate    int    `json:"employmentRate"`
}

type Testimonial struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Message string `json:"message"`
	Image   string `json:"image"`
}

// Facility is a lab. Name is one of LabTypes.
type Facility struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

type HostelIntro struct {
	ID          int64  `json:"id"`
	Heading     string `json:"heading"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type HostelFacility struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

type AdmissionStep struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	IconClass   string `json:"iconClass"`
	Description string `json:"description"`
}

// FeeStructure.Department is one of FeeDepartments.
type FeeStructure struct {
	ID         int64  `json:"id"`
	Department string `json:"department"`
	Program    string `json:"program"`
	FeeRange   string `json:"feeRange"`
	Duration   string `json:"duration"`
}

// DepartmentLabel returns the display name of Department.
func (f FeeStructure) DepartmentLabel() string {
	return FeeDepartments.Label(f.Department)
}

type ApplicationDownload struct {
	ID           int64  `json:"id"`
	IntakeSeason string `json:"intakeSeason"`
	Description  string `json:"description"`
	FormFile     string `json:"formFile"`
}

type Admission struct {
	ID          int64  `json:"id"`
	Department  string `json:"department"`
	Program     string `json:"program"`
	Duration    string `json:"duration"`
	Eligibility string `json:"eligibility"`
}

type PhilosophyBlock struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Statistic struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type HighlightSection struct {
	ID              int64  `json:"id"`
	Heading         string `json:"heading"`
	Subheading      string `json:"subheading"`
	Description     string `json:"description"`
	BackgroundImage string `json:"backgroundImage"`
	ButtonText      string `json:"buttonText"`
	ButtonURL       string `json:"buttonUrl"`
}

type ContactInformation struct {
	ID             int64  `json:"id"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	FacebookLink   string `json:"facebookLink,omitempty"`
	TwitterLink    string `json:"twitterLink,omitempty"`
	LinkedinLink   string `json:"linkedinLink,omitempty"`
	GooglePlusLink string `json:"googlePlusLink,omitempty"`
}

type GalleryImage struct {
	ID      int64  `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption,omitempty"`
}

// SingletonKind names a content block that pages render at most once.
type SingletonKind string

const (
	SingletonPrincipalMessage    SingletonKind = "principal_message"
	SingletonAcademicExcellence  SingletonKind = "academic_excellence"
	SingletonHostelIntro         SingletonKind = "hostel_intro"
	SingletonHighlightSection    SingletonKind = "highlight_section"
	SingletonContactInformation  SingletonKind = "contact_information"
	SingletonApplicationDownload SingletonKind = "application_download"
)

// SingletonPolicy decides which row wins when a singleton table holds more
// than one row.
type SingletonPolicy string

const (
	// PickFirst takes the row with the lowest id.
	PickFirst SingletonPolicy = "first"
	// PickLatest takes the row with the highest id.
	PickLatest SingletonPolicy = "latest"
)

// SingletonPolicies is the policy per kind. The application form shown on the
// admission page is the most recently uploaded one; every other block keeps
// the first row that was created.
var SingletonPolicies = map[SingletonKind]SingletonPolicy{
	SingletonPrincipalMessage:    PickFirst,
	SingletonAcademicExcellence:  PickFirst,
	SingletonHostelIntro:         PickFirst,
	SingletonHighlightSection:    PickFirst,
	SingletonContactInformation:  PickFirst,
	SingletonApplicationDownload: PickLatest,
}

// ContentKind names an editable content table in the admin API. The kinds
// that are also singletons share their SingletonKind value.
type ContentKind string

const (
	ContentPrincipalMessage    ContentKind = "principal_message"
	ContentAcademicExcellence  ContentKind = "academic_excellence"
	ContentTestimonial         ContentKind = "testimonial"
	ContentFacility            ContentKind = "facility"
	ContentHostelIntro         ContentKind = "hostel_intro"
	ContentHostelFacility      ContentKind = "hostel_facility"
	ContentAdmissionStep       ContentKind = "admission_step"
	ContentFeeStructure        ContentKind = "fee_structure"
	ContentApplicationDownload ContentKind = "application_download"
	ContentAdmission           ContentKind = "admission"
	ContentPhilosophyBlock     ContentKind = "philosophy_block"
	ContentStatistic           ContentKind = "statistic"
	ContentHighlightSection    ContentKind = "highlight_section"
	ContentContactInformation  ContentKind = "contact_information"
)

// ContentKinds lists every kind managed through the admin API.
var ContentKinds = []ContentKind{
	ContentPrincipalMessage, ContentAcademicExcellence, ContentTestimonial,
	ContentFacility, ContentHostelIntro, ContentHostelFacility,
	ContentAdmissionStep, ContentFeeStructure, ContentApplicationDownload,
	ContentAdmission, ContentPhilosophyBlock, ContentStatistic,
	ContentHighlightSection, ContentContactInformation,
}

// Valid reports whether k is one of ContentKinds.
func (k ContentKind) Valid() bool {
	for _, kind := range ContentKinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Values stored when a block is created without them. They match the column
// defaults of the schema.
const (
	DefaultPrincipalTitle    = "Message from the Principal"
	DefaultPrincipalImage    = "principal_images/default.jpg"
	DefaultBackgroundImage   = "backgrounds/default.jpg"
	DefaultTestimonialImage  = "testimonials/default.jpg"
	DefaultFacilityImage     = "facilities/default.jpg"
	DefaultHostelImage       = "hostel/default.jpg"
	DefaultAdmissionStepIcon = "fas fa-graduation-cap"
	DefaultStatisticColor    = "primary"
)
