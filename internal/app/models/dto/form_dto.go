package dto

// Forms posted by site visitors. Field names match the HTML inputs.

// ContactForm is posted from the contact page. Every field is required.
type ContactForm struct {
	Name    string `form:"name" validate:"notblank,max=100"`
	Email   string `form:"email" validate:"required,email,max=254"`
	Phone   string `form:"phone" validate:"notblank,max=20"`
	Subject string `form:"subject" validate:"notblank,max=200"`
	Message string `form:"message" validate:"notblank"`
}

// VisitRequestForm is posted from the facilities page.
type VisitRequestForm struct {
	Name     string `form:"name" validate:"notblank,max=100"`
	Email    string `form:"email" validate:"required,email,max=254"`
	Phone    string `form:"phone" validate:"notblank,max=20"`
	Interest string `form:"interest" validate:"required,max=100"`
	Message  string `form:"message"`
}

// OnlineApplicationForm is posted from the apply-online page.
type OnlineApplicationForm struct {
	FullName          string `form:"full_name" validate:"notblank,max=100"`
	Email             string `form:"email" validate:"required,email,max=254"`
	Phone             string `form:"phone" validate:"notblank,max=20"`
	Address           string `form:"address" validate:"notblank"`
	Program           string `form:"program" validate:"required,max=50"`
	PreviousInstitute string `form:"previous_institute" validate:"notblank,max=150"`
	YearCompleted     string `form:"year_completed" validate:"required,numeric"`
}
