package services

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/repositories"
	"github.com/yigit/sitehub/internal/pkg/auth"
	"github.com/yigit/sitehub/internal/pkg/email"
	"github.com/yigit/sitehub/internal/pkg/logger"
)

// Services holds every service the controllers use.
type Services struct {
	Auth       *AuthService
	Department *DepartmentService
	News       *NewsService
	Course     *CourseService
	Event      *EventService
	Library    *LibraryService
	Exam       *ExamService
	Site       *SiteService
	Inquiry    *InquiryService
}

// Options carries what the services need besides the repositories.
type Options struct {
	Admin    AdminAccount
	JWT      *auth.JWTService
	Notifier email.Notifier
	Location *time.Location
}

// NewServices wires the services on top of the repositories.
func NewServices(repos *repositories.Repositories, opts Options) *Services {
	log := func(component string) zerolog.Logger { return logger.WithComponent(component) }

	events := NewEventService(repos.Event, opts.Location, log("events"))
	return &Services{
		Auth:       NewAuthService(opts.Admin, opts.JWT, log("auth")),
		Department: NewDepartmentService(repos.Department, repos.FacultyMember, log("departments")),
		News:       NewNewsService(repos.News, log("news")),
		Course:     NewCourseService(repos.Course, log("courses")),
		Event:      events,
		Library:    NewLibraryService(repos.Library, log("library")),
		Exam:       NewExamService(repos.Exam, repos.Department, opts.Location, log("exams")),
		Site:       NewSiteService(repos.SiteContent, repos.Department, repos.News, repos.Course, events, log("site")),
		Inquiry:    NewInquiryService(repos.Inquiry, opts.Notifier, log("inquiries")),
	}
}
