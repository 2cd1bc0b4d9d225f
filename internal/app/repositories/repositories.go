package repositories

import (
	"github.com/yigit/sitehub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	Department    *DepartmentRepository
	FacultyMember *FacultyMemberRepository
	News          *NewsRepository
	Course        *CourseRepository
	Event         *EventRepository
	Library       *LibraryRepository
	Exam          *ExamRepository
	SiteContent   *SiteContentRepository
	Inquiry       *InquiryRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pg *db.PostgresDB) *Repositories {
	return &Repositories{
		Department:    NewDepartmentRepository(pg.Pool),
		FacultyMember: NewFacultyMemberRepository(pg.Pool),
		News:          NewNewsRepository(pg.Pool),
		Course:        NewCourseRepository(pg.Pool),
		Event:         NewEventRepository(pg.Pool),
		Library:       NewLibraryRepository(pg.Pool),
		Exam:          NewExamRepository(pg),
		SiteContent:   NewSiteContentRepository(pg.Pool),
		Inquiry:       NewInquiryRepository(pg.Pool),
	}
}
