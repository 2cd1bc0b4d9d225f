package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/controllers"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/middleware"
	"github.com/yigit/sitehub/internal/pkg/auth"
)

// Controllers groups every handler the router mounts.
type Controllers struct {
	Auth       *controllers.AuthController
	Department *controllers.DepartmentController
	News       *controllers.NewsController
	Course     *controllers.CourseController
	Event      *controllers.EventController
	Library    *controllers.LibraryController
	Exam       *controllers.ExamController
	Site       *controllers.SiteController
	Inquiry    *controllers.InquiryController
	Upload     *controllers.UploadController
}

// HealthFunc reports whether the backing services are reachable.
type HealthFunc func(c *gin.Context) error

// SetupPages mounts the public HTML pages. Page URLs end with a slash.
func SetupPages(router *gin.Engine, ctrl Controllers) {
	router.GET("/", ctrl.Site.HomePage)
	router.GET("/about/", ctrl.Site.AboutPage)
	router.GET("/facilities/", ctrl.Site.FacilitiesPage)
	router.POST("/facilities/visit/", ctrl.Inquiry.SubmitVisitRequest)
	router.GET("/admission/", ctrl.Site.AdmissionPage)
	router.GET("/apply-online/", ctrl.Inquiry.ApplyOnlinePage)
	router.POST("/apply-online/", ctrl.Inquiry.SubmitApplication)
	router.GET("/gallery/", ctrl.Site.GalleryPage)
	router.GET("/contact/", ctrl.Inquiry.ContactPage)
	router.POST("/contact/submit/", ctrl.Inquiry.SubmitContact)

	router.GET("/departments/", ctrl.Department.ListPage)
	router.GET("/departments/:slug/", ctrl.Department.DetailPage)
	router.GET("/news/", ctrl.News.ListPage)
	router.GET("/news/:slug/", ctrl.News.DetailPage)
	router.GET("/courses/", ctrl.Course.ListPage)
	router.GET("/courses/:slug/", ctrl.Course.DetailPage)
	router.GET("/events/", ctrl.Event.ListPage)
	router.GET("/events/:id/", ctrl.Event.DetailPage)
	router.GET("/library/", ctrl.Library.BrowsePage)
	router.GET("/library/book/:id/", ctrl.Library.BookPage)
	router.GET("/examination-info/", ctrl.Exam.ExaminationPage)

	router.NoRoute(middleware.NotFoundPage)
}

// SetupAPI mounts the admin JSON API under /api/v1. Everything except login
// and health requires an admin token.
func SetupAPI(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware, health HealthFunc) {
	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", ctrl.Auth.Login)
	v1.GET("/health", func(c *gin.Context) {
		if err := health(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.NewAPIResponse(gin.H{"status": "unavailable"}))
			return
		}
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})

	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleAdmin))

	departments := admin.Group("/departments")
	{
		departments.GET("", ctrl.Department.ListDepartments)
		departments.POST("", ctrl.Department.CreateDepartment)
		departments.GET("/:id", ctrl.Department.GetDepartment)
		departments.PUT("/:id", ctrl.Department.UpdateDepartment)
		departments.DELETE("/:id", ctrl.Department.DeleteDepartment)
		departments.GET("/:id/faculty", ctrl.Department.ListFaculty)
		departments.POST("/:id/faculty", ctrl.Department.AddFacultyMember)
		departments.DELETE("/:id/faculty/:memberId", ctrl.Department.DeleteFacultyMember)
	}

	news := admin.Group("/news")
	{
		news.GET("", ctrl.News.ListNews)
		news.POST("", ctrl.News.CreateNews)
		news.GET("/:id", ctrl.News.GetNews)
		news.PUT("/:id", ctrl.News.UpdateNews)
		news.DELETE("/:id", ctrl.News.DeleteNews)
	}

	courses := admin.Group("/courses")
	{
		courses.GET("", ctrl.Course.ListCourses)
		courses.POST("", ctrl.Course.CreateCourse)
		courses.GET("/:id", ctrl.Course.GetCourse)
		courses.PUT("/:id", ctrl.Course.UpdateCourse)
		courses.DELETE("/:id", ctrl.Course.DeleteCourse)
	}

	events := admin.Group("/events")
	{
		events.GET("", ctrl.Event.ListEvents)
		events.POST("", ctrl.Event.CreateEvent)
		events.GET("/:id", ctrl.Event.GetEvent)
		events.PUT("/:id", ctrl.Event.UpdateEvent)
		events.DELETE("/:id", ctrl.Event.DeleteEvent)
	}

	books := admin.Group("/library/books")
	{
		books.GET("", ctrl.Library.BrowseBooks)
		books.POST("", ctrl.Library.CreateBook)
		books.GET("/:id", ctrl.Library.GetBook)
		books.DELETE("/:id", ctrl.Library.DeleteBook)
	}

	admin.GET("/exams", ctrl.Exam.ListExams)
	admin.POST("/exams", ctrl.Exam.CreateExam)
	admin.DELETE("/exams/:id", ctrl.Exam.DeleteExam)
	admin.GET("/exam-results", ctrl.Exam.ListResults)
	admin.POST("/exam-results", ctrl.Exam.CreateResult)
	admin.DELETE("/exam-results/:id", ctrl.Exam.DeleteResult)
	admin.GET("/exam-rules", ctrl.Exam.ListRules)
	admin.POST("/exam-rules", ctrl.Exam.CreateRule)
	admin.DELETE("/exam-rules/:id", ctrl.Exam.DeleteRule)

	admin.GET("/content/:kind", ctrl.Site.GetSingleton)
	admin.GET("/content/:kind/items", ctrl.Site.ListContent)
	admin.POST("/content/:kind", ctrl.Site.CreateContent)
	admin.DELETE("/content/:kind/:id", ctrl.Site.DeleteContent)
	admin.GET("/gallery", ctrl.Site.ListGallery)
	admin.POST("/gallery", ctrl.Site.AddGalleryImage)
	admin.DELETE("/gallery/:id", ctrl.Site.DeleteGalleryImage)

	inquiries := admin.Group("/inquiries")
	{
		inquiries.GET("/contact", ctrl.Inquiry.ListContactMessages)
		inquiries.GET("/visits", ctrl.Inquiry.ListVisitRequests)
		inquiries.GET("/applications", ctrl.Inquiry.ListApplications)
	}

	admin.POST("/uploads", ctrl.Upload.Upload)
}
