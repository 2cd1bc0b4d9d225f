package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/middleware"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

var defaultCourseOrder = helpers.Asc("title")

// CourseController handles courses
type CourseController struct {
	courseService CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListPage renders the course catalog.
func (c *CourseController) ListPage(ctx *gin.Context) {
	courses, err := c.courseService.List(ctx, defaultCourseOrder)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "courses.html", "Courses", "courses", gin.H{"Courses": courses})
}

// DetailPage renders one course by slug.
func (c *CourseController) DetailPage(ctx *gin.Context) {
	course, err := c.courseService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "course_detail.html", course.Title, "courses", gin.H{"Course": course})
}

// ListCourses lists courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Sort field, prefix with - for descending (title, createdAt, id)" default(title)
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.List(ctx, helpers.ParseSortParam(ctx, defaultCourseOrder))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, courses)
}

// GetCourse retrieves a course by ID
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	course, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, course)
}

// CreateCourse adds a course
// @Summary Create course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 409 {object} dto.ErrorResponse "Slug already in use"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	course, err := c.courseService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, course)
}

// UpdateCourse updates a course
// @Summary Update course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CourseRequest true "Course"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Slug already in use"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	course, err := c.courseService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, course)
}

// DeleteCourse deletes a course
// @Summary Delete course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	if err := c.courseService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Course")
}
