package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/middleware"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

var defaultDepartmentOrder = helpers.Asc("name")

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// ListPage renders the department listing.
func (c *DepartmentController) ListPage(ctx *gin.Context) {
	departments, err := c.departmentService.List(ctx, defaultDepartmentOrder)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "departments.html", "Departments", "departments", gin.H{"Departments": departments})
}

// DetailPage renders one department with its faculty.
func (c *DepartmentController) DetailPage(ctx *gin.Context) {
	department, err := c.departmentService.GetWithFaculty(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "department_detail.html", department.Name, "departments", gin.H{"Department": department})
}

// ListDepartments retrieves all departments
// @Summary List departments
// @Description Lists every department. The order is given by the sort parameter.
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Sort field, prefix with - for descending (name, slug, id)" default(name)
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.List(ctx, helpers.ParseSortParam(ctx, defaultDepartmentOrder))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, departments)
}

// GetDepartment retrieves a department by ID
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse "Invalid department ID"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartment(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	department, err := c.departmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, department)
}

// CreateDepartment handles department creation
// @Summary Create a department
// @Description Creates a department. Without a slug one is derived from the name, suffixed -1, -2... when taken.
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse "Malformed request"
// @Failure 409 {object} dto.ErrorResponse "Slug already in use"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.DepartmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	department, err := c.departmentService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, department)
}

// UpdateDepartment updates an existing department
// @Summary Update a department
// @Description Omit slug to keep it, send "" to derive it again from the name.
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.DepartmentRequest true "Department information"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Slug already in use"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	var req dto.DepartmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	department, err := c.departmentService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, department)
}

// DeleteDepartment deletes a department
// @Summary Delete a department
// @Description Deletes the department with its faculty members and exams.
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	if err := c.departmentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Department")
}

// ListFaculty lists the members of a department
// @Summary List faculty members
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=[]models.FacultyMember}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id}/faculty [get]
func (c *DepartmentController) ListFaculty(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	members, err := c.departmentService.ListFaculty(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, members)
}

// AddFacultyMember adds a member to a department
// @Summary Add a faculty member
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.FacultyMemberRequest true "Faculty member"
// @Success 201 {object} dto.APIResponse{data=models.FacultyMember}
// @Failure 422 {object} dto.ErrorResponse "Validation failed or department does not exist"
// @Router /departments/{id}/faculty [post]
func (c *DepartmentController) AddFacultyMember(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	var req dto.FacultyMemberRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	member, err := c.departmentService.AddFacultyMember(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, member)
}

// DeleteFacultyMember removes a member from a department
// @Summary Delete a faculty member
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param memberId path int true "Faculty member ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /departments/{id}/faculty/{memberId} [delete]
func (c *DepartmentController) DeleteFacultyMember(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	memberID, ok := apiID(ctx, "memberId")
	if !ok {
		return
	}
	if err := c.departmentService.DeleteFacultyMember(ctx, id, memberID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Faculty member")
}
