package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/middleware"
)

// ExamController handles exams, results and examination rules
type ExamController struct {
	examService ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// ExaminationPage renders the schedule, results and rules.
func (c *ExamController) ExaminationPage(ctx *gin.Context) {
	overview, err := c.examService.Overview(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "examination.html", "Examination", "examination", gin.H{"Overview": overview})
}

// ListExams lists scheduled exams
// @Summary List exams
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Exam}
// @Router /exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	exams, err := c.examService.ListExams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, exams)
}

// CreateExam schedules an exam
// @Summary Create exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ExamRequest true "Exam"
// @Success 201 {object} dto.APIResponse{data=models.Exam}
// @Failure 422 {object} dto.ErrorResponse "Validation failed or unknown department"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	exam, err := c.examService.CreateExam(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, exam)
}

// DeleteExam deletes an exam and its results
// @Summary Delete exam
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	if err := c.examService.DeleteExam(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Exam")
}

// ListResults lists published exam results
// @Summary List exam results
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ExamResult}
// @Router /exam-results [get]
func (c *ExamController) ListResults(ctx *gin.Context) {
	results, err := c.examService.ListResults(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, results)
}

// CreateResult publishes result information for an exam
// @Summary Create exam result
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ExamResultRequest true "Exam result"
// @Success 201 {object} dto.APIResponse{data=models.ExamResult}
// @Failure 422 {object} dto.ErrorResponse "Validation failed or unknown exam"
// @Router /exam-results [post]
func (c *ExamController) CreateResult(ctx *gin.Context) {
	var req dto.ExamResultRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	result, err := c.examService.CreateResult(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, result)
}

// DeleteResult deletes an exam result
// @Summary Delete exam result
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Result ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /exam-results/{id} [delete]
func (c *ExamController) DeleteResult(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	if err := c.examService.DeleteResult(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Exam result")
}

// ListRules lists examination rules, hidden ones included
// @Summary List examination rules
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Rule}
// @Router /exam-rules [get]
func (c *ExamController) ListRules(ctx *gin.Context) {
	rules, err := c.examService.ListRules(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, rules)
}

// CreateRule adds an examination rule
// @Summary Create examination rule
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RuleRequest true "Rule"
// @Success 201 {object} dto.APIResponse{data=models.Rule}
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /exam-rules [post]
func (c *ExamController) CreateRule(ctx *gin.Context) {
	var req dto.RuleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	rule, err := c.examService.CreateRule(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, rule)
}

// DeleteRule deletes an examination rule
// @Summary Delete examination rule
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rule ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Rule not found"
// @Router /exam-rules/{id} [delete]
func (c *ExamController) DeleteRule(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	if err := c.examService.DeleteRule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Rule")
}
