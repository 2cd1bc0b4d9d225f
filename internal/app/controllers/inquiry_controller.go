package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/middleware"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

// InquiryController handles the visitor forms: contact, campus visit and
// online application. A valid submission redirects; an invalid one re-renders
// the page with the entered values and the field errors.
type InquiryController struct {
	inquiryService InquiryService
	site           *SiteController
	siteService    SiteService
	applyRedirect  string
}

// NewInquiryController creates a new InquiryController. Accepted online
// applications are redirected to applyRedirect.
func NewInquiryController(inquiryService InquiryService, siteService SiteService, applyRedirect string) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
		site:           NewSiteController(siteService),
		siteService:    siteService,
		applyRedirect:  applyRedirect,
	}
}

// ContactPage renders the contact details and an empty form.
func (c *InquiryController) ContactPage(ctx *gin.Context) {
	c.renderContact(ctx, http.StatusOK, dto.ContactForm{}, nil, ctx.Query("sent") == "1")
}

func (c *InquiryController) renderContact(ctx *gin.Context, status int, form dto.ContactForm, errs map[string]string, sent bool) {
	info, err := c.siteService.ContactInformation(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, status, "contact.html", "Contact Us", "contact", gin.H{
		"Contact": info,
		"Form":    form,
		"Errors":  errs,
		"Sent":    sent,
	})
}

// SubmitContact stores a contact message.
func (c *InquiryController) SubmitContact(ctx *gin.Context) {
	var form dto.ContactForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	if _, err := c.inquiryService.SubmitContact(ctx, form); err != nil {
		if errs, ok := formErrors(err); ok {
			c.renderContact(ctx, http.StatusUnprocessableEntity, form, errs, false)
			return
		}
		middleware.HandlePageError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/contact/?sent=1")
}

// SubmitVisitRequest stores a campus visit request sent from the facilities
// page.
func (c *InquiryController) SubmitVisitRequest(ctx *gin.Context) {
	var form dto.VisitRequestForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	if _, err := c.inquiryService.SubmitVisitRequest(ctx, form); err != nil {
		if errs, ok := formErrors(err); ok {
			c.site.renderFacilities(ctx, http.StatusUnprocessableEntity, form, errs, false)
			return
		}
		middleware.HandlePageError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/facilities/?visit=1")
}

// ApplyOnlinePage renders an empty application form.
func (c *InquiryController) ApplyOnlinePage(ctx *gin.Context) {
	renderApplication(ctx, http.StatusOK, dto.OnlineApplicationForm{}, nil)
}

func renderApplication(ctx *gin.Context, status int, form dto.OnlineApplicationForm, errs map[string]string) {
	render(ctx, status, "apply_online.html", "Apply Online", "admission", gin.H{
		"Form":     form,
		"Errors":   errs,
		"Programs": models.Programs,
	})
}

// SubmitApplication stores an online application and sends the applicant on
// to the admission portal.
func (c *InquiryController) SubmitApplication(ctx *gin.Context) {
	var form dto.OnlineApplicationForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	if _, err := c.inquiryService.SubmitApplication(ctx, form); err != nil {
		if errs, ok := formErrors(err); ok {
			renderApplication(ctx, http.StatusUnprocessableEntity, form, errs)
			return
		}
		middleware.HandlePageError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, c.applyRedirect)
}

// ListContactMessages lists received contact messages
// @Summary List contact messages
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.ContactMessage}
// @Router /inquiries/contact [get]
func (c *InquiryController) ListContactMessages(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	messages, total, err := c.inquiryService.ListContactMessages(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	paginated(ctx, messages, total, page, size)
}

// ListVisitRequests lists campus visit requests
// @Summary List visit requests
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.VisitRequest}
// @Router /inquiries/visits [get]
func (c *InquiryController) ListVisitRequests(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	requests, total, err := c.inquiryService.ListVisitRequests(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	paginated(ctx, requests, total, page, size)
}

// ListApplications lists online applications
// @Summary List online applications
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.OnlineApplication}
// @Router /inquiries/applications [get]
func (c *InquiryController) ListApplications(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	applications, total, err := c.inquiryService.ListApplications(ctx, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	paginated(ctx, applications, total, page, size)
}
