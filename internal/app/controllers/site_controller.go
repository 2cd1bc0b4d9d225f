package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/middleware"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
)

// SiteController serves the informational pages
type SiteController struct {
	siteService SiteService
}

// NewSiteController creates a new SiteController
func NewSiteController(siteService SiteService) *SiteController {
	return &SiteController{siteService: siteService}
}

// HomePage renders the landing page.
func (c *SiteController) HomePage(ctx *gin.Context) {
	page, err := c.siteService.Home(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "home.html", "Home", "home", gin.H{"Page": page})
}

// AboutPage renders the about page.
func (c *SiteController) AboutPage(ctx *gin.Context) {
	page, err := c.siteService.About(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "about.html", "About Us", "about", gin.H{"Page": page})
}

// FacilitiesPage renders the labs, the hostel and an empty visit form.
func (c *SiteController) FacilitiesPage(ctx *gin.Context) {
	c.renderFacilities(ctx, http.StatusOK, dto.VisitRequestForm{}, nil, ctx.Query("visit") == "1")
}

func (c *SiteController) renderFacilities(ctx *gin.Context, status int, form dto.VisitRequestForm, errs map[string]string, sent bool) {
	page, err := c.siteService.Facilities(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, status, "facilities.html", "Facilities", "facilities", gin.H{
		"Page":   page,
		"Form":   form,
		"Errors": errs,
		"Sent":   sent,
	})
}

// AdmissionPage renders the admission steps, fees and application form.
func (c *SiteController) AdmissionPage(ctx *gin.Context) {
	page, err := c.siteService.Admission(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "admission.html", "Admission", "admission", gin.H{"Page": page})
}

// GalleryPage renders every gallery picture.
func (c *SiteController) GalleryPage(ctx *gin.Context) {
	images, err := c.siteService.Gallery(ctx)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "gallery.html", "Gallery", "gallery", gin.H{"Images": images})
}

// GetSingleton returns the block that pages show for a single-row content kind
// @Summary Get content block
// @Description Resolves a single-row content block. data is null when nothing is stored.
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Block kind" Enums(principal_message, academic_excellence, hostel_intro, highlight_section, contact_information, application_download)
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown block kind"
// @Router /content/{kind} [get]
func (c *SiteController) GetSingleton(ctx *gin.Context) {
	kind := models.SingletonKind(ctx.Param("kind"))
	if _, ok := models.SingletonPolicies[kind]; !ok {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("unknown content block: "+string(kind)))
		return
	}
	block, err := c.siteService.Singleton(ctx, kind)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, block)
}

// contentKind reads the :kind path parameter of the content routes. Unknown
// kinds are a 404.
func contentKind(ctx *gin.Context) (models.ContentKind, bool) {
	kind := models.ContentKind(ctx.Param("kind"))
	if !kind.Valid() {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("unknown content kind: "+string(kind)))
		return "", false
	}
	return kind, true
}

// createContent binds the request of one content kind and stores it.
func createContent[R any, M any](ctx *gin.Context, create func(context.Context, R) (*M, error)) {
	var req R
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	row, err := create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, row)
}

// ListContent lists every stored row of a content kind
// @Summary List content rows
// @Description Lists all rows of a content kind in creation order, including rows a single-row block does not show.
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Content kind"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown content kind"
// @Router /content/{kind}/items [get]
func (c *SiteController) ListContent(ctx *gin.Context) {
	kind, ok := contentKind(ctx)
	if !ok {
		return
	}
	rows, err := c.siteService.ListContent(ctx, kind)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, rows)
}

// CreateContent adds a row of a content kind. The body is the request type of
// that kind, e.g. dto.TestimonialRequest for "testimonial".
// @Summary Create content block
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Content kind" Enums(principal_message, academic_excellence, testimonial, facility, hostel_intro, hostel_facility, admission_step, fee_structure, application_download, admission, philosophy_block, statistic, highlight_section, contact_information)
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 404 {object} dto.ErrorResponse "Unknown content kind"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /content/{kind} [post]
func (c *SiteController) CreateContent(ctx *gin.Context) {
	kind, ok := contentKind(ctx)
	if !ok {
		return
	}
	switch kind {
	case models.ContentPrincipalMessage:
		createContent(ctx, c.siteService.CreatePrincipalMessage)
	case models.ContentAcademicExcellence:
		createContent(ctx, c.siteService.CreateAcademicExcellence)
	case models.ContentTestimonial:
		createContent(ctx, c.siteService.CreateTestimonial)
	case models.ContentFacility:
		createContent(ctx, c.siteService.CreateFacility)
	case models.ContentHostelIntro:
		createContent(ctx, c.siteService.CreateHostelIntro)
	case models.ContentHostelFacility:
		createContent(ctx, c.siteService.CreateHostelFacility)
	case models.ContentAdmissionStep:
		createContent(ctx, c.siteService.CreateAdmissionStep)
	case models.ContentFeeStructure:
		createContent(ctx, c.siteService.CreateFeeStructure)
	case models.ContentApplicationDownload:
		createContent(ctx, c.siteService.CreateApplicationDownload)
	case models.ContentAdmission:
		createContent(ctx, c.siteService.CreateAdmission)
	case models.ContentPhilosophyBlock:
		createContent(ctx, c.siteService.CreatePhilosophyBlock)
	case models.ContentStatistic:
		createContent(ctx, c.siteService.CreateStatistic)
	case models.ContentHighlightSection:
		createContent(ctx, c.siteService.CreateHighlightSection)
	case models.ContentContactInformation:
		createContent(ctx, c.siteService.CreateContactInformation)
	}
}

// DeleteContent removes a row of a content kind
// @Summary Delete content block
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Content kind"
// @Param id path int true "Row ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Unknown kind or row"
// @Router /content/{kind}/{id} [delete]
func (c *SiteController) DeleteContent(ctx *gin.Context) {
	kind, ok := contentKind(ctx)
	if !ok {
		return
	}
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	if err := c.siteService.DeleteContent(ctx, kind, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Content block")
}

// ListGallery lists gallery pictures
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.GalleryImage}
// @Router /gallery [get]
func (c *SiteController) ListGallery(ctx *gin.Context) {
	images, err := c.siteService.Gallery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, images)
}

// AddGalleryImage adds a gallery picture
// @Summary Add gallery image
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GalleryImageRequest true "Image path returned by the upload endpoint"
// @Success 201 {object} dto.APIResponse{data=models.GalleryImage}
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /gallery [post]
func (c *SiteController) AddGalleryImage(ctx *gin.Context) {
	var req dto.GalleryImageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	image, err := c.siteService.AddGalleryImage(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, image)
}

// DeleteGalleryImage removes a gallery picture
// @Summary Delete gallery image
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Router /gallery/{id} [delete]
func (c *SiteController) DeleteGalleryImage(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	if err := c.siteService.DeleteGalleryImage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Gallery image")
}
