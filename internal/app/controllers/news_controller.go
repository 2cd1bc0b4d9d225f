package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/app/services"
	"github.com/yigit/sitehub/internal/middleware"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

// Number of other articles listed beside a news article.
const sidebarNewsCount = 5

// NewsController handles news articles
type NewsController struct {
	newsService NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

// ListPage renders every article, latest first.
func (c *NewsController) ListPage(ctx *gin.Context) {
	news, err := c.newsService.List(ctx, services.DefaultNewsOrder)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "news.html", "News", "news", gin.H{"News": news})
}

// DetailPage renders one article by slug.
func (c *NewsController) DetailPage(ctx *gin.Context) {
	article, err := c.newsService.GetBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	latest, err := c.newsService.Latest(ctx, sidebarNewsCount)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "news_detail.html", article.Title, "news", gin.H{"Article": article, "Latest": latest})
}

// ListNews lists news articles
// @Summary List news
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Sort field, prefix with - for descending (date, title, id)" default(-date)
// @Success 200 {object} dto.APIResponse{data=[]models.News}
// @Router /news [get]
func (c *NewsController) ListNews(ctx *gin.Context) {
	news, err := c.newsService.List(ctx, helpers.ParseSortParam(ctx, services.DefaultNewsOrder))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, news)
}

// GetNews retrieves a news article by ID
// @Summary Get news by ID
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse{data=models.News}
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [get]
func (c *NewsController) GetNews(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	news, err := c.newsService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, news)
}

// CreateNews publishes an article
// @Summary Create news
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NewsRequest true "News article"
// @Success 201 {object} dto.APIResponse{data=models.News}
// @Failure 409 {object} dto.ErrorResponse "Slug already in use"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	var req dto.NewsRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	news, err := c.newsService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, news)
}

// UpdateNews updates an article
// @Summary Update news
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Param request body dto.NewsRequest true "News article"
// @Success 200 {object} dto.APIResponse{data=models.News}
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Failure 409 {object} dto.ErrorResponse "Slug already in use"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /news/{id} [put]
func (c *NewsController) UpdateNews(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	var req dto.NewsRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	news, err := c.newsService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, news)
}

// DeleteNews deletes an article
// @Summary Delete news
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "News not found"
// @Router /news/{id} [delete]
func (c *NewsController) DeleteNews(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	if err := c.newsService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "News")
}
