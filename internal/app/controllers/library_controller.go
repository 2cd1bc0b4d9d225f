package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/middleware"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

// LibraryController handles the library catalog
type LibraryController struct {
	libraryService LibraryService
}

// NewLibraryController creates a new LibraryController
func NewLibraryController(libraryService LibraryService) *LibraryController {
	return &LibraryController{libraryService: libraryService}
}

// BrowsePage renders one page of the catalog. Query parameters: search,
// category and page.
func (c *LibraryController) BrowsePage(ctx *gin.Context) {
	library, err := c.libraryService.Browse(ctx,
		strings.TrimSpace(ctx.Query("search")),
		strings.TrimSpace(ctx.Query("category")),
		helpers.ParsePage(ctx),
	)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "library.html", "Library", "library", gin.H{"Library": library})
}

// BookPage renders one book.
func (c *LibraryController) BookPage(ctx *gin.Context) {
	id, ok := pageID(ctx, "id")
	if !ok {
		return
	}
	book, err := c.libraryService.GetBook(ctx, id)
	if err != nil {
		middleware.HandlePageError(ctx, err)
		return
	}
	render(ctx, http.StatusOK, "book_detail.html", book.Title, "library", gin.H{"Book": book})
}

// BrowseBooks returns one page of the catalog
// @Summary Browse library books
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive title substring"
// @Param category query string false "Exact category value"
// @Param page query int false "Page number, clamped to the available pages" default(1)
// @Success 200 {object} dto.APIResponse{data=services.LibraryPage}
// @Router /library/books [get]
func (c *LibraryController) BrowseBooks(ctx *gin.Context) {
	library, err := c.libraryService.Browse(ctx,
		strings.TrimSpace(ctx.Query("search")),
		strings.TrimSpace(ctx.Query("category")),
		helpers.ParsePage(ctx),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, library)
}

// GetBook retrieves a book by ID
// @Summary Get book by ID
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} dto.APIResponse{data=models.LibraryBook}
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Router /library/books/{id} [get]
func (c *LibraryController) GetBook(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	book, err := c.libraryService.GetBook(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusOK, book)
}

// CreateBook adds a book to the catalog
// @Summary Create book
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookRequest true "Book"
// @Success 201 {object} dto.APIResponse{data=models.LibraryBook}
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /library/books [post]
func (c *LibraryController) CreateBook(ctx *gin.Context) {
	var req dto.BookRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	book, err := c.libraryService.CreateBook(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, book)
}

// DeleteBook removes a book
// @Summary Delete book
// @Tags library
// @Produce json
// @Security BearerAuth
// @Param id path int true "Book ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Router /library/books/{id} [delete]
func (c *LibraryController) DeleteBook(ctx *gin.Context) {
	id, ok := apiID(ctx, "id")
	if !ok {
		return
	}
	if err := c.libraryService.DeleteBook(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Book")
}
