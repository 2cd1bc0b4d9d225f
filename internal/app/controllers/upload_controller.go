package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/middleware"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/filestorage"
)

// MaxUploadSize is the largest accepted upload.
const MaxUploadSize = 10 << 20

// Folders that uploads may be stored under, one per kind of content.
var uploadFolders = map[string]bool{
	"departments": true,
	"faculty":     true,
	"news":        true,
	"courses":     true,
	"events":      true,
	"library":     true,
	"gallery":     true,
	"exams":       true,
	"admission":   true,
	"site":        true,
}

var uploadExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".pdf": true,
}

// UploadController stores images and documents for the content API
type UploadController struct {
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.FileStorage, logger zerolog.Logger) *UploadController {
	return &UploadController{storage: storage, logger: logger}
}

// Upload stores a file and returns the path to put in an image or file field
// @Summary Upload a file
// @Description Stores an image or PDF under the given folder. The returned path goes into the image or file field of the content it belongs to.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image or PDF"
// @Param folder formData string true "Target folder" Enums(departments, faculty, news, courses, events, library, gallery, exams, admission, site)
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing file, bad folder or unsupported type"
// @Router /uploads [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	folder := strings.TrimSpace(ctx.PostForm("folder"))
	if !uploadFolders[folder] {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("unknown upload folder: "+folder))
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("file is required"))
		return
	}
	if file.Size > MaxUploadSize {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("file exceeds the 10 MB limit"))
		return
	}
	if !uploadExtensions[strings.ToLower(filepath.Ext(file.Filename))] {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("unsupported file type"))
		return
	}

	path, err := c.storage.SaveFileWithPath(file, folder)
	if err != nil {
		if errors.Is(err, filestorage.ErrInvalidPath) {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(err.Error()))
			return
		}
		c.logger.Error().Err(err).Str("folder", folder).Msg("Upload failed")
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, dto.UploadResponse{Path: path, URL: c.storage.URL(path)})
}
