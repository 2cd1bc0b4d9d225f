package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(err error) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/api/v1/thing", func(c *gin.Context) { HandleAPIError(c, err) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/thing", nil))
	return w
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"not found", apperrors.NewResourceNotFoundError("department not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"validation", apperrors.FieldError("name", "This field is required."), http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed},
		{"reference", apperrors.NewReferenceNotFoundError("departmentId", "department does not exist"), http.StatusUnprocessableEntity, dto.ErrorCodeReferenceNotFound},
		{"duplicate slug", &apperrors.CustomError{Err: apperrors.ErrResourceAlreadyExists, Message: "slug taken"}, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"slug retry exhausted", fmt.Errorf("creating: %w", apperrors.ErrSlugUnavailable), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"bad request", apperrors.NewBadRequestError("bad id"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveError(tt.err)
			assert.Equal(t, tt.status, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_FieldDetails(t *testing.T) {
	w := serveError(apperrors.NewValidationError(map[string]string{"email": "bad", "phone": "missing"}))

	var resp struct {
		Error struct {
			Message string            `json:"message"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Validation failed", resp.Error.Message)
	assert.Equal(t, map[string]string{"email": "bad", "phone": "missing"}, resp.Error.Details)
}

func pageRouter() *gin.Engine {
	r := gin.New()
	tmpl := template.Must(template.New(NotFoundTemplate).Parse("missing: {{.Title}}"))
	template.Must(tmpl.New(ServerErrorTemplate).Parse("broken: {{.Title}}"))
	r.SetHTMLTemplate(tmpl)
	r.NoRoute(NotFoundPage)
	return r
}

func TestHandlePageError(t *testing.T) {
	r := pageRouter()
	r.GET("/news/:slug/", func(c *gin.Context) {
		HandlePageError(c, fmt.Errorf("loading: %w", apperrors.NewResourceNotFoundError("news not found")))
	})
	r.GET("/boom/", func(c *gin.Context) { HandlePageError(c, errors.New("db down")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/news/nope/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "missing")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "broken")
}

func TestNotFoundPage(t *testing.T) {
	r := pageRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "missing")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour, TokenIssuer: "sitehub"})
	m := NewAuthMiddleware(jwtService)

	r := gin.New()
	r.GET("/api/v1/admin", m.JWTAuth(), m.RoleRequired(auth.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextEmail))
	})

	token, _, err := jwtService.GenerateAccessToken("admin@gcms.edu.pk")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "admin@gcms.edu.pk", w.Body.String())
			}
		})
	}
}

func TestRoleRequired_WithoutAuth(t *testing.T) {
	m := NewAuthMiddleware(nil)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { c.Set(ContextRole, "EDITOR") }, m.RoleRequired(auth.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/departments/", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/departments/?page=2", nil))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "/departments/?page=2", line["path"])
	assert.Equal(t, float64(http.StatusTeapot), line["status"])
}

func TestBindJSON(t *testing.T) {
	r := gin.New()
	r.POST("/api/v1/x", func(c *gin.Context) {
		var body struct {
			Name string `json:"name"`
		}
		if !BindJSON(c, &body) {
			return
		}
		c.String(http.StatusOK, body.Name)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/x", bytes.NewBufferString("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "Invalid request format", resp.Error.Message)
	assert.Equal(t, dto.ErrorSeverityError, resp.Error.Severity)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/x", bytes.NewBufferString(`{"name":"ok"}`)))
	assert.Equal(t, "ok", w.Body.String())
}

func TestBindJSON_BindingTagsReportFields(t *testing.T) {
	r := gin.New()
	r.POST("/api/v1/x", func(c *gin.Context) {
		var body struct {
			Name string `json:"name" binding:"required"`
		}
		if !BindJSON(c, &body) {
			return
		}
		c.String(http.StatusOK, body.Name)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/x", bytes.NewBufferString(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error struct {
			Message string            `json:"message"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request format", resp.Error.Message)
	assert.Contains(t, resp.Error.Details, "Name")
}
