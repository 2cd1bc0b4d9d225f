package dto

import "time"

// APIResponse is the envelope of every admin API response.
type APIResponse struct {
	Success    bool            `json:"success" example:"true"`
	Data       interface{}     `json:"data,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Timestamp  time.Time       `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse wraps data in a successful envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data, Timestamp: time.Now()}
}

// PaginationInfo describes one page of a listing.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"25"`
	HasNext     bool  `json:"hasNext" example:"true"`
	HasPrevious bool  `json:"hasPrevious" example:"false"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// UploadResponse is returned after a file has been stored.
type UploadResponse struct {
	Path string `json:"path" example:"news/2f1c3d.jpg"`
	URL  string `json:"url" example:"/media/news/2f1c3d.jpg"`
}
