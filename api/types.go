package api

import "github.com/kaushalendrasingh/portfolio-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	profileHandler profileHandler
	inquiryHandler inquiryHandler
}

// InquiryListResponse is the paginated inquiry listing payload.
type InquiryListResponse struct {
	Items      []models.Inquiry `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int64            `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}
