package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/label-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeUnprocessable indicates the input was well-formed but failed
	// schema resolution.
	ErrCodeUnprocessable = "unprocessable_input"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// LabelPreviewResponse is the JSON rendition of an assembled document:
// the flat card sequence, the dine-in summary, and how many pages the
// PDF would contain.
//
// @Description Computed label sequence and dine-in summary for an order table
type LabelPreviewResponse struct {
	// Cards is the ordered label card sequence, pack summary last
	Cards []model.LabelCard `json:"cards"`
	// DineInSummary lists customers with positive dine-in counts
	DineInSummary []model.DineInSummaryEntry `json:"dine_in_summary"`
	// LabelPages is the number of label grid pages
	LabelPages int `json:"label_pages" example:"2"`
	// TotalPages includes the trailing summary page
	TotalPages int `json:"total_pages" example:"3"`
} // @name LabelPreviewResponse

// NewLabelPreviewResponse flattens a document into its preview form.
func NewLabelPreviewResponse(doc *model.Document) LabelPreviewResponse {
	var cards []model.LabelCard
	for _, page := range doc.LabelPages {
		for _, cell := range page.Cells {
			cards = append(cards, cell.Card)
		}
	}
	if cards == nil {
		cards = []model.LabelCard{}
	}
	summary := doc.Summary
	if summary == nil {
		summary = []model.DineInSummaryEntry{}
	}
	return LabelPreviewResponse{
		Cards:         cards,
		DineInSummary: summary,
		LabelPages:    len(doc.LabelPages),
		TotalPages:    doc.PageCount(),
	}
}

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"missing required columns: dine_in"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusUnprocessableEntity:
		return ErrCodeUnprocessable
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
