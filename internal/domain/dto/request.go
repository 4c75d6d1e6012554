// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// PreviewLabelsRequest represents the JSON request body for the label
// preview endpoint. Each row is an arbitrary header-to-value mapping, the
// same shape the spreadsheet parser produces; header aliases are resolved
// server-side.
//
// @Description Request to preview the label card sequence for a set of order rows
// @Example {"rows": [{"Name": "Alice", "Carry-Out": "3", "Dine In": "2"}]}
type PreviewLabelsRequest struct {
	// Rows is the order table, one map per spreadsheet row.
	Rows []map[string]string `json:"rows" binding:"required,min=1"`
} // @name PreviewLabelsRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrNoRows is returned when the request carries no order rows.
	ErrNoRows = &ValidationError{
		Field:   "rows",
		Message: "at least one order row is required",
	}
)

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *PreviewLabelsRequest) Validate() error {
	if len(r.Rows) == 0 {
		return ErrNoRows
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
