package dto

// ErrorResponse is the wire shape of every error. The body is exactly
// {"error": "<message>"}; the code only selects the HTTP status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// SuccessResponse is the minimal success acknowledgement
type SuccessResponse struct {
	Success bool `json:"success"`
}

// NewSuccessResponse creates a bare success acknowledgement
func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{Success: true}
}

// UserResponse is the public supplier shape returned by signup and login
type UserResponse struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
}

// AuthResponse wraps the public supplier shape
type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// DashboardResponse is the supplier workspace payload
type DashboardResponse struct {
	Products  []map[string]any `json:"products"`
	Rows      any              `json:"rows"`
	Locations any              `json:"locations"`
}

// CreateProductResponse acknowledges a new listing with its generated ID
type CreateProductResponse struct {
	Success bool  `json:"success"`
	NewID   int64 `json:"newId"`
}

// MarketplaceResponse wraps the public catalog
type MarketplaceResponse struct {
	Success bool             `json:"success"`
	Data    []map[string]any `json:"data"`
}
