package dto

import "time"

// ErrorResponse is the standard JSON error envelope returned by every endpoint.
//
// Fields:
//   - Message: human readable summary of what failed.
//   - ErrorDetails: underlying error text, omitted when there is none.
//   - Timestamp: UTC time the response was built.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to load stock data"`
	ErrorDetails string    `json:"error,omitempty" example:"snapshot not found"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can be passed around as one.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse, copying err's text into ErrorDetails when err is non-nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
