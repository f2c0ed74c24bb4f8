package common

// SuccessResponse is the envelope of every successful response
type SuccessResponse struct {
	Code    int         `json:"code" example:"200"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope of every error response
type ErrorResponse struct {
	Code    interface{} `json:"code,omitempty" swaggertype:"integer" example:"3000"`
	Message string      `json:"message,omitempty" example:"Meeting not found"`
	Info    string      `json:"info,omitempty"`
}

// MessageResponse carries a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
