package serverutils

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ApiErrorResponse struct {
	Success   bool   `json:"success"`
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

func SuccessResponse(message string, data interface{}) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(errorType, message string) ApiErrorResponse {
	return ApiErrorResponse{
		Success:   false,
		ErrorType: errorType,
		Message:   message,
	}
}
