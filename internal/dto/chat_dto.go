package dto

type ChatRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Question string `json:"question" validate:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
