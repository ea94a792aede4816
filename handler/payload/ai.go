package payload

type GenerateRequest struct {
	Title string `json:"title" validate:"required,min=3,max=200"`
}

type GenerateResponse struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
}
