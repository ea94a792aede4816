package payload

// MessageResponse is the envelope every mutation returns.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func OkMessage(message string) MessageResponse {
	return MessageResponse{Success: true, Message: message}
}
