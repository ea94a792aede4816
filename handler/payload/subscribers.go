package payload

import (
	"time"

	"github.com/DCSlucifer/quickblog-backend/database"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SubscriberResponse struct {
	UUID         string    `json:"id"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"isActive"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type SubscribersListResponse struct {
	Success     bool                 `json:"success"`
	Subscribers []SubscriberResponse `json:"subscribers"`
}

func GetSubscribersListResponse(subscribers []database.Subscriber) SubscribersListResponse {
	response := SubscribersListResponse{
		Success:     true,
		Subscribers: make([]SubscriberResponse, 0, len(subscribers)),
	}

	for _, subscriber := range subscribers {
		response.Subscribers = append(response.Subscribers, SubscriberResponse{
			UUID:         subscriber.UUID,
			Email:        subscriber.Email,
			IsActive:     subscriber.IsActive,
			SubscribedAt: subscriber.SubscribedAt,
		})
	}

	return response
}
