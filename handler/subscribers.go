package handler

import (
	baseHttp "net/http"

	"github.com/DCSlucifer/quickblog-backend/database/repository"
	"github.com/DCSlucifer/quickblog-backend/handler/payload"
	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
	"github.com/DCSlucifer/quickblog-backend/pkg/mailer"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
)

type SubscribersHandler struct {
	Subscribers *repository.Subscribers
	Fanout      *mailer.Fanout
	Validator   *portal.Validator
}

func MakeSubscribersHandler(subscribers *repository.Subscribers, fanout *mailer.Fanout, validator *portal.Validator) SubscribersHandler {
	return SubscribersHandler{
		Subscribers: subscribers,
		Fanout:      fanout,
		Validator:   validator,
	}
}

// Subscribe registers an address, reviving it when it unsubscribed before.
// Subscribing twice is not an error.
func (h SubscribersHandler) Subscribe(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	request, closer, err := endpoint.ParseRequestBody[payload.SubscribeRequest](r)
	defer closer()

	if err != nil {
		return endpoint.LogBadRequestError("invalid subscription payload", err)
	}

	if rejects, rulesErr := h.Validator.Rejects(request); rejects {
		return endpoint.ValidationError("invalid subscription payload", portal.FieldErrorsAsData(rulesErr))
	}

	subscriber, status, err := h.Subscribers.Subscribe(request.Email)
	if err != nil {
		return endpoint.LogInternalError("could not subscribe", err)
	}

	message := "Subscription successful"

	switch status {
	case repository.SubscribeCreated:
		h.Fanout.SendWelcome(subscriber.Email)
	case repository.SubscribeReactivated:
		message = "Subscription reactivated"
	case repository.SubscribeAlreadyActive:
		message = "You are already subscribed"
	}

	if err := endpoint.RespondOk(w, payload.OkMessage(message)); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

func (h SubscribersHandler) Unsubscribe(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	request, closer, err := endpoint.ParseRequestBody[payload.SubscribeRequest](r)
	defer closer()

	if err != nil {
		return endpoint.LogBadRequestError("invalid subscription payload", err)
	}

	if rejects, rulesErr := h.Validator.Rejects(request); rejects {
		return endpoint.ValidationError("invalid subscription payload", portal.FieldErrorsAsData(rulesErr))
	}

	found, err := h.Subscribers.Unsubscribe(request.Email)
	if err != nil {
		return endpoint.LogInternalError("could not unsubscribe", err)
	}

	if !found {
		return endpoint.NotFound("this email is not subscribed")
	}

	if err := endpoint.RespondOk(w, payload.OkMessage("Unsubscribed successfully")); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

// Index lists subscribers for the back office. The active query parameter
// narrows on status; anything else lists everyone.
func (h SubscribersHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	var active *bool

	switch r.URL.Query().Get("active") {
	case "true":
		yes := true
		active = &yes
	case "false":
		no := false
		active = &no
	}

	subscribers, err := h.Subscribers.All(active)
	if err != nil {
		return endpoint.LogInternalError("could not list subscribers", err)
	}

	if err := endpoint.RespondOk(w, payload.GetSubscribersListResponse(subscribers)); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

func (h SubscribersHandler) Delete(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	found, err := h.Subscribers.Delete(payload.GetUUIDFrom(r, "uuid"))
	if err != nil {
		return endpoint.LogInternalError("could not delete the subscriber", err)
	}

	if !found {
		return endpoint.NotFound("subscriber not found")
	}

	if err := endpoint.RespondOk(w, payload.OkMessage("Subscriber deleted successfully")); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}
