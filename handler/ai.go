package handler

import (
	"fmt"
	baseHttp "net/http"

	"github.com/DCSlucifer/quickblog-backend/handler/payload"
	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
	"github.com/DCSlucifer/quickblog-backend/pkg/gemini"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
)

type AIHandler struct {
	Client    *gemini.Client
	Validator *portal.Validator
}

func MakeAIHandler(client *gemini.Client, validator *portal.Validator) AIHandler {
	return AIHandler{
		Client:    client,
		Validator: validator,
	}
}

// Generate drafts a blog body for the given title through the model API.
func (h AIHandler) Generate(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	if !h.Client.Configured() {
		return &endpoint.ApiError{
			Message: "content generation is not configured",
			Status:  baseHttp.StatusServiceUnavailable,
		}
	}

	request, closer, err := endpoint.ParseRequestBody[payload.GenerateRequest](r)
	defer closer()

	if err != nil {
		return endpoint.LogBadRequestError("invalid generation payload", err)
	}

	if rejects, rulesErr := h.Validator.Rejects(request); rejects {
		return endpoint.ValidationError("invalid generation payload", portal.FieldErrorsAsData(rulesErr))
	}

	prompt := fmt.Sprintf(
		"Generate a blog post body in simple markdown for the title %q. Keep it friendly and informative.",
		request.Title,
	)

	content, err := h.Client.Generate(r.Context(), prompt)
	if err != nil {
		return endpoint.LogInternalError("could not generate content", err)
	}

	response := payload.GenerateResponse{
		Success: true,
		Content: content,
	}

	if err := endpoint.RespondOk(w, response); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}
