package handler

import (
	baseHttp "net/http"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/repository"
	"github.com/DCSlucifer/quickblog-backend/handler/payload"
	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
)

type CommentsHandler struct {
	Comments  *repository.Comments
	Posts     *repository.Posts
	Validator *portal.Validator
}

func MakeCommentsHandler(comments *repository.Comments, posts *repository.Posts, validator *portal.Validator) CommentsHandler {
	return CommentsHandler{
		Comments:  comments,
		Posts:     posts,
		Validator: validator,
	}
}

// Store accepts a public comment. It lands unapproved and stays invisible
// until a moderator lets it through.
func (h CommentsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	post := h.Posts.FindBy(payload.GetUUIDFrom(r, "uuid"))
	if post == nil || !post.IsPublished {
		return endpoint.NotFound("blog not found")
	}

	request, closer, err := endpoint.ParseRequestBody[payload.CommentStoreRequest](r)
	defer closer()

	if err != nil {
		return endpoint.LogBadRequestError("invalid comment payload", err)
	}

	if rejects, rulesErr := h.Validator.Rejects(request); rejects {
		return endpoint.ValidationError("invalid comment payload", portal.FieldErrorsAsData(rulesErr))
	}

	attrs := database.CommentAttrs{
		PostID:  post.ID,
		Name:    request.Name,
		Email:   request.Email,
		Content: request.Content,
	}

	if _, err := h.Comments.Create(attrs); err != nil {
		return endpoint.LogInternalError("could not save the comment", err)
	}

	if err := endpoint.Respond(w, baseHttp.StatusCreated, payload.OkMessage("Comment added for review")); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

// Index lists the approved comments of a published post, newest first.
func (h CommentsHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	post := h.Posts.FindBy(payload.GetUUIDFrom(r, "uuid"))
	if post == nil || !post.IsPublished {
		return endpoint.NotFound("blog not found")
	}

	comments, err := h.Comments.ApprovedFor(post.ID)
	if err != nil {
		return endpoint.LogInternalError("could not list comments", err)
	}

	if err := endpoint.RespondOk(w, payload.GetCommentsListResponse(comments)); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

// Search serves the moderation queue with optional status, blog and
// date-range filters.
func (h CommentsHandler) Search(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	attrs, err := payload.GetCommentSearchAttrsFrom(r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid date filter, expected YYYY-MM-DD", err)
	}

	rows, err := h.Comments.Search(attrs)
	if err != nil {
		return endpoint.LogInternalError("could not search comments", err)
	}

	if err := endpoint.RespondOk(w, payload.GetAdminCommentsListResponse(rows)); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

func (h CommentsHandler) Approve(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	comment := h.Comments.FindBy(payload.GetUUIDFrom(r, "uuid"))
	if comment == nil {
		return endpoint.NotFound("comment not found")
	}

	if err := h.Comments.Approve(comment); err != nil {
		return endpoint.LogInternalError("could not approve the comment", err)
	}

	if err := endpoint.RespondOk(w, payload.OkMessage("Comment approved successfully")); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

func (h CommentsHandler) Delete(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	comment := h.Comments.FindBy(payload.GetUUIDFrom(r, "uuid"))
	if comment == nil {
		return endpoint.NotFound("comment not found")
	}

	if err := h.Comments.Delete(comment); err != nil {
		return endpoint.LogInternalError("could not delete the comment", err)
	}

	if err := endpoint.RespondOk(w, payload.OkMessage("Comment deleted successfully")); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}
