package handler

import (
	baseHttp "net/http"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/repository"
	"github.com/DCSlucifer/quickblog-backend/handler/payload"
	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
	"github.com/DCSlucifer/quickblog-backend/pkg/mailer"
	"github.com/DCSlucifer/quickblog-backend/pkg/middleware"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
)

type PostsHandler struct {
	Posts     *repository.Posts
	Users     *repository.Users
	Fanout    *mailer.Fanout
	Validator *portal.Validator
}

func MakePostsHandler(posts *repository.Posts, users *repository.Users, fanout *mailer.Fanout, validator *portal.Validator) PostsHandler {
	return PostsHandler{
		Posts:     posts,
		Users:     users,
		Fanout:    fanout,
		Validator: validator,
	}
}

// Index serves the public listing. Only published posts are visible here,
// whatever the rest of the filters say.
func (h PostsHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	filters, paginate := payload.GetListFiltersFrom(r)

	if seed := filters.GetCategory(); seed != "" {
		category := payload.NormaliseCategory(seed)

		if !database.IsValidCategory(category) {
			return endpoint.BadRequestError("unknown category: " + seed)
		}

		filters.Category = category
	}

	published := true
	filters.Published = &published

	page, err := h.Posts.GetPosts(&filters, paginate)
	if err != nil {
		return endpoint.LogInternalError("could not list blogs", err)
	}

	if err := endpoint.RespondOk(w, payload.GetBlogsListResponse(page)); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

// AdminIndex serves the back-office listing: drafts included, optional
// status narrowing, same pagination contract as the public side.
func (h PostsHandler) AdminIndex(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	filters, paginate := payload.GetListFiltersFrom(r)

	if seed := filters.GetCategory(); seed != "" {
		category := payload.NormaliseCategory(seed)

		if !database.IsValidCategory(category) {
			return endpoint.BadRequestError("unknown category: " + seed)
		}

		filters.Category = category
	}

	switch r.URL.Query().Get("status") {
	case "published":
		published := true
		filters.Published = &published
	case "draft":
		draft := false
		filters.Published = &draft
	}

	page, err := h.Posts.GetPosts(&filters, paginate)
	if err != nil {
		return endpoint.LogInternalError("could not list blogs", err)
	}

	if err := endpoint.RespondOk(w, payload.GetBlogsListResponse(page)); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

func (h PostsHandler) Show(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	post := h.Posts.FindBy(payload.GetUUIDFrom(r, "uuid"))

	if post == nil || !post.IsPublished {
		return endpoint.NotFound("blog not found")
	}

	response := payload.BlogShowResponse{
		Success: true,
		Blog:    payload.GetBlogResponse(*post),
	}

	if err := endpoint.RespondOk(w, response); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

func (h PostsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	request, attrs, apiErr := h.parseBlogRequest(r)
	if apiErr != nil {
		return apiErr
	}

	if claims, ok := middleware.GetJWTClaims(r.Context()); ok {
		if author := h.Users.FindByUUID(claims.UserUUID); author != nil {
			attrs.AuthorID = &author.ID
		}
	}

	post, err := h.Posts.Create(attrs)
	if err != nil {
		return endpoint.LogInternalError("could not create the blog", err)
	}

	if request.IsPublished {
		h.Fanout.Dispatch(post, false)
	}

	if err := endpoint.Respond(w, baseHttp.StatusCreated, payload.OkMessage("Blog added successfully")); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

func (h PostsHandler) Update(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	post := h.Posts.FindBy(payload.GetUUIDFrom(r, "uuid"))
	if post == nil {
		return endpoint.NotFound("blog not found")
	}

	_, attrs, apiErr := h.parseBlogRequest(r)
	if apiErr != nil {
		return apiErr
	}

	wasPublished := post.IsPublished

	post, err := h.Posts.Update(post, attrs)
	if err != nil {
		return endpoint.LogInternalError("could not update the blog", err)
	}

	if post.IsPublished {
		h.Fanout.Dispatch(post, wasPublished)
	}

	if err := endpoint.RespondOk(w, payload.OkMessage("Blog updated successfully")); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

func (h PostsHandler) Delete(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	post := h.Posts.FindBy(payload.GetUUIDFrom(r, "uuid"))
	if post == nil {
		return endpoint.NotFound("blog not found")
	}

	if err := h.Posts.Delete(post); err != nil {
		return endpoint.LogInternalError("could not delete the blog", err)
	}

	if err := endpoint.RespondOk(w, payload.OkMessage("Blog deleted successfully")); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

func (h PostsHandler) TogglePublish(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	post := h.Posts.FindBy(payload.GetUUIDFrom(r, "uuid"))
	if post == nil {
		return endpoint.NotFound("blog not found")
	}

	published, err := h.Posts.TogglePublish(post)
	if err != nil {
		return endpoint.LogInternalError("could not update the blog status", err)
	}

	if published {
		h.Fanout.Dispatch(post, false)
	}

	if err := endpoint.RespondOk(w, payload.OkMessage("Blog status updated")); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}

func (h PostsHandler) parseBlogRequest(r *baseHttp.Request) (payload.BlogStoreRequest, database.PostAttrs, *endpoint.ApiError) {
	request, closer, err := endpoint.ParseRequestBody[payload.BlogStoreRequest](r)
	defer closer()

	if err != nil {
		return request, database.PostAttrs{}, endpoint.LogBadRequestError("invalid blog payload", err)
	}

	if rejects, rulesErr := h.Validator.Rejects(request); rejects {
		return request, database.PostAttrs{}, endpoint.ValidationError("invalid blog payload", portal.FieldErrorsAsData(rulesErr))
	}

	category := payload.NormaliseCategory(request.Category)
	if !database.IsValidCategory(category) {
		return request, database.PostAttrs{}, endpoint.ValidationError(
			"unknown category: "+request.Category,
			map[string]any{"category": "must be one of Technology, Startup, Lifestyle, Finance"},
		)
	}

	attrs := database.PostAttrs{
		Title:         request.Title,
		Subtitle:      request.Subtitle,
		Content:       request.Description,
		Category:      category,
		CoverImageURL: request.Image,
		IsPublished:   request.IsPublished,
		Tags:          request.Tags,
	}

	return request, attrs, nil
}
