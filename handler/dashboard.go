package handler

import (
	baseHttp "net/http"

	"github.com/DCSlucifer/quickblog-backend/database/repository"
	"github.com/DCSlucifer/quickblog-backend/handler/payload"
	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
)

const recentBlogsLimit = 5

type DashboardHandler struct {
	Posts    *repository.Posts
	Comments *repository.Comments
}

func MakeDashboardHandler(posts *repository.Posts, comments *repository.Comments) DashboardHandler {
	return DashboardHandler{
		Posts:    posts,
		Comments: comments,
	}
}

// Show aggregates the back-office overview: totals plus the latest posts.
func (h DashboardHandler) Show(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	blogs, err := h.Posts.Count()
	if err != nil {
		return endpoint.LogInternalError("could not count blogs", err)
	}

	comments, err := h.Comments.Count()
	if err != nil {
		return endpoint.LogInternalError("could not count comments", err)
	}

	drafts, err := h.Posts.CountDrafts()
	if err != nil {
		return endpoint.LogInternalError("could not count drafts", err)
	}

	recent, err := h.Posts.Recent(recentBlogsLimit)
	if err != nil {
		return endpoint.LogInternalError("could not fetch recent blogs", err)
	}

	data := payload.DashboardData{
		Blogs:       blogs,
		Comments:    comments,
		Drafts:      drafts,
		RecentBlogs: make([]payload.BlogResponse, 0, len(recent)),
	}

	for _, post := range recent {
		data.RecentBlogs = append(data.RecentBlogs, payload.GetBlogResponse(post))
	}

	response := payload.DashboardResponse{
		Success:   true,
		Dashboard: data,
	}

	if err := endpoint.RespondOk(w, response); err != nil {
		return endpoint.InternalError(err.Error())
	}

	return nil
}
