package kernel

import (
	baseHttp "net/http"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/repository"
	"github.com/DCSlucifer/quickblog-backend/handler"
	"github.com/DCSlucifer/quickblog-backend/metal/env"
	"github.com/DCSlucifer/quickblog-backend/pkg/auth"
	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
	"github.com/DCSlucifer/quickblog-backend/pkg/gemini"
	"github.com/DCSlucifer/quickblog-backend/pkg/limiter"
	"github.com/DCSlucifer/quickblog-backend/pkg/mailer"
	"github.com/DCSlucifer/quickblog-backend/pkg/middleware"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Editors can manage posts; the moderation surface additionally admits
// moderators. Subscriber administration stays with the editor roles.
var editorRoles = []string{database.RoleAdmin, database.RoleSuperAdmin}
var moderationRoles = []string{database.RoleAdmin, database.RoleSuperAdmin, database.RoleModerator}

type Router struct {
	Env       *env.Environment
	Mux       *baseHttp.ServeMux
	Pipeline  middleware.Pipeline
	Db        *database.Connection
	Validator *portal.Validator
	Fanout    *mailer.Fanout
	AI        *gemini.Client
	JWT       auth.JWTHandler
	Limiter   *limiter.MemoryLimiter
}

// PublicPipelineFor wires a handler with request metrics only.
func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.Metrics.Handle,
		),
	)
}

// PipelineFor guards a handler behind token validation plus an allowed-role
// set: 401 for token problems, 403 for a valid token with the wrong role.
func (r *Router) PipelineFor(apiHandler endpoint.ApiHandler, roles ...string) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.Metrics.Handle,
			r.Pipeline.JWT.Handle,
			middleware.AllowRoles(roles...),
		),
	)
}

func (r *Router) postsHandler() handler.PostsHandler {
	posts := repository.Posts{DB: r.Db}
	users := repository.Users{DB: r.Db}

	return handler.MakePostsHandler(&posts, &users, r.Fanout, r.Validator)
}

func (r *Router) commentsHandler() handler.CommentsHandler {
	comments := repository.Comments{DB: r.Db}
	posts := repository.Posts{DB: r.Db}

	return handler.MakeCommentsHandler(&comments, &posts, r.Validator)
}

func (r *Router) Auth() {
	users := repository.Users{DB: r.Db}
	abstract := handler.MakeAuthHandler(&users, r.JWT, r.Limiter, r.Env.Admin, r.Validator)

	r.Mux.HandleFunc("POST /api/admin/login", r.PublicPipelineFor(abstract.Login))
}

func (r *Router) Blogs() {
	abstract := r.postsHandler()

	r.Mux.HandleFunc("GET /api/blogs", r.PublicPipelineFor(abstract.Index))
	r.Mux.HandleFunc("GET /api/blogs/{uuid}", r.PublicPipelineFor(abstract.Show))
}

func (r *Router) Comments() {
	abstract := r.commentsHandler()

	r.Mux.HandleFunc("GET /api/blogs/{uuid}/comments", r.PublicPipelineFor(abstract.Index))
	r.Mux.HandleFunc("POST /api/blogs/{uuid}/comments", r.PublicPipelineFor(abstract.Store))
}

func (r *Router) Subscribers() {
	subscribers := repository.Subscribers{DB: r.Db}
	abstract := handler.MakeSubscribersHandler(&subscribers, r.Fanout, r.Validator)

	r.Mux.HandleFunc("POST /api/subscribers", r.PublicPipelineFor(abstract.Subscribe))
	r.Mux.HandleFunc("POST /api/subscribers/unsubscribe", r.PublicPipelineFor(abstract.Unsubscribe))
}

func (r *Router) AdminBlogs() {
	abstract := r.postsHandler()

	r.Mux.HandleFunc("GET /api/admin/blogs", r.PipelineFor(abstract.AdminIndex, editorRoles...))
	r.Mux.HandleFunc("POST /api/admin/blogs", r.PipelineFor(abstract.Store, editorRoles...))
	r.Mux.HandleFunc("PUT /api/admin/blogs/{uuid}", r.PipelineFor(abstract.Update, editorRoles...))
	r.Mux.HandleFunc("DELETE /api/admin/blogs/{uuid}", r.PipelineFor(abstract.Delete, editorRoles...))
	r.Mux.HandleFunc("POST /api/admin/blogs/{uuid}/toggle-publish", r.PipelineFor(abstract.TogglePublish, editorRoles...))
}

func (r *Router) AdminComments() {
	abstract := r.commentsHandler()

	r.Mux.HandleFunc("GET /api/admin/comments", r.PipelineFor(abstract.Search, moderationRoles...))
	r.Mux.HandleFunc("POST /api/admin/comments/{uuid}/approve", r.PipelineFor(abstract.Approve, moderationRoles...))
	r.Mux.HandleFunc("DELETE /api/admin/comments/{uuid}", r.PipelineFor(abstract.Delete, moderationRoles...))
}

func (r *Router) AdminSubscribers() {
	subscribers := repository.Subscribers{DB: r.Db}
	abstract := handler.MakeSubscribersHandler(&subscribers, r.Fanout, r.Validator)

	r.Mux.HandleFunc("GET /api/admin/subscribers", r.PipelineFor(abstract.Index, editorRoles...))
	r.Mux.HandleFunc("DELETE /api/admin/subscribers/{uuid}", r.PipelineFor(abstract.Delete, editorRoles...))
}

func (r *Router) Dashboard() {
	posts := repository.Posts{DB: r.Db}
	comments := repository.Comments{DB: r.Db}
	abstract := handler.MakeDashboardHandler(&posts, &comments)

	r.Mux.HandleFunc("GET /api/admin/dashboard", r.PipelineFor(abstract.Show, moderationRoles...))
}

func (r *Router) AIRoutes() {
	abstract := handler.MakeAIHandler(r.AI, r.Validator)

	r.Mux.HandleFunc("POST /api/admin/ai/generate", r.PipelineFor(abstract.Generate, editorRoles...))
}

func (r *Router) Metrics() {
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
