package kernel

import (
	"context"
	"fmt"
	baseHttp "net/http"
	"time"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/database/cleanup"
	"github.com/DCSlucifer/quickblog-backend/database/repository"
	"github.com/DCSlucifer/quickblog-backend/metal/env"
	"github.com/DCSlucifer/quickblog-backend/pkg/auth"
	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
	"github.com/DCSlucifer/quickblog-backend/pkg/gemini"
	"github.com/DCSlucifer/quickblog-backend/pkg/limiter"
	"github.com/DCSlucifer/quickblog-backend/pkg/llogs"
	"github.com/DCSlucifer/quickblog-backend/pkg/mailer"
	"github.com/DCSlucifer/quickblog-backend/pkg/middleware"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
	"github.com/DCSlucifer/quickblog-backend/pkg/scheduler"
	sentryhttp "github.com/getsentry/sentry-go/http"
)

// TokenTTL is how long issued access tokens stay valid.
const TokenTTL = 24 * time.Hour

const loginWindow = 15 * time.Minute
const loginMaxFails = 5

type App struct {
	router    *Router
	sentry    *sentryhttp.Handler
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
	cleaner   *scheduler.Scheduler
}

func MakeApp(e *env.Environment, validator *portal.Validator) (*App, error) {
	jwtHandler, err := auth.MakeJWTHandler([]byte(e.App.MasterKey), TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create jwt handler: %w", err)
	}

	db := MakeDbConnection(e)

	mailClient := mailer.NewClient(e.Mail.APIKey, e.Mail.FromEmail, e.Mail.FromName)
	fanout := mailer.MakeFanout(
		mailClient,
		repository.Subscribers{DB: db},
		e.App.Name,
		e.App.URL,
	)

	app := App{
		env:       e,
		validator: validator,
		logs:      MakeLogs(e),
		sentry:    MakeSentry(e),
		db:        db,
	}

	sweeper := cleanup.MakeOrphans(db)
	app.cleaner, err = scheduler.New(
		e.Cleanup.Schedule,
		func(ctx context.Context) error {
			_, runErr := sweeper.Run(ctx)
			return runErr
		},
		scheduler.WithJobTimeout(5*time.Minute),
	)

	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not schedule the cleanup job: %w", err)
	}

	router := Router{
		Env:       e,
		Db:        db,
		Mux:       baseHttp.NewServeMux(),
		Pipeline:  middleware.MakePipeline(jwtHandler),
		Validator: validator,
		Fanout:    fanout,
		AI:        gemini.NewClient(e.AI.APIKey, e.AI.Model),
		JWT:       jwtHandler,
		Limiter:   limiter.NewMemoryLimiter(loginWindow, loginMaxFails),
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	endpoint.SetDebug(a.env.App.IsLocal())

	if err := a.db.Sql().AutoMigrate(database.GetSchemaModels()...); err != nil {
		panic("bootstrapping error > could not migrate the schema: " + err.Error())
	}

	router := *a.router

	router.Auth()
	router.Blogs()
	router.Comments()
	router.Subscribers()
	router.AdminBlogs()
	router.AdminComments()
	router.AdminSubscribers()
	router.Dashboard()
	router.AIRoutes()
	router.Metrics()

	if err := a.cleaner.Start(context.Background()); err != nil {
		panic("bootstrapping error > could not start the cleanup scheduler: " + err.Error())
	}
}

// Handler assembles the outermost HTTP handler: mux, CORS in
// non-production, Sentry instrumentation.
func (a *App) Handler() baseHttp.Handler {
	return endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:          a.router.Mux,
		IsProduction: a.env.App.IsProduction(),
		DevHost:      a.env.App.URL,
		Wrap:         a.sentry.Handle,
	})
}

func (a *App) SetRouter(router Router) {
	a.router = &router
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetDB() *database.Connection {
	return a.db
}

func (a *App) CloseDB() {
	a.db.Close()
}

func (a *App) CloseLogs() {
	a.logs.Close()
}

func (a *App) StopScheduler() {
	a.cleaner.Stop()
}
