package main

import (
	baseHttp "net/http"

	"github.com/DCSlucifer/quickblog-backend/metal"
	"github.com/DCSlucifer/quickblog-backend/metal/kernel"
	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
	_ "github.com/lib/pq"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets := metal.Ignite("./.env", validate)

	var err error
	if app, err = kernel.MakeApp(secrets, validate); err != nil {
		panic("could not bootstrap the application: " + err.Error())
	}
}

func main() {
	defer app.CloseDB()
	defer app.CloseLogs()
	defer app.StopScheduler()

	app.Boot()

	addr := app.GetEnv().Network.GetHostURL()

	server := &baseHttp.Server{
		Addr:    addr,
		Handler: app.Handler(),
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		panic("Error starting server: " + err.Error())
	}
}
