package middleware

import (
	"github.com/DCSlucifer/quickblog-backend/pkg/auth"
	"github.com/DCSlucifer/quickblog-backend/pkg/endpoint"
)

// Pipeline groups the middleware dependencies the router hands out to its
// routes.
type Pipeline struct {
	JWT     JWTMiddleware
	Metrics RequestMetrics
}

func MakePipeline(jwtHandler auth.JWTHandler) Pipeline {
	return Pipeline{
		JWT:     JWTMiddleware{Handler: jwtHandler},
		Metrics: NewRequestMetrics(),
	}
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}
