package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dayoon-choi/todolist/internal/http/handler"
	"github.com/dayoon-choi/todolist/internal/metrics"
	"github.com/dayoon-choi/todolist/internal/middleware"
)

// NewRouter wires the public auth routes, the token-gated todo routes and the
// operational endpoints. The metrics middleware lives inside the router so it
// can label observations with the matched route pattern.
func NewRouter(authH *handler.AuthHandler, todoH *handler.TodoHandler, auth *middleware.Auth, collector *metrics.Collector) http.Handler {
	r := chi.NewRouter()
	r.Use(collector.Middleware)

	r.Get("/health", handler.Health)
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	r.Post("/api/signup", authH.SignUp)
	r.Post("/api/login", authH.Login)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Get("/api/todos", todoH.List)
		r.Post("/api/todos", todoH.Create)
		r.Put("/api/todo/{id}", todoH.Update)
		r.Delete("/api/todo/{id}", todoH.Delete)
	})

	return r
}
