// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Projects      *handlers.ProjectHandler
	Tasks         *handlers.TaskHandler
	Health        *handlers.HealthHandler
	Subscriptions *handlers.SubscriptionHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. A positive
// requestTimeout bounds every route except the long-lived /subscribe
// WebSocket.
func NewRouter(
	h Handlers,
	requestTimeout time.Duration,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/subscribe", h.Subscriptions.Subscribe)

	r.Group(func(r chi.Router) {
		if requestTimeout > 0 {
			r.Use(middleware.Timeout(requestTimeout))
		}

		r.Get("/health/live", h.Health.Liveness)
		r.Get("/health/ready", h.Health.Readiness)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Projects.ListProjects)
			r.Post("/", h.Projects.CreateProject)
			r.Get("/stats", h.Projects.Stats)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Projects.GetProject)
				r.Patch("/", h.Projects.EditProject)
				r.Delete("/", h.Projects.DeleteProject)
				r.Get("/tasks", h.Projects.ListTasks)
				r.Post("/tasks", h.Projects.CreateTask)
				r.Post("/add_task", h.Projects.AddTask)
				r.Post("/remove_task", h.Projects.RemoveTask)
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.Tasks.SearchTasks)
			r.Post("/", h.Tasks.CreateTask)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Tasks.GetTask)
				r.Patch("/", h.Tasks.EditTask)
				r.Delete("/", h.Tasks.DeleteTask)
				r.Get("/projects", h.Tasks.ListProjects)
				r.Post("/clear_fields", h.Tasks.ClearFields)
			})
		})
	})

	return r
}
