package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/register", h.authForm)
		r.Post("/register", h.register)
		r.Get("/login", h.authForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Post("/logout", h.logout)
	})

	// routes behind the session gate
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Get("/", h.listTasks)

		r.Get("/task/new", h.newTaskForm)
		r.Post("/task/new", h.createTask)
		r.Get("/task/{taskID}/edit", h.editTaskForm)
		r.Post("/task/{taskID}/edit", h.updateTask)
		r.Post("/task/{taskID}/delete", h.deleteTask)

		r.Get("/uploads/{filename}", h.serveUpload)
		r.Get("/download/{filename}", h.downloadUpload)
	})

	return router
}
