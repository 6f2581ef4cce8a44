package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	accountdomain "github.com/harshitajain06/Memorylane/internal/domain/account"
	"github.com/harshitajain06/Memorylane/internal/transport/httpserver/handler"
	authmw "github.com/harshitajain06/Memorylane/internal/transport/httpserver/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(handlers *handler.Handlers, auth *authmw.SessionAuth, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(allowedOrigins))
	r.Use(authmw.Metrics)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/auth/register", handlers.Register)
		r.Post("/auth/login", handlers.Login)
		r.Post("/invites/redeem", handlers.RedeemInvite)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)
			r.Post("/auth/logout", handlers.Logout)

			r.Group(func(r chi.Router) {
				r.Use(authmw.RequireRole(accountdomain.RoleCaregiver))

				r.Post("/invites", handlers.CreateInvite)
				r.Get("/patients", handlers.ListPatients)
			})

			r.Get("/tasks", handlers.ListTasks)
			r.Post("/tasks", handlers.CreateTask)
			r.Patch("/tasks/{task_id}", handlers.UpdateTask)
			r.Delete("/tasks/{task_id}", handlers.DeleteTask)

			r.Get("/memories", handlers.ListMemories)
			r.Post("/memories", handlers.CreateMemory)
			r.Delete("/memories/{memory_id}", handlers.DeleteMemory)

			r.Get("/journal", handlers.ListJournalEntries)
			r.Post("/journal", handlers.CreateJournalEntry)
			r.Patch("/journal/{entry_id}", handlers.UpdateJournalEntry)
			r.Delete("/journal/{entry_id}", handlers.DeleteJournalEntry)
		})
	})

	return r
}
