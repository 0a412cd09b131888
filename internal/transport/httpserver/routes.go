package httpserver

import (
	"net/http"
	"time"

	"expense-tracker-go/internal/config"
	"expense-tracker-go/internal/transport/httpserver/handler"
	corsmw "expense-tracker-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(corsmw.NewCORS(cfg.CORSAllowedOrigins))

	r.Get("/api/health", handlers.Health)

	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", handlers.ListExpenses)
		r.Post("/", handlers.CreateExpense)
		r.Get("/{id}", handlers.GetExpense)
		r.Delete("/{id}", handlers.DeleteExpense)

		r.Get("/category/{category}", handlers.ListByCategory)
		r.Get("/date/{date}", handlers.ListByDate)
		r.Get("/period", handlers.ListByPeriod)
		r.Get("/filter", handlers.FilterExpenses)
		r.Get("/recent", handlers.ListRecent)
		r.Get("/categories", handlers.ListCategories)

		r.Get("/analytics/category", handlers.TotalsByCategory)
		r.Get("/analytics/total", handlers.GrandTotal)
		r.Get("/analytics/period", handlers.TotalForPeriod)
		r.Get("/analytics/average", handlers.AveragePerDay)
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", handlers.Register)
		r.Post("/login", handlers.Login)
		r.Post("/logout", handlers.Logout)
		r.Get("/check", handlers.CheckAuth)
	})

	return r
}
