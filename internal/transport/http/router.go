package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/renudeshmukh940/TaskHive-sub000/internal/transport/http/handler"
	customMiddleware "github.com/renudeshmukh940/TaskHive-sub000/internal/transport/http/middleware"
	"github.com/renudeshmukh940/TaskHive-sub000/internal/usecase"
)

// RouterConfig содержит конфигурацию для роутера
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	TaskHandler    *handler.TaskHandler
	TeamHandler    *handler.TeamHandler
	SummaryHandler *handler.SummaryHandler
	HealthHandler  *handler.HealthHandler
	ProfileUseCase *usecase.ProfileUseCase
	VerifyToken    func(token string) (string, error)
}

// NewRouter создает и настраивает роутер
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// Health check
	r.Get("/health", cfg.HealthHandler.Check)

	// Identity
	r.Post("/auth/register", cfg.AuthHandler.Register)
	r.Post("/auth/login", cfg.AuthHandler.Login)

	// Все остальное - только с разрешенным профилем вызывающего
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.Auth(cfg.ProfileUseCase, cfg.VerifyToken))

		r.Get("/profile/me", cfg.AuthHandler.Me)

		r.Get("/tasks", cfg.TaskHandler.List)
		r.Post("/tasks", cfg.TaskHandler.Create)
		r.Put("/tasks/{taskID}", cfg.TaskHandler.Update)
		r.Delete("/tasks/{taskID}", cfg.TaskHandler.Delete)

		r.Get("/team/get", cfg.TeamHandler.GetTeam)
		r.Get("/catalog", cfg.TeamHandler.GetCatalog)
		r.Get("/summary", cfg.SummaryHandler.GetDailySummary)
	})

	return r
}
