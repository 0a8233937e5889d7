package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/http/handlers"
	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Complaints     *handlers.ComplaintsHandler
	Comments       *handlers.CommentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Guards are attached per route rather
// than on a /complaints group so the public tracking routes, which share the
// prefix, stay unauthenticated. Public routes are registered before the
// parameterized staff routes so the "public" segment wins the match.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/auth/login", cfg.Auth.Login)
	api.Get("/auth/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	api.Post("/complaints", cfg.Complaints.Submit)
	api.Get("/complaints/public/:trackingId", cfg.Complaints.GetPublic)
	api.Patch("/complaints/public/:trackingId/withdraw", cfg.Complaints.Withdraw)

	staff := auth.RequireRole(domain.RoleAdmin, domain.RoleAgent)
	adminOnly := auth.RequireRole(domain.RoleAdmin)

	api.Get("/complaints", cfg.AuthMiddleware.Handle, staff, cfg.Complaints.List)
	api.Get("/complaints/:id", cfg.AuthMiddleware.Handle, staff, cfg.Complaints.Get)
	api.Patch("/complaints/:id", cfg.AuthMiddleware.Handle, staff, cfg.Complaints.UpdateStatus)
	api.Delete("/complaints/:id", cfg.AuthMiddleware.Handle, adminOnly, cfg.Complaints.Delete)
	api.Post("/complaints/:id/comments", cfg.AuthMiddleware.Handle, staff, cfg.Comments.Add)
	api.Get("/complaints/:id/comments", cfg.AuthMiddleware.Handle, staff, cfg.Comments.List)
}
