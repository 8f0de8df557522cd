package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/api/http/handlers"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/domain"
)

// RouteConfig bundles everything the router needs.
type RouteConfig struct {
	Auth         *auth.Middleware
	Health       *handlers.HealthHandler
	Users        *handlers.UsersHandler
	Jobs         *handlers.JobsHandler
	Applications *handlers.ApplicationsHandler
	Products     *handlers.ProductsHandler
}

// RegisterRoutes mounts the public API surface.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/healthz", cfg.Health.Live)
	app.Get("/readyz", cfg.Health.Ready)

	api := app.Group("/api/v1")

	users := api.Group("/users")
	users.Post("/signup", cfg.Users.Signup)
	users.Post("/login", cfg.Users.Login)
	users.Get("/verify-email", cfg.Users.VerifyEmail)
	users.Get("/me", cfg.Auth.Handle, cfg.Users.Me)
	users.Put("/me", cfg.Auth.Handle, cfg.Users.Update)
	users.Post("/change-password", cfg.Auth.Handle, cfg.Users.ChangePassword)

	jobs := api.Group("/jobs")
	jobs.Get("/search", cfg.Jobs.Search)
	jobs.Get("/my-jobs", cfg.Auth.Handle, auth.RequireRole(domain.RoleCompany), cfg.Jobs.Mine)
	jobs.Post("/", cfg.Auth.Handle, auth.RequireRole(domain.RoleCompany), cfg.Jobs.Create)
	jobs.Get("/:id", cfg.Jobs.Get)
	jobs.Put("/:id", cfg.Auth.Handle, auth.RequireRole(domain.RoleCompany), cfg.Jobs.Update)
	jobs.Delete("/:id", cfg.Auth.Handle, auth.RequireRole(domain.RoleCompany), cfg.Jobs.Delete)
	jobs.Get("/:id/applications", cfg.Auth.Handle, cfg.Jobs.Applications)

	applications := api.Group("/applications", cfg.Auth.Handle)
	applications.Post("/", auth.RequireRole(domain.RoleApplicant), cfg.Applications.Create)
	applications.Get("/my-applications", auth.RequireRole(domain.RoleApplicant), cfg.Applications.Mine)
	applications.Get("/:id", cfg.Applications.Get)
	applications.Patch("/:id/status", cfg.Applications.UpdateStatus)

	products := api.Group("/products")
	products.Get("/", cfg.Products.List)
	products.Get("/sku/:sku", cfg.Products.GetBySKU)
	products.Get("/:id", cfg.Products.Get)
	products.Post("/", cfg.Auth.Handle, cfg.Products.Create)
	products.Put("/:id", cfg.Auth.Handle, cfg.Products.Update)
	products.Delete("/:id", cfg.Auth.Handle, cfg.Products.Delete)
	products.Patch("/:id/stock", cfg.Auth.Handle, cfg.Products.UpdateStock)
}
