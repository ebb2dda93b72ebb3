package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/counselor-go-api/internal/handler"
	"github.com/noah-isme/counselor-go-api/internal/middleware"
	"github.com/noah-isme/counselor-go-api/internal/observability"
)

// Dependencies carries the handlers mounted by the router.
type Dependencies struct {
	Health          *handler.HealthHandler
	Auth            *handler.AuthHandler
	Students        *handler.StudentHandler
	Journal         *handler.JournalHandler
	Colleges        *handler.CollegeHandler
	Recommendations *handler.RecommendationHandler

	// JWTSecret guards the counseling routes when non-empty.
	JWTSecret string
}

// Register mounts every route on the app.
func Register(app *fiber.App, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api")
	api.Get("/health", deps.Health.Check)

	auth := api.Group("/auth")
	auth.Post("/register", deps.Auth.Register)
	auth.Post("/login", deps.Auth.Login)

	protected := api.Group("")
	if deps.JWTSecret != "" {
		protected.Use(middleware.JWTProtected(deps.JWTSecret))
	}

	students := protected.Group("/students")
	students.Get("", deps.Students.List)
	students.Post("", deps.Students.Create)
	students.Get("/:id", deps.Students.Get)
	students.Put("/:id", deps.Students.Update)

	students.Get("/:id/journal", deps.Journal.List)
	students.Post("/:id/journal", deps.Journal.Create)

	students.Get("/:id/recommendations", deps.Recommendations.List)
	students.Post("/:id/recommendations/:college_id/override", deps.Recommendations.Override)
	students.Post("/:id/recommendations/:college_id/explain", deps.Recommendations.Explain)
	students.Get("/:id/report", deps.Recommendations.Report)

	colleges := protected.Group("/colleges")
	colleges.Get("", deps.Colleges.List)
	colleges.Get("/search", deps.Colleges.Search)
}
