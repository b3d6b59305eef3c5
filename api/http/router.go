package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/jobboard/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. authMW guards the
// per-user routes; requireAuthForBookmarks is true for remote-backed
// bookmark deployments and false for the local file store.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	jobs *handlers.JobsHandler,
	bookmarks *handlers.BookmarksHandler,
	recommendations *handlers.RecommendationsHandler,
	authMW fiber.Handler,
	requireAuthForBookmarks bool,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Job browsing is public
	jg := v1.Group("/jobs")
	jg.Get("/", jobs.List)
	jg.Get("/:id", jobs.GetByID)
	jg.Post("/:id/apply", authMW, jobs.Apply)

	bg := v1.Group("/bookmarks")
	if requireAuthForBookmarks {
		bg.Use(authMW)
	}
	bg.Get("/", bookmarks.List)
	bg.Post("/:id/toggle", bookmarks.Toggle)

	v1.Get("/recommendations", authMW, recommendations.List)
}
