package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App) {
	// Configuration CORS : le front de saisie et les tableaux de bord
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:8501",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Middleware commun
	app.Use(func(c *fiber.Ctx) error {
		return c.Next()
	})
}

// RouteGroups définit les groupes de routes de l'API
type RouteGroups struct {
	Public     fiber.Router
	Schema     fiber.Router
	Entretiens fiber.Router
	Reporting  fiber.Router
	Export     fiber.Router
}

// SetupRouteGroups configure les groupes de routes
func SetupRouteGroups(app *fiber.App) RouteGroups {
	return RouteGroups{
		Public:     app.Group("/"),
		Schema:     app.Group("/schema"),
		Entretiens: app.Group("/entretiens"),
		Reporting:  app.Group("/reporting"),
		Export:     app.Group("/export"),
	}
}
