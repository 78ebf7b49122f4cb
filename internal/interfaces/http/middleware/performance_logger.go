package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PerformanceLogger mesure le temps de réponse des routes coûteuses
// (reporting et export, qui rechargent tout le tableau des fiches).
func PerformanceLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// Routes surveillées
		monitoredRoutes := []string{
			"/reporting",
			"/export",
		}

		shouldMonitor := false
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}

		if shouldMonitor {
			start := time.Now()

			err := c.Next()

			duration := time.Since(start)

			log.Printf(
				"[PERFORMANCE] %s %s - %d - Durée : %v - Paramètres : %s",
				c.Method(),
				path,
				c.Response().StatusCode(),
				duration,
				c.Request().URI().QueryArgs().String(),
			)

			return err
		}

		return c.Next()
	}
}
