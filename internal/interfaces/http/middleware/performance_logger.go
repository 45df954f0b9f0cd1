package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PerformanceLogger measures response time on the critical routes
func PerformanceLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// Routes worth timing: the analysis runs a full corpus scan
		monitoredRoutes := []string{
			"/trends",
			"/surveys",
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
				"[PERFORMANCE] %s %s - %d - Duration: %v - Query params: %s",
				c.Method(),
				path,
				c.Response().StatusCode(),
				duration,
				c.Request().URI().QueryArgs().String(),
			)

			return err
		}

		// Not a monitored route, just continue
		return c.Next()
	}
}
