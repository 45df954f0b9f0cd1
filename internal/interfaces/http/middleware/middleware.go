package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App) {
	allowOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "*"
	}

	// CORS configuration. Preflight OPTIONS requests are answered here and
	// never reach a handler.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Client-Info, Apikey",
		AllowCredentials: allowOrigins != "*",
		MaxAge:           300, // 5 minutes
	}))

	// Request timing for the analysis routes
	app.Use(PerformanceLogger())
}

// RouteGroups defines the API route groups
type RouteGroups struct {
	Public  fiber.Router
	Survey  fiber.Router
	Trends  fiber.Router
	Insight fiber.Router
}

// SetupRouteGroups configures the route groups with their middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware func(c *fiber.Ctx) error) RouteGroups {
	// Public group (no authentication)
	public := app.Group("/")

	// Survey submission and reads (authenticated)
	survey := app.Group("/surveys")
	survey.Use(authMiddleware)

	// Trend analysis (authenticated)
	trends := app.Group("/trends")
	trends.Use(authMiddleware)

	// Dashboard insight reads (authenticated)
	insight := app.Group("/insights")
	insight.Use(authMiddleware)

	return RouteGroups{
		Public:  public,
		Survey:  survey,
		Trends:  trends,
		Insight: insight,
	}
}
