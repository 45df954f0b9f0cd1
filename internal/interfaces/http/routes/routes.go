package routes

import (
	"github.com/umrah-feedback/insights-api/internal/application/usecases"
	"github.com/umrah-feedback/insights-api/internal/domain/repositories"
	"github.com/umrah-feedback/insights-api/internal/infrastructure/cache"
	"github.com/umrah-feedback/insights-api/internal/interfaces/http/handlers"
	"github.com/umrah-feedback/insights-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Shared in-memory cache for the dashboard read endpoints
	resultCache := cache.New()

	// Repositories
	surveyRepo := repositories.NewSurveyRepository(db)
	trendRepo := repositories.NewTrendRepository(db)
	profileRepo := repositories.NewProfileRepository(db)

	// Use Cases
	surveyUseCase := usecases.NewSurveyUseCase(surveyRepo, profileRepo)
	trendUseCase := usecases.NewTrendUseCase(surveyRepo, trendRepo)
	pilgrimUseCase := usecases.NewPilgrimUseCase(profileRepo)

	// Handlers
	surveyHandler := handlers.NewSurveyHandler(surveyUseCase)
	trendHandler := handlers.NewTrendHandler(trendUseCase, resultCache)
	sentimentHandler := handlers.NewSentimentHandler(trendUseCase, resultCache)
	pilgrimHandler := handlers.NewPilgrimHandler(pilgrimUseCase)

	// Routes
	authMiddleware := middleware.NewAuthMiddleware(middleware.AuthConfigFromEnv())
	groups := middleware.SetupRouteGroups(app, authMiddleware)

	// Survey routes
	groups.Survey.Post("/", surveyHandler.SubmitSurvey)
	groups.Survey.Get("/", surveyHandler.GetSurveys)
	groups.Survey.Get("/user/:user_id", surveyHandler.GetUserSurveys)
	groups.Survey.Get("/:id", surveyHandler.GetSurveyByID)

	// Trend analysis routes
	groups.Trends.Get("/analyse", trendHandler.AnalyseTrends)
	groups.Trends.Get("/recent", trendHandler.GetRecentTrends)

	// Dashboard insight routes
	groups.Insight.Get("/sentiment", sentimentHandler.GetSentiment)

	// Pilgrim ID verification routes
	groups.Public.Post("/verify", pilgrimHandler.VerifyIDNumber)
	groups.Public.Post("/verify/link", pilgrimHandler.LinkIDNumber)

	// Performance test routes
	handlersStruct := handlers.NewHandlers(db)
	setupPerformanceRoutes(groups.Public, handlersStruct.Performance)
}

// setupPerformanceRoutes configures the performance test routes
func setupPerformanceRoutes(router fiber.Router, performanceHandler *handlers.PerformanceHandler) {
	if performanceHandler != nil {
		perfGroup := router.Group("/performance")
		perfGroup.Get("/corpus", performanceHandler.TestCorpusPerformance)
	}
}
