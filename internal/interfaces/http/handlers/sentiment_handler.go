package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/umrah-feedback/insights-api/internal/application/usecases"
	"github.com/umrah-feedback/insights-api/internal/infrastructure/cache"
)

// sentimentRatios is the fixed distribution shown in the dashboard pie chart.
// Placeholder values, not computed from survey data.
var sentimentRatios = []fiber.Map{
	{"name": "Positive", "value": 65},
	{"name": "Neutral", "value": 25},
	{"name": "Negative", "value": 10},
}

// SentimentHandler serves the dashboard sentiment panel
type SentimentHandler struct {
	trendUseCase *usecases.TrendUseCase
	cache        *cache.Cache
}

// NewSentimentHandler creates a new SentimentHandler instance
func NewSentimentHandler(trendUseCase *usecases.TrendUseCase, cache *cache.Cache) *SentimentHandler {
	return &SentimentHandler{
		trendUseCase: trendUseCase,
		cache:        cache,
	}
}

// GetSentiment returns the sentiment distribution plus the latest analysed
// problems mapped to negative-sentiment issues
// @Summary Get sentiment overview
// @Description Returns the sentiment ratio distribution and the most recent top problems
// @Tags sentiment
// @Produce json
// @Success 200 {object} map[string]interface{} "Sentiment overview"
// @Router /sentiment [get]
func (h *SentimentHandler) GetSentiment(c *fiber.Ctx) error {
	const key = "sentiment:overview"
	if cached, found := h.cache.Get(key); found {
		return c.JSON(cached)
	}

	issues := []fiber.Map{}
	if snapshot, err := h.trendUseCase.GetRecentTrends(""); err == nil {
		for _, item := range snapshot.Problems.Counts {
			issues = append(issues, fiber.Map{
				"name":      item.Problem,
				"count":     item.Count,
				"sentiment": "negative",
			})
		}
	}

	overview := fiber.Map{
		"ratios": sentimentRatios,
		"issues": issues,
	}

	h.cache.Set(key, overview, 5*time.Minute)

	return c.JSON(overview)
}
