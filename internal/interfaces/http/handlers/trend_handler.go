package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/umrah-feedback/insights-api/internal/application/usecases"
	"github.com/umrah-feedback/insights-api/internal/infrastructure/cache"
)

// trendCacheTTL bounds staleness of the dashboard read endpoints. Analysis
// itself is never cached: every call must re-run and re-persist.
const trendCacheTTL = 5 * time.Minute

// TrendHandler handles trend analysis requests
type TrendHandler struct {
	trendUseCase *usecases.TrendUseCase
	cache        *cache.Cache
}

// NewTrendHandler creates a new TrendHandler instance
func NewTrendHandler(trendUseCase *usecases.TrendUseCase, cache *cache.Cache) *TrendHandler {
	return &TrendHandler{
		trendUseCase: trendUseCase,
		cache:        cache,
	}
}

// AnalyseTrends runs the problem-extraction analysis over recent surveys and
// stores the resulting snapshot, replacing the previous one for the range
// @Summary Analyse survey trends
// @Description Extracts the top reported problems from free-text survey answers within a time range
// @Tags trends
// @Produce json
// @Param range query string false "Reporting range (1m, 6m or 1y)" default(1m)
// @Success 200 {object} usecases.TrendAnalysisResult "Analysis result"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /trends/analyse [get]
func (h *TrendHandler) AnalyseTrends(c *fiber.Ctx) error {
	trendRange := c.Query("range", "1m")

	result, err := h.trendUseCase.AnalyzeTrends(trendRange)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	// A fresh snapshot invalidates what the read endpoints are serving
	h.cache.Delete(recentTrendsCacheKey(result.Range))
	h.cache.Delete(recentTrendsCacheKey(""))

	return c.JSON(result)
}

// GetRecentTrends returns the most recent stored snapshot, optionally for a
// single range
// @Summary Get recent trend snapshot
// @Description Returns the latest stored analysis snapshot for the dashboard
// @Tags trends
// @Produce json
// @Param range query string false "Reporting range (1m, 6m or 1y)"
// @Success 200 {object} entities.TrendHistory "Latest snapshot"
// @Failure 404 {object} map[string]interface{} "No snapshot stored yet"
// @Router /trends/recent [get]
func (h *TrendHandler) GetRecentTrends(c *fiber.Ctx) error {
	trendRange := c.Query("range", "")

	key := recentTrendsCacheKey(trendRange)
	if cached, found := h.cache.Get(key); found {
		return c.JSON(cached)
	}

	snapshot, err := h.trendUseCase.GetRecentTrends(trendRange)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "No trend analysis available yet"})
	}

	h.cache.Set(key, snapshot, trendCacheTTL)

	return c.JSON(snapshot)
}

func recentTrendsCacheKey(trendRange string) string {
	return fmt.Sprintf("trends:recent:%s", trendRange)
}
