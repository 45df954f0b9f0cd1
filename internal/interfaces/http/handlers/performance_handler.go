package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/umrah-feedback/insights-api/internal/domain/entities"
)

type PerformanceHandler struct {
	db *gorm.DB
}

func NewPerformanceHandler(db *gorm.DB) *PerformanceHandler {
	return &PerformanceHandler{
		db: db,
	}
}

// TestCorpusPerformance compares the plain corpus fetch against a
// column-pruned variant, to keep an eye on analysis latency as the surveys
// table grows
func (h *PerformanceHandler) TestCorpusPerformance(c *fiber.Ctx) error {
	fromParam := c.Query("from", "")

	// Default window matches the default analysis range
	from := time.Now().AddDate(0, -1, 0)

	if fromParam != "" {
		parsedFrom, err := time.Parse(time.RFC3339, fromParam)
		if err == nil {
			from = parsedFrom
		}
	}

	// Full-row fetch, as the analysis performs it
	startFull := time.Now()
	var fullRows []entities.Survey
	if err := h.db.Where("created_at >= ?", from).Order("created_at asc").Find(&fullRows).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Full fetch failed: " + err.Error()})
	}
	durationFull := time.Since(startFull)

	// Column-pruned fetch: the analysis only needs the answers blob
	startPruned := time.Now()
	var prunedRows []entities.Survey
	if err := h.db.Select("id", "answers", "created_at").
		Where("created_at >= ?", from).
		Order("created_at asc").
		Find(&prunedRows).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Pruned fetch failed: " + err.Error()})
	}
	durationPruned := time.Since(startPruned)

	speedup := 0.0
	if durationPruned > 0 {
		speedup = float64(durationFull) / float64(durationPruned)
	}

	return c.JSON(fiber.Map{
		"from":             from.Format(time.RFC3339),
		"rows":             len(fullRows),
		"full_duration":    durationFull.String(),
		"pruned_duration":  durationPruned.String(),
		"pruned_speedup_x": speedup,
	})
}
