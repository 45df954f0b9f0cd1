package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/umrah-feedback/insights-api/internal/application/usecases"
	"github.com/umrah-feedback/insights-api/internal/domain/entities"
)

// SurveyHandler handles survey submission and read requests
type SurveyHandler struct {
	surveyUseCase *usecases.SurveyUseCase
}

// NewSurveyHandler creates a new SurveyHandler instance
func NewSurveyHandler(surveyUseCase *usecases.SurveyUseCase) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
	}
}

// SubmitSurvey stores one completed questionnaire
// @Summary Submit a survey
// @Description Stores a completed feedback questionnaire for the authenticated user
// @Tags surveys
// @Accept json
// @Produce json
// @Param survey body entities.Survey true "Survey payload"
// @Success 201 {object} entities.Survey "Stored survey"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 409 {object} map[string]interface{} "Survey already submitted"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /surveys [post]
func (h *SurveyHandler) SubmitSurvey(c *fiber.Ctx) error {
	var survey entities.Survey

	if err := c.BodyParser(&survey); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid survey payload"})
	}

	if survey.UserID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing user_id"})
	}

	stored, err := h.surveyUseCase.SubmitSurvey(&survey)
	if err != nil {
		if errors.Is(err, usecases.ErrSurveyAlreadySubmitted) {
			return c.Status(409).JSON(fiber.Map{"error": "You have already submitted a survey."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit survey: " + err.Error()})
	}

	return c.Status(201).JSON(stored)
}

// GetSurveys returns all surveys with pagination
// @Summary List surveys
// @Description Returns all submitted surveys, newest first, with pagination
// @Tags surveys
// @Produce json
// @Param page query int false "Current page" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param user_id query string false "Filter by submitting user"
// @Success 200 {object} map[string]interface{} "Survey list"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /surveys [get]
func (h *SurveyHandler) GetSurveys(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'page' parameter"})
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'limit' parameter"})
	}

	userID := c.Query("user_id", "")

	surveys, total, err := h.surveyUseCase.GetSurveys(page, limit, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch surveys: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  surveys,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetSurveyByID returns a single survey
// @Summary Get a survey
// @Description Returns one submitted survey by id
// @Tags surveys
// @Produce json
// @Param id path string true "Survey id"
// @Success 200 {object} entities.Survey "Survey"
// @Failure 404 {object} map[string]interface{} "Survey not found"
// @Router /surveys/{id} [get]
func (h *SurveyHandler) GetSurveyByID(c *fiber.Ctx) error {
	id := c.Params("id")

	survey, err := h.surveyUseCase.GetSurveyByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Survey not found"})
	}

	return c.JSON(survey)
}

// GetUserSurveys returns every survey submitted by one user
// @Summary List a user's surveys
// @Description Returns every survey submitted by one user, newest first
// @Tags surveys
// @Produce json
// @Param user_id path string true "User id"
// @Success 200 {object} []entities.Survey "Surveys"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /surveys/user/{user_id} [get]
func (h *SurveyHandler) GetUserSurveys(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	surveys, err := h.surveyUseCase.GetUserSurveys(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch surveys: " + err.Error()})
	}

	return c.JSON(surveys)
}
