package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/umrah-feedback/insights-api/internal/application/usecases"
)

// PilgrimHandler handles pilgrim ID verification requests
type PilgrimHandler struct {
	pilgrimUseCase *usecases.PilgrimUseCase
}

// NewPilgrimHandler creates a new PilgrimHandler instance
func NewPilgrimHandler(pilgrimUseCase *usecases.PilgrimUseCase) *PilgrimHandler {
	return &PilgrimHandler{
		pilgrimUseCase: pilgrimUseCase,
	}
}

type verifyRequest struct {
	IDNumber string `json:"id_number"`
	UserID   string `json:"user_id"`
}

// VerifyIDNumber checks an ID number against the pilgrim registry
// @Summary Verify a pilgrim ID number
// @Description Checks that an ID number is registered and not claimed by another profile
// @Tags verification
// @Accept json
// @Produce json
// @Param request body verifyRequest true "ID number to verify"
// @Success 200 {object} usecases.VerificationResult "Verification result"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /verify [post]
func (h *PilgrimHandler) VerifyIDNumber(c *fiber.Ctx) error {
	var req verifyRequest

	if err := c.BodyParser(&req); err != nil || req.IDNumber == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing id_number"})
	}

	result, err := h.pilgrimUseCase.VerifyIDNumber(req.IDNumber)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to verify id number: " + err.Error()})
	}

	return c.JSON(result)
}

// LinkIDNumber attaches a verified ID number to the user's profile
// @Summary Link a pilgrim ID number
// @Description Attaches a registry-verified ID number to a user profile
// @Tags verification
// @Accept json
// @Produce json
// @Param request body verifyRequest true "ID number and user id"
// @Success 200 {object} map[string]interface{} "Link result"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /verify/link [post]
func (h *PilgrimHandler) LinkIDNumber(c *fiber.Ctx) error {
	var req verifyRequest

	if err := c.BodyParser(&req); err != nil || req.IDNumber == "" || req.UserID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing id_number or user_id"})
	}

	if err := h.pilgrimUseCase.LinkIDNumber(req.UserID, req.IDNumber); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to link id number: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}
