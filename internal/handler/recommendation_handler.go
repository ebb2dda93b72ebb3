package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/counselor-go-api/internal/dto"
	"github.com/noah-isme/counselor-go-api/internal/service"
	"github.com/noah-isme/counselor-go-api/internal/utils"
)

// RecommendationHandler serves trust-scored recommendations and the human
// decisions layered on top of them.
type RecommendationHandler struct {
	recommendations service.RecommendationService
	logger          zerolog.Logger
}

// NewRecommendationHandler constructs a recommendation handler.
func NewRecommendationHandler(recommendations service.RecommendationService, logger zerolog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendations: recommendations,
		logger:          logger.With().Str("component", "recommendation_handler").Logger(),
	}
}

// List returns the recommendation batch for one student, best match first.
func (h *RecommendationHandler) List(c *fiber.Ctx) error {
	recommendations, err := h.recommendations.Recommendations(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, recommendations)
}

// Override records a manual decision against one recommendation.
func (h *RecommendationHandler) Override(c *fiber.Ctx) error {
	var req dto.OverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.recommendations.RecordOverride(c.UserContext(), c.Params("id"), c.Params("college_id"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusCreated, resp)
}

// Report returns the full counseling report for one student.
func (h *RecommendationHandler) Report(c *fiber.Ctx) error {
	report, err := h.recommendations.Report(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, report)
}

// Explain answers a question about one recommendation.
func (h *RecommendationHandler) Explain(c *fiber.Ctx) error {
	var req dto.ExplainRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	resp, err := h.recommendations.Explain(c.UserContext(), c.Params("id"), c.Params("college_id"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, resp)
}
