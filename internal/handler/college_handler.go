package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/counselor-go-api/internal/service"
	"github.com/noah-isme/counselor-go-api/internal/utils"
)

// CollegeHandler serves the college catalog.
type CollegeHandler struct {
	colleges service.CollegeService
	logger   zerolog.Logger
}

// NewCollegeHandler constructs a college handler.
func NewCollegeHandler(colleges service.CollegeService, logger zerolog.Logger) *CollegeHandler {
	return &CollegeHandler{
		colleges: colleges,
		logger:   logger.With().Str("component", "college_handler").Logger(),
	}
}

// List returns colleges up to the requested limit.
func (h *CollegeHandler) List(c *fiber.Ctx) error {
	colleges, err := h.colleges.List(c.UserContext(), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, colleges)
}

// Search returns colleges matching the query string.
func (h *CollegeHandler) Search(c *fiber.Ctx) error {
	colleges, err := h.colleges.Search(c.UserContext(), c.Query("query"), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, colleges)
}
