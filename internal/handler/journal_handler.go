package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/counselor-go-api/internal/dto"
	"github.com/noah-isme/counselor-go-api/internal/service"
	"github.com/noah-isme/counselor-go-api/internal/utils"
)

// JournalHandler serves a student's journal.
type JournalHandler struct {
	journal service.JournalService
	logger  zerolog.Logger
}

// NewJournalHandler constructs a journal handler.
func NewJournalHandler(journal service.JournalService, logger zerolog.Logger) *JournalHandler {
	return &JournalHandler{
		journal: journal,
		logger:  logger.With().Str("component", "journal_handler").Logger(),
	}
}

// List returns a student's journal entries in chronological order.
func (h *JournalHandler) List(c *fiber.Ctx) error {
	entries, err := h.journal.List(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, entries)
}

// Create adds a journal entry and returns it with its emotional reading.
func (h *JournalHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJournalEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	entry, err := h.journal.Create(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusCreated, entry)
}
