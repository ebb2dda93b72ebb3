package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/counselor-go-api/internal/dto"
	"github.com/noah-isme/counselor-go-api/internal/service"
	"github.com/noah-isme/counselor-go-api/internal/utils"
)

// StudentHandler serves student CRUD.
type StudentHandler struct {
	students service.StudentService
	logger   zerolog.Logger
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(students service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		students: students,
		logger:   logger.With().Str("component", "student_handler").Logger(),
	}
}

// List returns every student.
func (h *StudentHandler) List(c *fiber.Ctx) error {
	students, err := h.students.List(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, students)
}

// Create registers a new student record.
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	student, err := h.students.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusCreated, student)
}

// Get returns one student by ID.
func (h *StudentHandler) Get(c *fiber.Ctx) error {
	student, err := h.students.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, student)
}

// Update applies a partial update to a student profile.
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequestBody(c)
	}

	student, err := h.students.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return utils.SendJSON(c, fiber.StatusOK, student)
}
