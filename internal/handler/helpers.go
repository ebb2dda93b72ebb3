package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/counselor-go-api/internal/service"
	"github.com/noah-isme/counselor-go-api/internal/utils"
)

// respondError translates service errors into the API error envelope.
func respondError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return utils.SendError(c, fiber.StatusBadRequest, validationMessage(verrs))
	case errors.Is(err, service.ErrStudentNotFound), errors.Is(err, service.ErrCollegeNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrQueryRequired),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	default:
		logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func validationMessage(verrs validator.ValidationErrors) string {
	if len(verrs) == 0 {
		return "validation failed"
	}

	first := verrs[0]
	field := strings.ToLower(first.Field())
	switch first.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, first.Param())
	case "min", "gte":
		return fmt.Sprintf("%s is below the minimum of %s", field, first.Param())
	case "max", "lte":
		return fmt.Sprintf("%s exceeds the maximum of %s", field, first.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func badRequestBody(c *fiber.Ctx) error {
	return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
}
