package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform error envelope served by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendJSON writes a success payload. The body is the bare resource, not an
// envelope.
func SendJSON(c *fiber.Ctx, status int, payload interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(payload)
}

// SendError writes the error envelope with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}
