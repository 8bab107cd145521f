package server

import (
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SubmitContact accepts a contact form submission and records it in the
// structured log. Delivery (mail, CRM) is left to log shipping.
func (s *Server) SubmitContact(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	v := validation.New()
	name := v.Required("name", req.Name)
	email := v.Required("email", req.Email)
	v.Email("email", email)
	message := v.Required("message", req.Message)
	v.MaxLen("message", message, 2000)
	if err := v.Err(); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "contact form submission",
		"name", name,
		"email", email,
		"message", message,
	)

	return c.JSON(fiber.Map{"message": "Contact form submitted successfully!"})
}
