package server

import (
	"portfolio/internal/models"
	"portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAbout returns the about section.
func (s *Server) GetAbout(c *fiber.Ctx) error {
	about, err := s.aboutService.Get(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(about)
}

// CreateAbout creates the about section. Only one may exist.
func (s *Server) CreateAbout(c *fiber.Ctx) error {
	var req struct {
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		req.Description = c.FormValue("description")
	}

	about, err := s.aboutService.Create(c.UserContext(), service.CreateAboutInput{
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(about)
}

// UpdateAbout replaces the about section's description.
func (s *Server) UpdateAbout(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		req.Description = c.FormValue("description")
	}

	about, err := s.aboutService.Update(c.UserContext(), id, service.UpdateAboutInput{
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(about)
}

// DeleteAbout removes the about section.
func (s *Server) DeleteAbout(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.aboutService.Delete(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(fiber.Map{"message": "About section deleted"})
}
