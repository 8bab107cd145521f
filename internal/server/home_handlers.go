package server

import (
	"portfolio/internal/models"
	"portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetHome returns the home section.
func (s *Server) GetHome(c *fiber.Ctx) error {
	home, err := s.homeService.Get(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(home)
}

// CreateHome creates the home section with its CV document. Only one may
// exist.
func (s *Server) CreateHome(c *fiber.Ctx) error {
	cv, err := formFileUpload(c, "cv")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	home, err := s.homeService.Create(c.UserContext(), service.CreateHomeInput{
		Motto: c.FormValue("motto"),
		CV:    cv,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(home)
}

// UpdateHome replaces the motto and optionally the CV document.
func (s *Server) UpdateHome(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	cv, err := formFileUpload(c, "cv")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	result, err := s.homeService.Update(c.UserContext(), id, service.UpdateHomeInput{
		Motto: c.FormValue("motto"),
		CV:    cv,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	if result.NoChange {
		return c.JSON(fiber.Map{"message": "No changes detected", "home": result.Home})
	}
	return c.JSON(result.Home)
}

// DeleteHome removes the home section and its CV document.
func (s *Server) DeleteHome(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	outcome, err := s.homeService.Delete(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return deleteResponse(c, "Home section deleted", outcome)
}
