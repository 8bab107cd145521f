package server

import (
	"portfolio/internal/models"
	"portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSocialMediaLinks lists all social media links.
func (s *Server) GetSocialMediaLinks(c *fiber.Ctx) error {
	links, err := s.socialService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(links)
}

// GetSocialMediaLink returns a single social media link.
func (s *Server) GetSocialMediaLink(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	link, err := s.socialService.Get(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(link)
}

// CreateSocialMediaLink creates a social media link with its photo.
func (s *Server) CreateSocialMediaLink(c *fiber.Ctx) error {
	photo, err := formFileUpload(c, "photo")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	link, err := s.socialService.Create(c.UserContext(), service.CreateSocialMediaInput{
		Platform: c.FormValue("platform"),
		URL:      c.FormValue("url"),
		Photo:    photo,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// PatchSocialMediaLink partially updates a social media link. Absent form
// fields keep their stored values.
func (s *Server) PatchSocialMediaLink(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	photo, err := formFileUpload(c, "photo")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	in := service.PatchSocialMediaInput{Photo: photo}
	if form, err := c.MultipartForm(); err == nil {
		if vals := form.Value["platform"]; len(vals) > 0 {
			in.Platform = &vals[0]
		}
		if vals := form.Value["url"]; len(vals) > 0 {
			in.URL = &vals[0]
		}
	}

	result, err := s.socialService.Patch(c.UserContext(), id, in)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	if result.NoChange {
		return c.JSON(fiber.Map{"message": "No changes detected", "socialMedia": result.Link})
	}
	return c.JSON(result.Link)
}

// DeleteSocialMediaLink removes a social media link and its photo.
func (s *Server) DeleteSocialMediaLink(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	outcome, err := s.socialService.Delete(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return deleteResponse(c, "Social media link deleted", outcome)
}
