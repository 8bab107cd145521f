package server

import (
	"portfolio/internal/models"
	"portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

type workExperienceRequest struct {
	CompanyName string `json:"companyName" form:"companyName"`
	Position    string `json:"position" form:"position"`
	StartDate   string `json:"startDate" form:"startDate"`
	EndDate     string `json:"endDate" form:"endDate"`
	Description string `json:"description" form:"description"`
}

func (r workExperienceRequest) toInput() service.WorkExperienceInput {
	return service.WorkExperienceInput{
		CompanyName: r.CompanyName,
		Position:    r.Position,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
	}
}

// GetWorkExperiences lists the work history, ongoing positions first.
func (s *Server) GetWorkExperiences(c *fiber.Ctx) error {
	entries, err := s.workService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(entries)
}

// GetWorkExperience returns a single work history entry.
func (s *Server) GetWorkExperience(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	entry, err := s.workService.Get(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(entry)
}

// CreateWorkExperience creates a work history entry.
func (s *Server) CreateWorkExperience(c *fiber.Ctx) error {
	var req workExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.workService.Create(c.UserContext(), req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdateWorkExperience replaces a work history entry.
func (s *Server) UpdateWorkExperience(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	var req workExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	entry, err := s.workService.Update(c.UserContext(), id, req.toInput())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(entry)
}

// DeleteWorkExperience removes a work history entry.
func (s *Server) DeleteWorkExperience(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.workService.Delete(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(fiber.Map{"message": "Work experience deleted"})
}
