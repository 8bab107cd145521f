package server

import (
	"portfolio/internal/models"
	"portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetSkills lists all skills.
func (s *Server) GetSkills(c *fiber.Ctx) error {
	skills, err := s.skillService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(skills)
}

// GetSkill returns a single skill.
func (s *Server) GetSkill(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	skill, err := s.skillService.Get(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(skill)
}

// CreateSkill creates a skill with its icon.
func (s *Server) CreateSkill(c *fiber.Ctx) error {
	photo, err := formFileUpload(c, "photo")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	skill, err := s.skillService.Create(c.UserContext(), service.CreateSkillInput{
		Name:  c.FormValue("name"),
		Photo: photo,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

// UpdateSkill replaces the skill's name and optionally its icon.
func (s *Server) UpdateSkill(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	photo, err := formFileUpload(c, "photo")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	result, err := s.skillService.Update(c.UserContext(), id, service.UpdateSkillInput{
		Name:  c.FormValue("name"),
		Photo: photo,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	if result.NoChange {
		return c.JSON(fiber.Map{"message": "No changes detected", "skill": result.Skill})
	}
	return c.JSON(result.Skill)
}

// DeleteSkill removes a skill and its icon.
func (s *Server) DeleteSkill(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	outcome, err := s.skillService.Delete(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return deleteResponse(c, "Skill deleted", outcome)
}
