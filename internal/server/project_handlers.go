package server

import (
	"strings"

	"portfolio/internal/models"
	"portfolio/internal/service"

	"github.com/gofiber/fiber/v2"
)

// formSkillIDs collects the skills field from a multipart form. Repeated
// fields and comma-separated values are both accepted.
func formSkillIDs(c *fiber.Ctx) []string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	var ids []string
	for _, raw := range form.Value["skills"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// GetProjects lists all projects with their tech stacks.
func (s *Server) GetProjects(c *fiber.Ctx) error {
	projects, err := s.projectService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(projects)
}

// GetProject returns a single project with its tech stack.
func (s *Server) GetProject(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	project, err := s.projectService.Get(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.JSON(project)
}

// CreateProject creates a project with its tech stack and optional cover
// image.
func (s *Server) CreateProject(c *fiber.Ctx) error {
	image, err := formFileUpload(c, "projectImage")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	project, err := s.projectService.Create(c.UserContext(), service.CreateProjectInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Link:        c.FormValue("link"),
		SkillIDs:    formSkillIDs(c),
		Image:       image,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject replaces the project's fields, tech stack and optionally its
// cover image.
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	image, err := formFileUpload(c, "projectImage")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	result, err := s.projectService.Update(c.UserContext(), id, service.UpdateProjectInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Link:        c.FormValue("link"),
		SkillIDs:    formSkillIDs(c),
		Image:       image,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	if result.NoChange {
		return c.JSON(fiber.Map{"message": "No changes detected", "project": result.Project})
	}
	return c.JSON(result.Project)
}

// DeleteProject removes a project, its tech stack links and its cover image.
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	outcome, err := s.projectService.Delete(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	return deleteResponse(c, "Project deleted", outcome)
}
