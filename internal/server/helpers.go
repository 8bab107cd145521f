package server

import (
	"errors"
	"io"
	"mime/multipart"

	"portfolio/internal/assetstore"
	"portfolio/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// mapServiceError translates an AppError code to its HTTP status.
func mapServiceError(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case "VALIDATION_ERROR":
		return fiber.StatusBadRequest
	case "CONFLICT":
		return fiber.StatusConflict
	case "NOT_FOUND":
		return fiber.StatusNotFound
	case "UNAUTHORIZED":
		return fiber.StatusUnauthorized
	default:
		// UPLOAD_FAILED, PERSISTENCE_ERROR, INTERNAL_ERROR
		return fiber.StatusInternalServerError
	}
}

// parseUUID extracts a route parameter as a UUID string.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseUUID(c *fiber.Ctx, param string) (string, error) {
	id := c.Params(param)
	if _, err := uuid.Parse(id); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return "", errResponseWritten
	}
	return id, nil
}

// formFileUpload reads an optional multipart file field into memory. A missing
// field yields (nil, nil); services decide whether the file is required.
func formFileUpload(c *fiber.Ctx, field string) (*models.FileUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return readFileHeader(fh)
}

func readFileHeader(fh *multipart.FileHeader) (*models.FileUpload, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, models.NewValidationError("Unable to read uploaded file")
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, models.NewValidationError("Unable to read uploaded file")
	}

	return &models.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// deleteResponse writes the standard delete acknowledgement, flagging a
// failed asset cleanup without turning it into an error status.
func deleteResponse(c *fiber.Ctx, message string, outcome assetstore.CleanupOutcome) error {
	body := fiber.Map{"message": message}
	if outcome.Failed() {
		body["warning"] = "asset cleanup failed"
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
