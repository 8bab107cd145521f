// Package service holds the orchestrators behind the HTTP handlers: each
// operation validates its typed input, reconciles the companion asset with the
// store, and persists through the repositories. Services return AppError
// values; handlers only translate them to status codes.
package service

import (
	"errors"

	"portfolio/internal/models"

	"gorm.io/gorm"
)

// lookupErr maps a repository read failure to the API taxonomy.
func lookupErr(err error, resource string, id interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return models.NewPersistenceError(err)
}

// isNotFound reports whether a repository error means the row is absent.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
