// Package assetstore is the gateway to the remote object store holding the
// site's binary assets (CV PDFs, skill icons, social photos, project images).
// Rows in the database hold only the returned URL references; the store owns
// the bytes.
package assetstore

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/observability"
)

// Logical upload folders, one per resource type.
const (
	FolderSkills      = "skills"
	FolderProjects    = "projects"
	FolderSocialMedia = "social-media-photos"
	FolderCVFiles     = "cv_files"
)

// Store uploads and deletes remote assets. Implementations must treat Remove
// as idempotent: removing an unknown reference is not an error.
type Store interface {
	// Store uploads the payload under the given folder and returns a durable
	// URL reference.
	Store(ctx context.Context, file *models.FileUpload, folder string) (string, error)
	// Remove deletes the asset behind a previously returned reference.
	Remove(ctx context.Context, reference string) error
}

// CleanupOutcome reports the result of a best-effort deletion of a superseded
// or orphaned asset. It is carried alongside the primary result so callers can
// observe cleanup failures without conflating them with the operation's
// success.
type CleanupOutcome struct {
	Attempted bool
	Err       error
}

// Failed reports whether a cleanup was attempted and did not succeed.
func (o CleanupOutcome) Failed() bool {
	return o.Attempted && o.Err != nil
}

// Replace removes the old reference (best effort) and uploads the new payload.
// The upload must succeed; a failed removal is recorded in the outcome and in
// the cleanup-failure metric but never blocks the upload.
func Replace(ctx context.Context, s Store, oldReference string, file *models.FileUpload, folder string) (string, CleanupOutcome, error) {
	var outcome CleanupOutcome
	if oldReference != "" {
		outcome.Attempted = true
		if err := s.Remove(ctx, oldReference); err != nil {
			outcome.Err = err
			observability.AssetCleanupFailures.Inc()
		}
	}

	newRef, err := s.Store(ctx, file, folder)
	if err != nil {
		return "", outcome, err
	}
	return newRef, outcome, nil
}

// BestEffortRemove deletes a reference and reports the outcome without ever
// returning an error. Used after row deletions, where an asset leak is
// preferable to failing the committed delete.
func BestEffortRemove(ctx context.Context, s Store, reference string) CleanupOutcome {
	if reference == "" {
		return CleanupOutcome{}
	}
	outcome := CleanupOutcome{Attempted: true}
	if err := s.Remove(ctx, reference); err != nil {
		outcome.Err = err
		observability.AssetCleanupFailures.Inc()
	}
	return outcome
}
