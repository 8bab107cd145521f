package assetstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"portfolio/internal/config"
	"portfolio/internal/models"
	"portfolio/internal/observability"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary implements Store against the Cloudinary upload API.
type Cloudinary struct {
	client *cloudinary.Cloudinary
}

// NewCloudinary builds the gateway from the configured credentials.
func NewCloudinary(cfg *config.Config) (*Cloudinary, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, errors.New("cloudinary credentials are not configured")
	}
	client, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	return &Cloudinary{client: client}, nil
}

// Store uploads the payload under folder, keyed by the sanitized original
// filename, and returns the secure delivery URL.
func (c *Cloudinary) Store(ctx context.Context, file *models.FileUpload, folder string) (string, error) {
	res, err := c.client.Upload.Upload(ctx, bytes.NewReader(file.Content), uploader.UploadParams{
		PublicID:     SanitizeFilename(file.Filename),
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		observability.AssetUploads.WithLabelValues(folder, "error").Inc()
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	// The upload API reports some failures in the response body rather than
	// as a transport error.
	if res.Error.Message != "" {
		observability.AssetUploads.WithLabelValues(folder, "error").Inc()
		return "", fmt.Errorf("cloudinary upload rejected: %s", res.Error.Message)
	}

	observability.AssetUploads.WithLabelValues(folder, "ok").Inc()
	return res.SecureURL, nil
}

// Remove deletes the asset referenced by a previously returned URL. A
// reference the store no longer knows is treated as already deleted.
func (c *Cloudinary) Remove(ctx context.Context, reference string) error {
	publicID := PublicIDFromURL(reference)
	if publicID == "" {
		return fmt.Errorf("cannot derive public ID from reference %q", reference)
	}

	res, err := c.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy returned %q for %s", res.Result, publicID)
	}
	return nil
}
