// Package testutil provides shared fixtures for service and handler tests:
// an in-memory database and a recording asset store stub.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"portfolio/internal/database"
	"portfolio/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory SQLite database with the full schema.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// StoreCall records a single upload request made against the FakeStore.
type StoreCall struct {
	Filename    string
	ContentType string
	Folder      string
	Size        int64
}

// FakeStore is an in-memory asset store that records every call. Errors can
// be injected per method to drive failure paths.
type FakeStore struct {
	mu          sync.Mutex
	StoreErr    error
	RemoveErr   error
	StoreCalls  []StoreCall
	RemoveCalls []string
	counter     int
}

// NewFakeStore returns an empty recording store.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) Store(_ context.Context, file *models.FileUpload, folder string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.StoreErr != nil {
		return "", f.StoreErr
	}
	f.counter++
	f.StoreCalls = append(f.StoreCalls, StoreCall{
		Filename:    file.Filename,
		ContentType: file.ContentType,
		Folder:      folder,
		Size:        file.Size(),
	})
	return fmt.Sprintf("https://assets.test/%s/upload/v1/%s/ref-%d", folder, folder, f.counter), nil
}

func (f *FakeStore) Remove(_ context.Context, reference string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	f.RemoveCalls = append(f.RemoveCalls, reference)
	return nil
}

// StoreCount returns how many uploads succeeded.
func (f *FakeStore) StoreCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.StoreCalls)
}

// RemoveCount returns how many removals succeeded.
func (f *FakeStore) RemoveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.RemoveCalls)
}

// PNGUpload builds a small PNG payload of the given size.
func PNGUpload(name string, size int) *models.FileUpload {
	return &models.FileUpload{
		Filename:    name,
		ContentType: "image/png",
		Content:     make([]byte, size),
	}
}

// PDFUpload builds a PDF payload of the given size.
func PDFUpload(name string, size int) *models.FileUpload {
	return &models.FileUpload{
		Filename:    name,
		ContentType: "application/pdf",
		Content:     make([]byte, size),
	}
}
