package service

import (
	"context"
	"testing"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSocialService(t *testing.T) (*SocialMediaService, *testutil.FakeStore) {
	db := testutil.NewTestDB(t)
	store := testutil.NewFakeStore()
	return NewSocialMediaService(repository.NewSocialMediaRepository(db), store), store
}

func seedSocialLink(t *testing.T, svc *SocialMediaService) *models.SocialMedia {
	t.Helper()
	link, err := svc.Create(context.Background(), CreateSocialMediaInput{
		Platform: "GitHub",
		URL:      "https://github.com/someone",
		Photo:    testutil.PNGUpload("github.png", 100),
	})
	require.NoError(t, err)
	return link
}

func TestSocialMediaService_Create(t *testing.T) {
	svc, store := newSocialService(t)

	link := seedSocialLink(t, svc)
	assert.Equal(t, "GitHub", link.Platform)
	assert.Contains(t, link.Photo, "social-media-photos")
	assert.Equal(t, 1, store.StoreCount())
}

func TestSocialMediaService_CreatePhotoSizeLimit(t *testing.T) {
	svc, _ := newSocialService(t)

	_, err := svc.Create(context.Background(), CreateSocialMediaInput{
		Platform: "GitHub",
		URL:      "https://github.com/someone",
		Photo:    testutil.PNGUpload("big.png", 2*1024*1024+1),
	})
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Contains(t, appErr.Fields[0].Message, "2MB")
}

func TestSocialMediaService_CreateDuplicatePlatformConflicts(t *testing.T) {
	svc, _ := newSocialService(t)
	seedSocialLink(t, svc)

	_, err := svc.Create(context.Background(), CreateSocialMediaInput{
		Platform: "GitHub",
		URL:      "https://github.com/other",
		Photo:    testutil.PNGUpload("other.png", 10),
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", err.(*models.AppError).Code)
}

func TestSocialMediaService_PatchPartial(t *testing.T) {
	svc, store := newSocialService(t)
	link := seedSocialLink(t, svc)

	newURL := "https://github.com/renamed"
	result, err := svc.Patch(context.Background(), link.ID, PatchSocialMediaInput{URL: &newURL})
	require.NoError(t, err)
	assert.Equal(t, newURL, result.Link.URL)
	// Untouched fields keep their stored values.
	assert.Equal(t, "GitHub", result.Link.Platform)
	assert.Equal(t, link.Photo, result.Link.Photo)
	assert.Equal(t, 1, store.StoreCount())
}

func TestSocialMediaService_PatchNoFieldsIsNoOp(t *testing.T) {
	svc, store := newSocialService(t)
	link := seedSocialLink(t, svc)

	result, err := svc.Patch(context.Background(), link.ID, PatchSocialMediaInput{})
	require.NoError(t, err)
	assert.True(t, result.NoChange)
	assert.Equal(t, 1, store.StoreCount())
	assert.Equal(t, 0, store.RemoveCount())
}

func TestSocialMediaService_PatchSameValuesIsNoOp(t *testing.T) {
	svc, _ := newSocialService(t)
	link := seedSocialLink(t, svc)

	platform := "GitHub"
	url := "https://github.com/someone"
	result, err := svc.Patch(context.Background(), link.ID, PatchSocialMediaInput{
		Platform: &platform,
		URL:      &url,
	})
	require.NoError(t, err)
	assert.True(t, result.NoChange)
}

func TestSocialMediaService_PatchInvalidURL(t *testing.T) {
	svc, _ := newSocialService(t)
	link := seedSocialLink(t, svc)

	bad := "not a url"
	_, err := svc.Patch(context.Background(), link.ID, PatchSocialMediaInput{URL: &bad})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.(*models.AppError).Code)
}

func TestSocialMediaService_PatchReplacesPhoto(t *testing.T) {
	svc, store := newSocialService(t)
	link := seedSocialLink(t, svc)

	result, err := svc.Patch(context.Background(), link.ID, PatchSocialMediaInput{
		Photo: testutil.PNGUpload("new.png", 10),
	})
	require.NoError(t, err)
	assert.NotEqual(t, link.Photo, result.Link.Photo)
	assert.Equal(t, []string{link.Photo}, store.RemoveCalls)
}

func TestSocialMediaService_DeleteRemovesPhoto(t *testing.T) {
	svc, store := newSocialService(t)
	link := seedSocialLink(t, svc)

	outcome, err := svc.Delete(context.Background(), link.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Attempted)
	assert.Equal(t, []string{link.Photo}, store.RemoveCalls)
}
