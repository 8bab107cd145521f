package service

import (
	"context"
	"testing"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkService(t *testing.T) *WorkExperienceService {
	db := testutil.NewTestDB(t)
	return NewWorkExperienceService(repository.NewWorkExperienceRepository(db))
}

func TestWorkExperienceService_CreateOngoing(t *testing.T) {
	svc := newWorkService(t)

	entry, err := svc.Create(context.Background(), WorkExperienceInput{
		CompanyName: "Acme Corp",
		Position:    "Backend Engineer",
		StartDate:   "2023-01-15",
	})
	require.NoError(t, err)
	assert.Nil(t, entry.EndDate)
	assert.True(t, entry.IsPresent)
}

func TestWorkExperienceService_CreateFinished(t *testing.T) {
	svc := newWorkService(t)

	entry, err := svc.Create(context.Background(), WorkExperienceInput{
		CompanyName: "Acme Corp",
		Position:    "Backend Engineer",
		StartDate:   "2020-01-15",
		EndDate:     "2022-06-30",
		Description: "Built the billing pipeline.",
	})
	require.NoError(t, err)
	require.NotNil(t, entry.EndDate)
	assert.False(t, entry.IsPresent)
	require.NotNil(t, entry.Description)
}

func TestWorkExperienceService_EndDateBeforeStartRejected(t *testing.T) {
	svc := newWorkService(t)

	_, err := svc.Create(context.Background(), WorkExperienceInput{
		CompanyName: "Acme Corp",
		Position:    "Backend Engineer",
		StartDate:   "2022-06-30",
		EndDate:     "2020-01-15",
	})
	require.Error(t, err)
	appErr := err.(*models.AppError)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	require.NotEmpty(t, appErr.Fields)
	assert.Equal(t, "endDate", appErr.Fields[0].Field)
}

func TestWorkExperienceService_FutureEndDateRejected(t *testing.T) {
	svc := newWorkService(t)

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	_, err := svc.Create(context.Background(), WorkExperienceInput{
		CompanyName: "Acme Corp",
		Position:    "Backend Engineer",
		StartDate:   "2020-01-15",
		EndDate:     future,
	})
	require.Error(t, err)
	assert.Equal(t, "endDate", err.(*models.AppError).Fields[0].Field)
}

func TestWorkExperienceService_BadDateFormatRejected(t *testing.T) {
	svc := newWorkService(t)

	_, err := svc.Create(context.Background(), WorkExperienceInput{
		CompanyName: "Acme Corp",
		Position:    "Backend Engineer",
		StartDate:   "15/01/2020",
	})
	require.Error(t, err)
	assert.Equal(t, "startDate", err.(*models.AppError).Fields[0].Field)
}

func TestWorkExperienceService_UpdateClearsEndDate(t *testing.T) {
	svc := newWorkService(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, WorkExperienceInput{
		CompanyName: "Acme Corp",
		Position:    "Backend Engineer",
		StartDate:   "2020-01-15",
		EndDate:     "2022-06-30",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, entry.ID, WorkExperienceInput{
		CompanyName: "Acme Corp",
		Position:    "Backend Engineer",
		StartDate:   "2020-01-15",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.EndDate)
	assert.True(t, updated.IsPresent)
}

func TestWorkExperienceService_ListOngoingFirst(t *testing.T) {
	svc := newWorkService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, WorkExperienceInput{
		CompanyName: "Old Corp",
		Position:    "Engineer One",
		StartDate:   "2018-01-01",
		EndDate:     "2020-01-01",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, WorkExperienceInput{
		CompanyName: "New Corp",
		Position:    "Engineer Two",
		StartDate:   "2021-01-01",
	})
	require.NoError(t, err)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "New Corp", entries[0].CompanyName)
}

func TestWorkExperienceService_DeleteMissing(t *testing.T) {
	svc := newWorkService(t)

	err := svc.Delete(context.Background(), "aab6c5e3-0000-4000-8000-000000000000")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", err.(*models.AppError).Code)
}
