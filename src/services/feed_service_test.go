package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/openlance/marketplace-go/src/config"
	"github.com/openlance/marketplace-go/src/dto"
	"github.com/openlance/marketplace-go/src/models"
	"github.com/openlance/marketplace-go/src/repositories"
	"github.com/openlance/marketplace-go/src/repositories/mock_repositories"
	"github.com/openlance/marketplace-go/src/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupFeedMocks(t *testing.T) (*services.FeedService,
	*mock_repositories.MockJobRepo,
	*mock_repositories.MockApplicationRepo,
	*mock_repositories.MockSettingsRepo,
	*mock_repositories.MockRotationRepo) {

	if config.FrontPageSize == 0 {
		config.FrontPageSize = 20
		config.DefaultRotationHours = 8
		config.FeedLimitMax = 100
	}

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockJob := mock_repositories.NewMockJobRepo(ctrl)
	mockApp := mock_repositories.NewMockApplicationRepo(ctrl)
	mockSettings := mock_repositories.NewMockSettingsRepo(ctrl)
	mockRotation := mock_repositories.NewMockRotationRepo(ctrl)

	repos := &repositories.Repos{
		Job:         mockJob,
		Application: mockApp,
		Settings:    mockSettings,
		Rotation:    mockRotation,
	}

	svc := services.NewFeedService(repos, zap.NewNop())
	return svc, mockJob, mockApp, mockSettings, mockRotation
}

func expectCounts(mockApp *mock_repositories.MockApplicationRepo, jobs ...models.Job) {
	for _, j := range jobs {
		mockApp.EXPECT().CountAccepted(j.ID).Return(0, nil)
		mockApp.EXPECT().CountCompleted(j.ID).Return(0, nil)
	}
}

func feedOrder(feed *dto.FeedResponse) []uint {
	ids := make([]uint, 0, len(feed.Jobs))
	for _, j := range feed.Jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func TestGetFeedDisabledKeepsRepositoryOrder(t *testing.T) {
	svc, mockJob, mockApp, mockSettings, _ := setupFeedMocks(t)

	jobs := []models.Job{{ID: 3}, {ID: 1}, {ID: 2}}
	mockSettings.EXPECT().Get().Return(models.AlgorithmSettings{
		AlgorithmType: models.AlgorithmNewestFirst, IsEnabled: false, RotationHours: 8,
	}, nil)
	mockJob.EXPECT().ListOpen(gomock.Any()).Return(jobs, nil)
	expectCounts(mockApp, jobs...)

	feed, err := svc.GetFeed(dto.FeedQuery{})
	require.NoError(t, err)
	assert.Equal(t, []uint{3, 1, 2}, feedOrder(feed))
	assert.False(t, feed.Algorithm.Enabled)
}

func TestGetFeedSettingsFailureFallsBackToDefaults(t *testing.T) {
	svc, mockJob, mockApp, mockSettings, _ := setupFeedMocks(t)

	t0 := time.Now()
	newer := models.Job{ID: 2, CreatedAt: t0, UpdatedAt: t0}
	older := models.Job{ID: 1, CreatedAt: t0.Add(-time.Hour), UpdatedAt: t0.Add(-time.Hour)}

	mockSettings.EXPECT().Get().Return(models.AlgorithmSettings{}, errors.New("settings store down"))
	mockJob.EXPECT().ListOpen(gomock.Any()).Return([]models.Job{older, newer}, nil)
	expectCounts(mockApp, older, newer)

	feed, err := svc.GetFeed(dto.FeedQuery{})
	require.NoError(t, err)

	// Defaults: newest_first, enabled, 8h rotation window.
	assert.Equal(t, models.AlgorithmNewestFirst, feed.Algorithm.Type)
	assert.True(t, feed.Algorithm.Enabled)
	assert.Equal(t, float64(8), feed.Algorithm.RotationHours)
	assert.Equal(t, []uint{2, 1}, feedOrder(feed))
}

func TestGetFeedStampFailureStillReturnsRankedOrder(t *testing.T) {
	svc, mockJob, mockApp, mockSettings, mockRotation := setupFeedMocks(t)

	now := time.Now()
	shown := models.Job{ID: 1}
	fresh := models.Job{ID: 2}

	mockSettings.EXPECT().Get().Return(models.AlgorithmSettings{
		AlgorithmType: models.AlgorithmTimeRotation, IsEnabled: true, RotationHours: 4,
	}, nil)
	mockJob.EXPECT().ListOpen(gomock.Any()).Return([]models.Job{shown, fresh}, nil)
	mockRotation.EXPECT().ListAll().Return([]models.RotationRecord{
		{JobID: 1, LastFrontPageAt: now.Add(-time.Minute)},
	}, nil)
	mockRotation.EXPECT().Stamp([]uint{2, 1}, float64(4), gomock.Any()).
		Return(errors.New("rotation store down"))
	expectCounts(mockApp, shown, fresh)

	feed, err := svc.GetFeed(dto.FeedQuery{})
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 1}, feedOrder(feed))
	assert.Equal(t, models.AlgorithmTimeRotation, feed.Algorithm.Type)
}

func TestPreviewDoesNotStamp(t *testing.T) {
	svc, mockJob, mockApp, mockSettings, mockRotation := setupFeedMocks(t)

	jobs := []models.Job{{ID: 1}, {ID: 2}}
	mockSettings.EXPECT().Get().Return(models.AlgorithmSettings{
		AlgorithmType: models.AlgorithmTimeRotation, IsEnabled: true, RotationHours: 8,
	}, nil)
	mockJob.EXPECT().ListOpen(gomock.Any()).Return(jobs, nil)
	mockRotation.EXPECT().ListAll().Return(nil, nil)
	expectCounts(mockApp, jobs...)
	// No Stamp expectation: a preview must stay side-effect free.

	_, err := svc.Preview(dto.FeedQuery{})
	require.NoError(t, err)
}

func TestGetFeedLimitValidation(t *testing.T) {
	cases := []struct {
		name  string
		limit string
		want  int
	}{
		{"valid limit passes through", "25", 25},
		{"out of range is ignored", "500", 0},
		{"non-integer is ignored", "abc", 0},
		{"zero is ignored", "0", 0},
		{"negative is ignored", "-3", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockJob, _, mockSettings, _ := setupFeedMocks(t)

			mockSettings.EXPECT().Get().Return(models.AlgorithmSettings{
				AlgorithmType: models.AlgorithmNewestFirst, IsEnabled: true, RotationHours: 8,
			}, nil)
			mockJob.EXPECT().ListOpen(repositories.JobFilters{Limit: tc.want}).Return(nil, nil)

			_, err := svc.GetFeed(dto.FeedQuery{Limit: tc.limit})
			require.NoError(t, err)
		})
	}
}
