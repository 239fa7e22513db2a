package services_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openlance/marketplace-go/src/models"
	"github.com/openlance/marketplace-go/src/repositories"
	"github.com/openlance/marketplace-go/src/repositories/mock_repositories"
	"github.com/openlance/marketplace-go/src/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupJobMocks(t *testing.T) (*services.JobService,
	*mock_repositories.MockJobRepo,
	*mock_repositories.MockApplicationRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockJob := mock_repositories.NewMockJobRepo(ctrl)
	mockApp := mock_repositories.NewMockApplicationRepo(ctrl)

	repos := &repositories.Repos{
		Job:         mockJob,
		Application: mockApp,
	}

	svc := services.NewJobService(repos, zap.NewNop())
	return svc, mockJob, mockApp
}

func TestResolveStatus(t *testing.T) {
	cases := []struct {
		name      string
		needed    int
		accepted  int
		completed int
		want      models.JobStatus
	}{
		{"all slots filled, none completed", 3, 3, 0, models.JobStatusInProgress},
		{"all slots filled and completed", 3, 3, 3, models.JobStatusCompleted},
		{"slots remaining", 3, 2, 0, models.JobStatusOpen},
		{"no applicants", 1, 0, 0, models.JobStatusOpen},
		{"single slot done", 1, 1, 1, models.JobStatusCompleted},
		{"completed lags accepted", 2, 2, 1, models.JobStatusInProgress},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := services.ResolveStatus(tc.needed, tc.accepted, tc.completed)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRecomputeStatusPersistsOnlyOnChange(t *testing.T) {
	svc, mockJob, mockApp := setupJobMocks(t)

	open := models.Job{ID: 1, WorkersNeeded: 2, Status: models.JobStatusOpen}
	inProgress := open
	inProgress.Status = models.JobStatusInProgress

	// First pass: counts push the job to in_progress, write expected.
	mockJob.EXPECT().GetByID(uint(1)).Return(open, nil)
	mockApp.EXPECT().CountAccepted(uint(1)).Return(2, nil)
	mockApp.EXPECT().CountCompleted(uint(1)).Return(0, nil)
	mockJob.EXPECT().SetStatus(uint(1), models.JobStatusInProgress).Return(nil)

	status, err := svc.RecomputeStatus(1)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInProgress, status)

	// Second pass with identical counts: same result, no write.
	mockJob.EXPECT().GetByID(uint(1)).Return(inProgress, nil)
	mockApp.EXPECT().CountAccepted(uint(1)).Return(2, nil)
	mockApp.EXPECT().CountCompleted(uint(1)).Return(0, nil)

	status, err = svc.RecomputeStatus(1)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusInProgress, status)
}

func TestUpdateWorkersNeededRejectsShrinkBelowAccepted(t *testing.T) {
	svc, mockJob, mockApp := setupJobMocks(t)

	job := models.Job{ID: 7, OwnerID: 1, WorkersNeeded: 3, Status: models.JobStatusOpen}
	mockJob.EXPECT().GetByID(uint(7)).Return(job, nil)
	mockApp.EXPECT().CountAccepted(uint(7)).Return(2, nil)

	_, err := svc.UpdateWorkersNeeded(7, 1, 1)

	var validation *services.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "cannot reduce workers below accepted applications", validation.Reason)
}

func TestUpdateWorkersNeededForbiddenForNonOwner(t *testing.T) {
	svc, mockJob, _ := setupJobMocks(t)

	job := models.Job{ID: 7, OwnerID: 1, WorkersNeeded: 3}
	mockJob.EXPECT().GetByID(uint(7)).Return(job, nil)

	_, err := svc.UpdateWorkersNeeded(7, 99, 5)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestUpdateWorkersNeededReopensCompletedJob(t *testing.T) {
	svc, mockJob, mockApp := setupJobMocks(t)

	done := models.Job{ID: 4, OwnerID: 1, WorkersNeeded: 2, Status: models.JobStatusCompleted}
	grown := done
	grown.WorkersNeeded = 3

	mockJob.EXPECT().GetByID(uint(4)).Return(done, nil)
	mockApp.EXPECT().CountAccepted(uint(4)).Return(2, nil)
	mockJob.EXPECT().Update(gomock.Any()).Return(nil)

	// Recompute sees the grown capacity and reopens the job.
	mockJob.EXPECT().GetByID(uint(4)).Return(grown, nil)
	mockApp.EXPECT().CountAccepted(uint(4)).Return(2, nil)
	mockApp.EXPECT().CountCompleted(uint(4)).Return(2, nil)
	mockJob.EXPECT().SetStatus(uint(4), models.JobStatusOpen).Return(nil)

	job, err := svc.UpdateWorkersNeeded(4, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, 3, job.WorkersNeeded)
}
