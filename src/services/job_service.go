package services

import (
	"encoding/json"
	"errors"

	"github.com/openlance/marketplace-go/src/dto"
	"github.com/openlance/marketplace-go/src/models"
	"github.com/openlance/marketplace-go/src/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type JobService struct {
	repos *repositories.Repos
	log   *zap.Logger
}

func NewJobService(repos *repositories.Repos, log *zap.Logger) *JobService {
	return &JobService{repos: repos, log: log}
}

// ResolveStatus derives a job's lifecycle status from its slot counts.
// Deterministic and idempotent.
func ResolveStatus(workersNeeded, acceptedCount, completedCount int) models.JobStatus {
	if acceptedCount >= workersNeeded && completedCount >= workersNeeded {
		return models.JobStatusCompleted
	}
	if acceptedCount >= workersNeeded {
		return models.JobStatusInProgress
	}
	return models.JobStatusOpen
}

// RecomputeStatus re-derives and persists the job status. The write is
// skipped when the status is unchanged. Invoked after acceptance,
// completion approval, and worker-count changes.
func (s *JobService) RecomputeStatus(jobID uint) (models.JobStatus, error) {
	job, err := s.repos.Job.GetByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	accepted, err := s.repos.Application.CountAccepted(jobID)
	if err != nil {
		return "", err
	}
	completed, err := s.repos.Application.CountCompleted(jobID)
	if err != nil {
		return "", err
	}

	next := ResolveStatus(job.WorkersNeeded, accepted, completed)
	if next == job.Status {
		return next, nil
	}
	if err := s.repos.Job.SetStatus(jobID, next); err != nil {
		return "", err
	}
	s.log.Info("job status recomputed",
		zap.Uint("job_id", jobID),
		zap.String("from", string(job.Status)),
		zap.String("to", string(next)))
	return next, nil
}

func (s *JobService) CreateJob(ownerID uint, input dto.CreateJobDTO) (*models.Job, error) {
	skills, err := json.Marshal(input.Skills)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		OwnerID:       ownerID,
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Location:      input.Location,
		Remote:        input.Remote,
		BudgetAmount:  input.BudgetAmount,
		Skills:        skills,
		WorkersNeeded: input.WorkersNeeded,
		Status:        models.JobStatusOpen,
	}
	return job, s.repos.Job.Create(job)
}

// GetJob returns the job with its derived capacity numbers.
func (s *JobService) GetJob(jobID uint) (*dto.FeedJob, error) {
	job, err := s.repos.Job.GetByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	accepted, err := s.repos.Application.CountAccepted(jobID)
	if err != nil {
		return nil, err
	}
	completed, err := s.repos.Application.CountCompleted(jobID)
	if err != nil {
		return nil, err
	}

	return &dto.FeedJob{
		Job:            job,
		AcceptedCount:  accepted,
		CompletedCount: completed,
		SpotsLeft:      spotsLeft(job.WorkersNeeded, accepted),
	}, nil
}

// UpdateWorkersNeeded changes a job's worker capacity. Shrinking below
// the already-committed worker count is rejected with no state change;
// growing a completed job may reopen it via the status recompute.
func (s *JobService) UpdateWorkersNeeded(jobID, actorID uint, workersNeeded int) (*models.Job, error) {
	job, err := s.repos.Job.GetByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.OwnerID != actorID {
		return nil, ErrForbidden
	}

	accepted, err := s.repos.Application.CountAccepted(jobID)
	if err != nil {
		return nil, err
	}
	if workersNeeded < accepted {
		return nil, &ValidationError{Reason: "cannot reduce workers below accepted applications"}
	}

	job.WorkersNeeded = workersNeeded
	if err := s.repos.Job.Update(&job); err != nil {
		return nil, err
	}

	status, err := s.RecomputeStatus(jobID)
	if err != nil {
		return nil, err
	}
	job.Status = status
	return &job, nil
}

func spotsLeft(workersNeeded, acceptedCount int) int {
	if left := workersNeeded - acceptedCount; left > 0 {
		return left
	}
	return 0
}
