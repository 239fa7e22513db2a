package services

import (
	"errors"
	"time"

	"github.com/openlance/marketplace-go/src/dto"
	"github.com/openlance/marketplace-go/src/models"
	"github.com/openlance/marketplace-go/src/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Availability reason strings surfaced to clients.
const (
	ReasonNotFound         = "not found"
	ReasonOwnJob           = "cannot apply to own job"
	ReasonNoLongerAccepts  = "no longer accepting applications"
	ReasonAlreadyApplied   = "already applied"
	ReasonNotPending       = "application is not pending"
	ReasonNotAccepted      = "application is not accepted"
	ReasonOwnerActionsOnly = "only the job owner can manage applications"
)

// Availability is the capacity verdict for a job and optional applicant.
type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	SpotsLeft int    `json:"spots_left"`
}

type ApplicationService struct {
	repos *repositories.Repos
	jobs  *JobService
	log   *zap.Logger
}

func NewApplicationService(repos *repositories.Repos, jobs *JobService, log *zap.Logger) *ApplicationService {
	return &ApplicationService{repos: repos, jobs: jobs, log: log}
}

// CheckAvailability evaluates the admission rules in order, first match
// wins. Pure read; the result is a UX hint, not the enforcement point
// (see AcceptWithinCapacity). applicantID of 0 skips the actor-specific
// rules, which serves anonymous feed rendering.
func (s *ApplicationService) CheckAvailability(jobID, applicantID uint) (Availability, error) {
	job, err := s.repos.Job.GetByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Availability{Available: false, Reason: ReasonNotFound}, nil
		}
		return Availability{}, err
	}

	if applicantID != 0 && applicantID == job.OwnerID {
		return Availability{Available: false, Reason: ReasonOwnJob}, nil
	}

	accepted, err := s.repos.Application.CountAccepted(jobID)
	if err != nil {
		return Availability{}, err
	}
	left := job.WorkersNeeded - accepted
	if left <= 0 {
		return Availability{Available: false, Reason: ReasonNoLongerAccepts}, nil
	}

	if applicantID != 0 {
		exists, err := s.repos.Application.Exists(jobID, applicantID)
		if err != nil {
			return Availability{}, err
		}
		if exists {
			return Availability{Available: false, Reason: ReasonAlreadyApplied}, nil
		}
	}

	return Availability{Available: true, SpotsLeft: left}, nil
}

// Apply creates a pending application after the admission check passes.
func (s *ApplicationService) Apply(jobID, applicantID uint, input dto.CreateApplicationDTO) (*models.Application, error) {
	availability, err := s.CheckAvailability(jobID, applicantID)
	if err != nil {
		return nil, err
	}
	if !availability.Available {
		if availability.Reason == ReasonNotFound {
			return nil, ErrNotFound
		}
		return nil, &ValidationError{Reason: availability.Reason}
	}

	app := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: input.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}
	return app, s.repos.Application.Create(app)
}

// Accept admits a pending applicant. Capacity is re-validated inside the
// repository write, so losing a concurrent race surfaces as ordinary
// capacity exhaustion rather than a server error.
func (s *ApplicationService) Accept(appID, actorID uint) (*models.Application, error) {
	app, job, err := s.ownedApplication(appID, actorID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationStatusPending {
		return nil, &ValidationError{Reason: ReasonNotPending}
	}

	ok, err := s.repos.Application.AcceptWithinCapacity(app.ID, job.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &CapacityError{Reason: ReasonNoLongerAccepts}
	}

	if _, err := s.jobs.RecomputeStatus(job.ID); err != nil {
		return nil, err
	}
	refreshed, err := s.repos.Application.GetByID(app.ID)
	if err != nil {
		return nil, err
	}
	return &refreshed, nil
}

func (s *ApplicationService) Reject(appID, actorID uint) (*models.Application, error) {
	app, _, err := s.ownedApplication(appID, actorID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationStatusPending {
		return nil, &ValidationError{Reason: ReasonNotPending}
	}

	now := time.Now()
	app.Status = models.ApplicationStatusRejected
	app.RejectedAt = &now
	return &app, s.repos.Application.Update(&app)
}

// Complete marks an accepted applicant's work as approved and recomputes
// the job status, which may flip the job to completed.
func (s *ApplicationService) Complete(appID, actorID uint) (*models.Application, error) {
	app, job, err := s.ownedApplication(appID, actorID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationStatusAccepted {
		return nil, &ValidationError{Reason: ReasonNotAccepted}
	}

	now := time.Now()
	app.Status = models.ApplicationStatusCompleted
	app.CompletedAt = &now
	if err := s.repos.Application.Update(&app); err != nil {
		return nil, err
	}

	if _, err := s.jobs.RecomputeStatus(job.ID); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) ownedApplication(appID, actorID uint) (models.Application, models.Job, error) {
	app, err := s.repos.Application.GetByID(appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Application{}, models.Job{}, ErrNotFound
		}
		return models.Application{}, models.Job{}, err
	}

	job, err := s.repos.Job.GetByID(app.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Application{}, models.Job{}, ErrNotFound
		}
		return models.Application{}, models.Job{}, err
	}
	if job.OwnerID != actorID {
		return models.Application{}, models.Job{}, ErrForbidden
	}
	return app, job, nil
}
