package repositories

import (
	"time"

	"github.com/openlance/marketplace-go/src/db"
	"github.com/openlance/marketplace-go/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepo interface {
	Create(app *models.Application) error
	GetByID(id uint) (models.Application, error)
	Update(app *models.Application) error
	Exists(jobID, applicantID uint) (bool, error)
	CountAccepted(jobID uint) (int, error)
	CountCompleted(jobID uint) (int, error)
	AcceptWithinCapacity(appID, jobID uint) (bool, error)
}

type DBApplicationRepo struct{}

func (r *DBApplicationRepo) Create(app *models.Application) error {
	return db.DB.Create(app).Error
}

func (r *DBApplicationRepo) GetByID(id uint) (models.Application, error) {
	var app models.Application
	err := db.DB.First(&app, id).Error
	return app, err
}

func (r *DBApplicationRepo) Update(app *models.Application) error {
	return db.DB.Save(app).Error
}

func (r *DBApplicationRepo) Exists(jobID, applicantID uint) (bool, error) {
	var count int64
	err := db.DB.Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

// CountAccepted counts workers holding a slot: a completed worker was
// accepted and still occupies one.
func (r *DBApplicationRepo) CountAccepted(jobID uint) (int, error) {
	var count int64
	err := db.DB.Model(&models.Application{}).
		Where("job_id = ? AND status IN ?", jobID,
			[]models.ApplicationStatus{models.ApplicationStatusAccepted, models.ApplicationStatusCompleted}).
		Count(&count).Error
	return int(count), err
}

func (r *DBApplicationRepo) CountCompleted(jobID uint) (int, error) {
	var count int64
	err := db.DB.Model(&models.Application{}).
		Where("job_id = ? AND status = ?", jobID, models.ApplicationStatusCompleted).
		Count(&count).Error
	return int(count), err
}

// AcceptWithinCapacity transitions a pending application to accepted only
// if the job still has a free slot. The job row is locked for the duration
// of the transaction so two concurrent acceptances on the same job
// serialize and re-check the count; the pre-check in the service layer is
// a UX hint, this is the enforcement point. Returns false when the slot
// race was lost or the application is no longer pending.
func (r *DBApplicationRepo) AcceptWithinCapacity(appID, jobID uint) (bool, error) {
	accepted := false
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&job, jobID).Error; err != nil {
			return err
		}

		var taken int64
		if err := tx.Model(&models.Application{}).
			Where("job_id = ? AND status IN ?", jobID,
				[]models.ApplicationStatus{models.ApplicationStatusAccepted, models.ApplicationStatusCompleted}).
			Count(&taken).Error; err != nil {
			return err
		}
		if int(taken) >= job.WorkersNeeded {
			return nil
		}

		now := time.Now()
		res := tx.Model(&models.Application{}).
			Where("id = ? AND status = ?", appID, models.ApplicationStatusPending).
			Updates(map[string]interface{}{
				"status":      models.ApplicationStatusAccepted,
				"accepted_at": now,
				"updated_at":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		accepted = res.RowsAffected == 1
		return nil
	})
	return accepted, err
}
