package repositories

import (
	"github.com/openlance/marketplace-go/src/db"
	"github.com/openlance/marketplace-go/src/models"
)

// JobFilters narrows the open-jobs listing. Zero values mean "no filter".
// Limit is already validated by the caller; 0 means uncapped.
type JobFilters struct {
	Category  string
	Location  string
	Search    string
	Remote    *bool
	BudgetMin *float64
	BudgetMax *float64
	Limit     int
}

type JobRepo interface {
	Create(job *models.Job) error
	GetByID(id uint) (models.Job, error)
	Update(job *models.Job) error
	SetStatus(id uint, status models.JobStatus) error
	ListOpen(f JobFilters) ([]models.Job, error)
}

type DBJobRepo struct{}

func (r *DBJobRepo) Create(job *models.Job) error {
	return db.DB.Create(job).Error
}

func (r *DBJobRepo) GetByID(id uint) (models.Job, error) {
	var job models.Job
	err := db.DB.First(&job, id).Error
	return job, err
}

func (r *DBJobRepo) Update(job *models.Job) error {
	return db.DB.Save(job).Error
}

func (r *DBJobRepo) SetStatus(id uint, status models.JobStatus) error {
	return db.DB.Model(&models.Job{}).Where("id = ?", id).Update("status", status).Error
}

func (r *DBJobRepo) ListOpen(f JobFilters) ([]models.Job, error) {
	q := db.DB.Where("status = ?", models.JobStatusOpen)

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Location != "" {
		q = q.Where("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if f.Remote != nil {
		q = q.Where("remote = ?", *f.Remote)
	}
	if f.BudgetMin != nil {
		q = q.Where("budget_amount >= ?", *f.BudgetMin)
	}
	if f.BudgetMax != nil {
		q = q.Where("budget_amount <= ?", *f.BudgetMax)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var jobs []models.Job
	err := q.Order("created_at desc").Find(&jobs).Error
	return jobs, err
}
