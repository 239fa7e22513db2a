package repositories

import (
	"time"

	"github.com/openlance/marketplace-go/src/db"
	"github.com/openlance/marketplace-go/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RotationRepo interface {
	ListAll() ([]models.RotationRecord, error)
	Stamp(jobIDs []uint, rotationHours float64, now time.Time) error
}

type DBRotationRepo struct{}

func (r *DBRotationRepo) ListAll() ([]models.RotationRecord, error) {
	var records []models.RotationRecord
	err := db.DB.Find(&records).Error
	return records, err
}

// Stamp upserts front-page exposure for the given jobs in one statement.
// ON CONFLICT keyed on job_id keeps concurrent feed requests from losing
// updates; rotation_cycle increments on every repeat exposure.
func (r *DBRotationRepo) Stamp(jobIDs []uint, rotationHours float64, now time.Time) error {
	if len(jobIDs) == 0 {
		return nil
	}

	minutes := int(rotationHours * 60)
	records := make([]models.RotationRecord, 0, len(jobIDs))
	for _, id := range jobIDs {
		records = append(records, models.RotationRecord{
			JobID:                    id,
			LastFrontPageAt:          now,
			FrontPageDurationMinutes: minutes,
			RotationCycle:            1,
		})
	}

	return db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "job_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_front_page_at":          now,
			"front_page_duration_minutes": minutes,
			"rotation_cycle":              gorm.Expr("rotation_records.rotation_cycle + 1"),
			"updated_at":                  now,
		}),
	}).Create(&records).Error
}
