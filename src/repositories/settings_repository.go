package repositories

import (
	"github.com/openlance/marketplace-go/src/db"
	"github.com/openlance/marketplace-go/src/models"
	"gorm.io/gorm/clause"
)

const settingsRowID = 1

type SettingsRepo interface {
	Get() (models.AlgorithmSettings, error)
	Upsert(settings *models.AlgorithmSettings) error
}

type DBSettingsRepo struct{}

func (r *DBSettingsRepo) Get() (models.AlgorithmSettings, error) {
	var settings models.AlgorithmSettings
	err := db.DB.First(&settings, settingsRowID).Error
	return settings, err
}

func (r *DBSettingsRepo) Upsert(settings *models.AlgorithmSettings) error {
	settings.ID = settingsRowID
	return db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"algorithm_type", "is_enabled", "rotation_hours", "updated_at",
		}),
	}).Create(settings).Error
}
