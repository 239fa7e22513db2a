package services

import (
	"errors"

	"github.com/openlance/marketplace-go/src/config"
	"github.com/openlance/marketplace-go/src/dto"
	"github.com/openlance/marketplace-go/src/models"
	"github.com/openlance/marketplace-go/src/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SettingsService struct {
	repos *repositories.Repos
	log   *zap.Logger
}

func NewSettingsService(repos *repositories.Repos, log *zap.Logger) *SettingsService {
	return &SettingsService{repos: repos, log: log}
}

// Get returns the stored settings, or the defaults before the first
// admin save. Repository failures propagate: the admin surface should
// see them, unlike the feed path.
func (s *SettingsService) Get() (models.AlgorithmSettings, error) {
	settings, err := s.repos.Settings.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AlgorithmSettings{
			AlgorithmType: models.AlgorithmNewestFirst,
			IsEnabled:     true,
			RotationHours: config.DefaultRotationHours,
		}, nil
	}
	return settings, err
}

func (s *SettingsService) Update(input dto.UpdateSettingsDTO) (*models.AlgorithmSettings, error) {
	algorithmType := models.AlgorithmType(input.AlgorithmType)
	switch algorithmType {
	case models.AlgorithmNewestFirst, models.AlgorithmTimeRotation:
	default:
		return nil, &ValidationError{Reason: "unknown algorithm type"}
	}

	settings := &models.AlgorithmSettings{
		AlgorithmType: algorithmType,
		IsEnabled:     *input.IsEnabled,
		RotationHours: input.RotationHours,
	}
	if err := s.repos.Settings.Upsert(settings); err != nil {
		return nil, err
	}

	s.log.Info("algorithm settings updated",
		zap.String("algorithm_type", input.AlgorithmType),
		zap.Bool("is_enabled", *input.IsEnabled),
		zap.Float64("rotation_hours", input.RotationHours))
	return settings, nil
}
