package services_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openlance/marketplace-go/src/dto"
	"github.com/openlance/marketplace-go/src/models"
	"github.com/openlance/marketplace-go/src/repositories"
	"github.com/openlance/marketplace-go/src/repositories/mock_repositories"
	"github.com/openlance/marketplace-go/src/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSettingsMocks(t *testing.T) (*services.SettingsService, *mock_repositories.MockSettingsRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSettings := mock_repositories.NewMockSettingsRepo(ctrl)
	repos := &repositories.Repos{Settings: mockSettings}
	return services.NewSettingsService(repos, zap.NewNop()), mockSettings
}

func TestGetSettingsBeforeFirstSaveReturnsDefaults(t *testing.T) {
	svc, mockSettings := setupSettingsMocks(t)
	mockSettings.EXPECT().Get().Return(models.AlgorithmSettings{}, gorm.ErrRecordNotFound)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, models.AlgorithmNewestFirst, settings.AlgorithmType)
	assert.True(t, settings.IsEnabled)
}

func TestUpdateSettingsRejectsUnknownAlgorithm(t *testing.T) {
	svc, _ := setupSettingsMocks(t)

	enabled := true
	_, err := svc.Update(dto.UpdateSettingsDTO{
		AlgorithmType: "popularity",
		IsEnabled:     &enabled,
		RotationHours: 8,
	})

	var validation *services.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "unknown algorithm type", validation.Reason)
}

func TestUpdateSettingsUpserts(t *testing.T) {
	svc, mockSettings := setupSettingsMocks(t)

	enabled := true
	mockSettings.EXPECT().Upsert(gomock.Any()).Return(nil)

	settings, err := svc.Update(dto.UpdateSettingsDTO{
		AlgorithmType: "time_rotation",
		IsEnabled:     &enabled,
		RotationHours: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AlgorithmTimeRotation, settings.AlgorithmType)
	assert.Equal(t, float64(4), settings.RotationHours)
}
