package dto

type UpdateSettingsDTO struct {
	AlgorithmType string  `json:"algorithm_type" binding:"required"`
	IsEnabled     *bool   `json:"is_enabled" binding:"required"`
	RotationHours float64 `json:"rotation_hours" binding:"required,gt=0"`
}
