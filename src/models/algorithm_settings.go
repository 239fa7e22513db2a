package models

import "time"

type AlgorithmType string

const (
	AlgorithmNewestFirst  AlgorithmType = "newest_first"
	AlgorithmTimeRotation AlgorithmType = "time_rotation"
)

// AlgorithmSettings is a singleton row (id = 1) mutated only through the
// admin endpoint.
type AlgorithmSettings struct {
	ID            uint          `gorm:"primaryKey;column:id" json:"id"`
	AlgorithmType AlgorithmType `gorm:"type:algorithm_type;default:'newest_first';column:algorithm_type" json:"algorithm_type"`
	IsEnabled     bool          `gorm:"default:true;column:is_enabled" json:"is_enabled"`
	RotationHours float64       `gorm:"default:8;column:rotation_hours" json:"rotation_hours"`
	CreatedAt     time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AlgorithmSettings) TableName() string {
	return "algorithm_settings"
}
