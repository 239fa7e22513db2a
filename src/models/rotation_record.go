package models

import "time"

// RotationRecord tracks the last front-page exposure of a job under the
// time_rotation policy. One row per job, created lazily on first exposure.
type RotationRecord struct {
	ID                       uint      `gorm:"primaryKey;column:id" json:"id"`
	JobID                    uint      `gorm:"not null;column:job_id;uniqueIndex" json:"job_id"`
	LastFrontPageAt          time.Time `gorm:"column:last_front_page_at" json:"last_front_page_at"`
	FrontPageDurationMinutes int       `gorm:"column:front_page_duration_minutes" json:"front_page_duration_minutes"`
	RotationCycle            int       `gorm:"default:1;column:rotation_cycle" json:"rotation_cycle"`
	CreatedAt                time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RotationRecord) TableName() string {
	return "rotation_records"
}
