package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
)

type Job struct {
	ID            uint           `gorm:"primaryKey;column:id" json:"id"`
	OwnerID       uint           `gorm:"not null;column:owner_id;index" json:"owner_id"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	Category      string         `gorm:"size:100;index" json:"category"`
	Location      string         `gorm:"size:100" json:"location"`
	Remote        bool           `gorm:"default:false" json:"remote"`
	BudgetAmount  float64        `gorm:"column:budget_amount" json:"budget_amount"`
	Skills        datatypes.JSON `gorm:"column:skills" json:"skills"`
	WorkersNeeded int            `gorm:"not null;default:1;column:workers_needed" json:"workers_needed"`
	Status        JobStatus      `gorm:"type:job_status;default:'open'" json:"status"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// LastTouched is the ranking timestamp for the newest-first policy: a job
// edited after creation resurfaces like a new post.
func (j Job) LastTouched() time.Time {
	if j.UpdatedAt.After(j.CreatedAt) {
		return j.UpdatedAt
	}
	return j.CreatedAt
}
