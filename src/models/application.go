package models

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusCompleted ApplicationStatus = "completed"
	ApplicationStatusCancelled ApplicationStatus = "cancelled"
)

type Application struct {
	ID          uint              `gorm:"primaryKey;column:id" json:"id"`
	JobID       uint              `gorm:"not null;column:job_id;uniqueIndex:idx_job_applicant" json:"job_id"`
	ApplicantID uint              `gorm:"not null;column:applicant_id;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	CoverLetter string            `gorm:"type:text;column:cover_letter" json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:application_status;default:'pending'" json:"status"`
	AcceptedAt  *time.Time        `gorm:"column:accepted_at" json:"accepted_at,omitempty"`
	RejectedAt  *time.Time        `gorm:"column:rejected_at" json:"rejected_at,omitempty"`
	CompletedAt *time.Time        `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CancelledAt *time.Time        `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string {
	return "applications"
}
