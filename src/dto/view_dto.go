package dto

import "github.com/openlance/marketplace-go/src/models"

// FeedJob decorates a job with its derived capacity numbers.
type FeedJob struct {
	models.Job
	AcceptedCount  int `json:"accepted_count"`
	CompletedCount int `json:"completed_count"`
	SpotsLeft      int `json:"spots_left"`
}

// AlgorithmMeta echoes the active ranking policy so clients can explain
// the order they received.
type AlgorithmMeta struct {
	Type          models.AlgorithmType `json:"type"`
	Enabled       bool                 `json:"enabled"`
	RotationHours float64              `json:"rotation_hours"`
}

type FeedResponse struct {
	Jobs      []FeedJob     `json:"jobs"`
	Algorithm AlgorithmMeta `json:"algorithm"`
}
