package services

import (
	"github.com/openlance/marketplace-go/src/repositories"
	"go.uber.org/zap"
)

type Services struct {
	Feed        *FeedService
	Job         *JobService
	Application *ApplicationService
	Settings    *SettingsService
}

func New(repos *repositories.Repos, log *zap.Logger) *Services {
	jobs := NewJobService(repos, log)
	return &Services{
		Feed:        NewFeedService(repos, log),
		Job:         jobs,
		Application: NewApplicationService(repos, jobs, log),
		Settings:    NewSettingsService(repos, log),
	}
}
