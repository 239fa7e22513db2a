package handlers

import (
	"github.com/openlance/marketplace-go/src/services"
)

type Handlers struct {
	Feed        *FeedHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Settings    *SettingsHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Feed:        NewFeedHandler(svc.Feed),
		Job:         NewJobHandler(svc.Job, svc.Application),
		Application: NewApplicationHandler(svc.Application),
		Settings:    NewSettingsHandler(svc.Settings),
	}
}
