package services

import (
	"strconv"
	"time"

	"github.com/openlance/marketplace-go/src/config"
	"github.com/openlance/marketplace-go/src/dto"
	"github.com/openlance/marketplace-go/src/models"
	"github.com/openlance/marketplace-go/src/ranking"
	"github.com/openlance/marketplace-go/src/repositories"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const countFanout = 8

type FeedService struct {
	repos *repositories.Repos
	log   *zap.Logger
}

func NewFeedService(repos *repositories.Repos, log *zap.Logger) *FeedService {
	return &FeedService{repos: repos, log: log}
}

// GetFeed serves the ranked open-jobs feed. Under time_rotation this is
// not a pure read: the top front-page slots get their rotation records
// stamped. Use Preview for a stamp-free ranking.
func (s *FeedService) GetFeed(query dto.FeedQuery) (*dto.FeedResponse, error) {
	return s.feed(query, true)
}

// Preview ranks without recording front-page exposure.
func (s *FeedService) Preview(query dto.FeedQuery) (*dto.FeedResponse, error) {
	return s.feed(query, false)
}

func (s *FeedService) feed(query dto.FeedQuery, stamp bool) (*dto.FeedResponse, error) {
	settings := s.loadSettings()

	jobs, err := s.repos.Job.ListOpen(filtersFromQuery(query))
	if err != nil {
		return nil, err
	}

	rotating := settings.IsEnabled && settings.AlgorithmType == models.AlgorithmTimeRotation

	var snap ranking.Snapshot
	if rotating {
		records, err := s.repos.Rotation.ListAll()
		if err != nil {
			// Serve the feed on an empty snapshot; rotation fairness
			// degrades instead of the request failing.
			s.log.Warn("rotation records unavailable", zap.Error(err))
		} else {
			snap = ranking.SnapshotFromRecords(records)
		}
	}

	if settings.IsEnabled && !ranking.Known(settings.AlgorithmType) {
		s.log.Warn("unknown algorithm type, serving unranked feed",
			zap.String("algorithm_type", string(settings.AlgorithmType)))
	}

	ranked := ranking.Rank(jobs, settings, snap)

	if stamp && rotating {
		ids := ranking.FrontPage(ranked, config.FrontPageSize)
		if err := s.repos.Rotation.Stamp(ids, settings.RotationHours, time.Now()); err != nil {
			// The order is already computed; a failed stamp must not
			// fail the response.
			s.log.Error("rotation stamp failed", zap.Error(err))
		}
	}

	decorated, err := s.decorate(ranked)
	if err != nil {
		return nil, err
	}

	return &dto.FeedResponse{
		Jobs: decorated,
		Algorithm: dto.AlgorithmMeta{
			Type:          settings.AlgorithmType,
			Enabled:       settings.IsEnabled,
			RotationHours: settings.RotationHours,
		},
	}, nil
}

// loadSettings never fails the feed: a broken settings fetch falls back
// to the default policy and logs the degradation.
func (s *FeedService) loadSettings() models.AlgorithmSettings {
	settings, err := s.repos.Settings.Get()
	if err != nil {
		s.log.Warn("algorithm settings unavailable, using defaults", zap.Error(err))
		return models.AlgorithmSettings{
			AlgorithmType: models.AlgorithmNewestFirst,
			IsEnabled:     true,
			RotationHours: config.DefaultRotationHours,
		}
	}
	return settings
}

func (s *FeedService) decorate(jobs []models.Job) ([]dto.FeedJob, error) {
	out := make([]dto.FeedJob, len(jobs))

	var g errgroup.Group
	g.SetLimit(countFanout)
	for i := range jobs {
		g.Go(func() error {
			job := jobs[i]
			accepted, err := s.repos.Application.CountAccepted(job.ID)
			if err != nil {
				return err
			}
			completed, err := s.repos.Application.CountCompleted(job.ID)
			if err != nil {
				return err
			}
			out[i] = dto.FeedJob{
				Job:            job,
				AcceptedCount:  accepted,
				CompletedCount: completed,
				SpotsLeft:      spotsLeft(job.WorkersNeeded, accepted),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func filtersFromQuery(q dto.FeedQuery) repositories.JobFilters {
	f := repositories.JobFilters{
		Category:  q.Category,
		Location:  q.Location,
		Search:    q.Search,
		Remote:    q.Remote,
		BudgetMin: q.BudgetMin,
		BudgetMax: q.BudgetMax,
	}
	if n, err := strconv.Atoi(q.Limit); err == nil && n >= 1 && n <= config.FeedLimitMax {
		f.Limit = n
	}
	return f
}
