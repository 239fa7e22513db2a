package ranking_test

import (
	"testing"
	"time"

	"github.com/openlance/marketplace-go/src/models"
	"github.com/openlance/marketplace-go/src/ranking"
	"github.com/stretchr/testify/assert"
)

func jobIDs(jobs []models.Job) []uint {
	ids := make([]uint, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func TestRankDisabledPreservesInputOrder(t *testing.T) {
	t0 := time.Now()
	jobs := []models.Job{
		{ID: 3, CreatedAt: t0.Add(-time.Hour), UpdatedAt: t0.Add(-time.Hour)},
		{ID: 1, CreatedAt: t0, UpdatedAt: t0},
		{ID: 2, CreatedAt: t0.Add(-2 * time.Hour), UpdatedAt: t0},
	}
	settings := models.AlgorithmSettings{AlgorithmType: models.AlgorithmNewestFirst, IsEnabled: false}

	ranked := ranking.Rank(jobs, settings, nil)

	assert.Equal(t, []uint{3, 1, 2}, jobIDs(ranked))
}

func TestRankNewestFirstUsesLatestTouch(t *testing.T) {
	t0 := time.Now()
	// B was created before A but edited after it, so B leads.
	a := models.Job{ID: 1, CreatedAt: t0, UpdatedAt: t0}
	b := models.Job{ID: 2, CreatedAt: t0.Add(-time.Hour), UpdatedAt: t0.Add(2 * time.Hour)}
	c := models.Job{ID: 3, CreatedAt: t0.Add(-2 * time.Hour), UpdatedAt: t0.Add(-2 * time.Hour)}
	settings := models.AlgorithmSettings{AlgorithmType: models.AlgorithmNewestFirst, IsEnabled: true}

	ranked := ranking.Rank([]models.Job{a, b, c}, settings, nil)

	assert.Equal(t, []uint{2, 1, 3}, jobIDs(ranked))
}

func TestRankNewestFirstStableOnTies(t *testing.T) {
	t0 := time.Now()
	jobs := []models.Job{
		{ID: 5, CreatedAt: t0, UpdatedAt: t0},
		{ID: 6, CreatedAt: t0, UpdatedAt: t0},
		{ID: 7, CreatedAt: t0, UpdatedAt: t0},
	}
	settings := models.AlgorithmSettings{AlgorithmType: models.AlgorithmNewestFirst, IsEnabled: true}

	ranked := ranking.Rank(jobs, settings, nil)

	assert.Equal(t, []uint{5, 6, 7}, jobIDs(ranked))
}

func TestRankTimeRotationPrefersStalestExposure(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		{ID: 1}, // shown one second ago
		{ID: 2}, // shown one minute ago
		{ID: 3}, // never shown
	}
	snap := ranking.Snapshot{
		1: now.Add(-time.Second),
		2: now.Add(-time.Minute),
	}
	settings := models.AlgorithmSettings{AlgorithmType: models.AlgorithmTimeRotation, IsEnabled: true}

	ranked := ranking.Rank(jobs, settings, snap)

	assert.Equal(t, []uint{3, 2, 1}, jobIDs(ranked))
}

func TestRankUnknownAlgorithmIsNoOp(t *testing.T) {
	t0 := time.Now()
	jobs := []models.Job{
		{ID: 9, CreatedAt: t0.Add(-time.Hour)},
		{ID: 8, CreatedAt: t0},
	}
	settings := models.AlgorithmSettings{AlgorithmType: "popularity", IsEnabled: true}

	ranked := ranking.Rank(jobs, settings, nil)

	assert.Equal(t, []uint{9, 8}, jobIDs(ranked))
	assert.False(t, ranking.Known(settings.AlgorithmType))
}

func TestRankDoesNotMutateInput(t *testing.T) {
	t0 := time.Now()
	jobs := []models.Job{
		{ID: 1, CreatedAt: t0.Add(-time.Hour), UpdatedAt: t0.Add(-time.Hour)},
		{ID: 2, CreatedAt: t0, UpdatedAt: t0},
	}
	settings := models.AlgorithmSettings{AlgorithmType: models.AlgorithmNewestFirst, IsEnabled: true}

	_ = ranking.Rank(jobs, settings, nil)

	assert.Equal(t, []uint{1, 2}, jobIDs(jobs))
}

func TestFrontPage(t *testing.T) {
	jobs := []models.Job{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.Equal(t, []uint{1, 2}, ranking.FrontPage(jobs, 2))
	assert.Equal(t, []uint{1, 2, 3}, ranking.FrontPage(jobs, 20))
	assert.Empty(t, ranking.FrontPage(nil, 20))
}
