// Package ranking orders the open-jobs feed. It is a pure kernel: callers
// load jobs, settings and the rotation snapshot, and perform any rotation
// stamping themselves.
package ranking

import (
	"sort"
	"time"

	"github.com/openlance/marketplace-go/src/models"
)

// Snapshot maps job id to last front-page exposure. Jobs absent from the
// snapshot rank as never shown (zero time), so they win first exposure.
type Snapshot map[uint]time.Time

func SnapshotFromRecords(records []models.RotationRecord) Snapshot {
	snap := make(Snapshot, len(records))
	for _, r := range records {
		snap[r.JobID] = r.LastFrontPageAt
	}
	return snap
}

// Known reports whether the algorithm type is one this engine implements.
func Known(t models.AlgorithmType) bool {
	return t == models.AlgorithmNewestFirst || t == models.AlgorithmTimeRotation
}

// Rank returns the jobs in feed order. The input slice is not modified.
//
// Disabled settings and unrecognized algorithm types both preserve the
// input order. Ties keep their original relative order; there is no
// secondary sort key.
func Rank(jobs []models.Job, settings models.AlgorithmSettings, snap Snapshot) []models.Job {
	out := make([]models.Job, len(jobs))
	copy(out, jobs)

	if !settings.IsEnabled {
		return out
	}

	switch settings.AlgorithmType {
	case models.AlgorithmNewestFirst:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LastTouched().After(out[j].LastTouched())
		})
	case models.AlgorithmTimeRotation:
		// Longest time since exposure first; a missing entry is the
		// zero time and therefore sorts ahead of everything stamped.
		sort.SliceStable(out, func(i, j int) bool {
			return snap[out[i].ID].Before(snap[out[j].ID])
		})
	}

	return out
}

// FrontPage returns the ids of the jobs occupying the top n feed slots.
func FrontPage(jobs []models.Job, n int) []uint {
	if n > len(jobs) {
		n = len(jobs)
	}
	ids := make([]uint, 0, n)
	for _, j := range jobs[:n] {
		ids = append(ids, j.ID)
	}
	return ids
}
