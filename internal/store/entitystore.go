package store

import (
	"github.com/tgienger/teamboard/internal/models"
)

// EntityStore holds the current snapshot and serializes refreshes through a
// monotonically increasing epoch. Begin and Apply are called from the UI
// update loop only, so no locking is needed; the fetch itself runs off-loop.
//
// The epoch guard closes the overlapping-refresh race: when two refreshes
// are in flight, only the one begun last may commit, regardless of
// completion order.
type EntityStore struct {
	issued  uint64
	applied uint64
	snap    Snapshot
	loaded  bool
}

// NewEntityStore creates an empty store with no snapshot applied
func NewEntityStore() *EntityStore {
	return &EntityStore{}
}

// Begin registers a new refresh and returns its epoch. The caller fetches a
// snapshot and offers it back through Apply with the same epoch.
func (s *EntityStore) Begin() uint64 {
	s.issued++
	return s.issued
}

// Apply commits a fetched snapshot unless it has been superseded. It
// returns false for any epoch that is not the most recently issued one.
func (s *EntityStore) Apply(epoch uint64, snap Snapshot) bool {
	if epoch != s.issued || epoch <= s.applied {
		return false
	}
	s.applied = epoch
	s.snap = snap
	s.loaded = true
	return true
}

// Loaded reports whether any snapshot has been applied yet
func (s *EntityStore) Loaded() bool {
	return s.loaded
}

// Snapshot returns the current snapshot
func (s *EntityStore) Snapshot() Snapshot {
	return s.snap
}

// Refreshing reports whether a refresh is in flight
func (s *EntityStore) Refreshing() bool {
	return s.issued > s.applied
}

// ProjectTitle resolves a task's project reference against the loaded
// project collection, falling back to a placeholder label when the project
// is not present.
func (s *EntityStore) ProjectTitle(projectID int64) string {
	for _, p := range s.snap.Projects {
		if p.ID == projectID {
			return p.Title
		}
	}
	return models.FallbackProjectLabel(projectID)
}
