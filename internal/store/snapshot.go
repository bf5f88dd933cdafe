// Package store holds the dashboard's client-side state: the entity
// collections, the derived stats, and the refresh protocol that keeps them
// equal to a server-observed state.
package store

import (
	"context"
	"sync"

	"github.com/tgienger/teamboard/internal/models"
)

// Stats are aggregate counts derived from the task collection. They are
// recomputed on every refresh and never persisted.
type Stats struct {
	Total      int
	Todo       int
	InProgress int
	Done       int
	Overdue    int
}

// ComputeStats derives stats from a task collection. Status matching is
// tolerant of wire-format variants; Overdue only trusts the server flag.
func ComputeStats(tasks []models.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch models.ParseStatus(string(t.Status)) {
		case models.StatusTodo:
			s.Todo++
		case models.StatusInProgress:
			s.InProgress++
		case models.StatusDone:
			s.Done++
		}
		if t.IsOverdue {
			s.Overdue++
		}
	}
	return s
}

// Snapshot is one complete server-observed state of the dashboard.
// Collections are always replaced wholesale, never patched.
type Snapshot struct {
	Projects []models.Project
	Tasks    []models.Task
	Users    []models.User
	Stats    Stats

	// Partial is set when at least one collection fetch failed and was
	// replaced with an empty set
	Partial bool
}

// Fetcher supplies the three primary collections
type Fetcher interface {
	Projects(ctx context.Context) ([]models.Project, error)
	Tasks(ctx context.Context) ([]models.Task, error)
	Users(ctx context.Context) ([]models.User, error)
}

// FetchSnapshot fetches all three collections concurrently and settles them
// into one snapshot. A failed fetch empties only its own collection; the
// others still commit. Stats are derived after the task collection settles.
func FetchSnapshot(ctx context.Context, src Fetcher) Snapshot {
	var snap Snapshot
	var failed [3]bool
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		projects, err := src.Projects(ctx)
		if err != nil {
			failed[0] = true
			return
		}
		snap.Projects = projects
	}()
	go func() {
		defer wg.Done()
		tasks, err := src.Tasks(ctx)
		if err != nil {
			failed[1] = true
			return
		}
		snap.Tasks = tasks
	}()
	go func() {
		defer wg.Done()
		users, err := src.Users(ctx)
		if err != nil {
			failed[2] = true
			return
		}
		snap.Users = users
	}()
	wg.Wait()

	if snap.Projects == nil {
		snap.Projects = []models.Project{}
	}
	if snap.Tasks == nil {
		snap.Tasks = []models.Task{}
	}
	if snap.Users == nil {
		snap.Users = []models.User{}
	}
	snap.Partial = failed[0] || failed[1] || failed[2]
	snap.Stats = ComputeStats(snap.Tasks)
	return snap
}
