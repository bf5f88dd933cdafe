package store_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tgienger/teamboard/internal/models"
	"github.com/tgienger/teamboard/internal/store"
)

type fakeFetcher struct {
	projects []models.Project
	tasks    []models.Task
	users    []models.User

	projectsErr error
	tasksErr    error
	usersErr    error
}

func (f *fakeFetcher) Projects(ctx context.Context) ([]models.Project, error) {
	return f.projects, f.projectsErr
}

func (f *fakeFetcher) Tasks(ctx context.Context) ([]models.Task, error) {
	return f.tasks, f.tasksErr
}

func (f *fakeFetcher) Users(ctx context.Context) ([]models.User, error) {
	return f.users, f.usersErr
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name  string
		tasks []models.Task
		want  store.Stats
	}{
		{
			"empty",
			nil,
			store.Stats{},
		},
		{
			"mixed statuses with one overdue",
			[]models.Task{
				{Status: models.StatusTodo, IsOverdue: true},
				{Status: models.StatusInProgress},
				{Status: models.StatusDone},
				{Status: models.StatusDone},
			},
			store.Stats{Total: 4, Todo: 1, InProgress: 1, Done: 2, Overdue: 1},
		},
		{
			"wire-format statuses still counted",
			[]models.Task{
				{Status: models.Status("TO_DO")},
				{Status: models.Status("IN_PROGRESS")},
				{Status: models.Status("done")},
			},
			store.Stats{Total: 3, Todo: 1, InProgress: 1, Done: 1},
		},
		{
			"overdue done task still counts as overdue",
			[]models.Task{
				{Status: models.StatusDone, IsOverdue: true},
			},
			store.Stats{Total: 1, Done: 1, Overdue: 1},
		},
		{
			"unknown status counts toward total only",
			[]models.Task{
				{Status: models.Status("Blocked")},
			},
			store.Stats{Total: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.ComputeStats(tt.tasks); got != tt.want {
				t.Errorf("ComputeStats = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFetchSnapshotAllSucceed(t *testing.T) {
	src := &fakeFetcher{
		projects: []models.Project{{ID: 1, Title: "Alpha"}},
		tasks: []models.Task{
			{ID: 1, Status: models.StatusTodo},
			{ID: 2, Status: models.StatusDone},
		},
		users: []models.User{{ID: 1, FullName: "Alice"}},
	}

	snap := store.FetchSnapshot(context.Background(), src)

	if snap.Partial {
		t.Error("Partial should be false when every fetch succeeds")
	}
	if len(snap.Projects) != 1 || len(snap.Tasks) != 2 || len(snap.Users) != 1 {
		t.Errorf("unexpected collection sizes: %d/%d/%d",
			len(snap.Projects), len(snap.Tasks), len(snap.Users))
	}
	want := store.Stats{Total: 2, Todo: 1, Done: 1}
	if snap.Stats != want {
		t.Errorf("Stats = %+v, want %+v", snap.Stats, want)
	}
}

func TestFetchSnapshotIdempotent(t *testing.T) {
	src := &fakeFetcher{
		projects: []models.Project{{ID: 1, Title: "Alpha", TaskCount: 2}},
		tasks: []models.Task{
			{ID: 1, Status: models.StatusTodo, ProjectID: 1, IsOverdue: true},
			{ID: 2, Status: models.StatusDone, ProjectID: 1},
		},
		users: []models.User{{ID: 1, FullName: "Alice", Role: models.RoleAdmin}},
	}

	// An unchanged backend yields the same snapshot on every refresh
	first := store.FetchSnapshot(context.Background(), src)
	second := store.FetchSnapshot(context.Background(), src)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("snapshots differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if first.Stats != second.Stats {
		t.Errorf("Stats differ: %+v vs %+v", first.Stats, second.Stats)
	}
}

func TestFetchSnapshotPartialFailure(t *testing.T) {
	src := &fakeFetcher{
		projects: []models.Project{{ID: 1, Title: "Alpha"}},
		tasksErr: errors.New("boom"),
		users:    []models.User{{ID: 1, FullName: "Alice"}},
	}

	snap := store.FetchSnapshot(context.Background(), src)

	if !snap.Partial {
		t.Error("Partial should be set when a fetch fails")
	}
	if snap.Tasks == nil || len(snap.Tasks) != 0 {
		t.Errorf("failed collection should be empty, got %v", snap.Tasks)
	}
	// The other collections still commit
	if len(snap.Projects) != 1 || len(snap.Users) != 1 {
		t.Errorf("surviving collections lost: %d projects, %d users",
			len(snap.Projects), len(snap.Users))
	}
	if snap.Stats != (store.Stats{}) {
		t.Errorf("Stats should be zero after a task fetch failure, got %+v", snap.Stats)
	}
}

func TestFetchSnapshotAllFail(t *testing.T) {
	src := &fakeFetcher{
		projectsErr: errors.New("boom"),
		tasksErr:    errors.New("boom"),
		usersErr:    errors.New("boom"),
	}

	snap := store.FetchSnapshot(context.Background(), src)

	if !snap.Partial {
		t.Error("Partial should be set")
	}
	if snap.Projects == nil || snap.Tasks == nil || snap.Users == nil {
		t.Error("collections should be empty slices, not nil")
	}
}
