package store_test

import (
	"testing"

	"github.com/tgienger/teamboard/internal/models"
	"github.com/tgienger/teamboard/internal/store"
)

func snapWithProjects(projects ...models.Project) store.Snapshot {
	return store.Snapshot{
		Projects: projects,
		Tasks:    []models.Task{},
		Users:    []models.User{},
	}
}

func TestEntityStoreAppliesCurrentEpoch(t *testing.T) {
	s := store.NewEntityStore()
	if s.Loaded() {
		t.Fatal("new store should not be loaded")
	}

	epoch := s.Begin()
	if !s.Refreshing() {
		t.Error("Refreshing should be true with a fetch in flight")
	}

	if !s.Apply(epoch, snapWithProjects(models.Project{ID: 1, Title: "Alpha"})) {
		t.Fatal("current epoch should apply")
	}
	if !s.Loaded() {
		t.Error("store should be loaded after apply")
	}
	if s.Refreshing() {
		t.Error("Refreshing should be false after apply")
	}
	if got := s.Snapshot().Projects[0].Title; got != "Alpha" {
		t.Errorf("Projects[0].Title = %q, want Alpha", got)
	}
}

func TestEntityStoreDiscardsSupersededEpoch(t *testing.T) {
	s := store.NewEntityStore()

	first := s.Begin()
	second := s.Begin()

	// The newer refresh completes first
	if !s.Apply(second, snapWithProjects(models.Project{ID: 2, Title: "New"})) {
		t.Fatal("latest epoch should apply")
	}

	// The older one arrives late and must not overwrite
	if s.Apply(first, snapWithProjects(models.Project{ID: 1, Title: "Stale"})) {
		t.Fatal("superseded epoch must not apply")
	}
	if got := s.Snapshot().Projects[0].Title; got != "New" {
		t.Errorf("Projects[0].Title = %q, want New", got)
	}
}

func TestEntityStoreRejectsDuplicateApply(t *testing.T) {
	s := store.NewEntityStore()
	epoch := s.Begin()

	if !s.Apply(epoch, snapWithProjects()) {
		t.Fatal("first apply should succeed")
	}
	if s.Apply(epoch, snapWithProjects(models.Project{ID: 9})) {
		t.Error("second apply of the same epoch must be rejected")
	}
}

func TestEntityStoreRejectsUnissuedEpoch(t *testing.T) {
	s := store.NewEntityStore()
	s.Begin()

	if s.Apply(99, snapWithProjects()) {
		t.Error("an epoch that was never issued must not apply")
	}
}

func TestProjectTitle(t *testing.T) {
	s := store.NewEntityStore()
	epoch := s.Begin()
	s.Apply(epoch, snapWithProjects(models.Project{ID: 5, Title: "Backend"}))

	if got := s.ProjectTitle(5); got != "Backend" {
		t.Errorf("ProjectTitle(5) = %q, want Backend", got)
	}
	if got := s.ProjectTitle(99); got != "Project #99" {
		t.Errorf("ProjectTitle(99) = %q, want fallback label", got)
	}
}
