package views

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/teamboard/internal/api"
	"github.com/tgienger/teamboard/internal/models"
	"github.com/tgienger/teamboard/internal/session"
	"github.com/tgienger/teamboard/internal/store"
)

// Every view must satisfy the program model contract
var (
	_ tea.Model = (*LoginView)(nil)
	_ tea.Model = (*DashboardView)(nil)
	_ tea.Model = (*CommentsView)(nil)
)

func newTestDashboard(t *testing.T) *DashboardView {
	t.Helper()
	client := api.New("http://127.0.0.1:0", time.Second, func() string { return "tok" })
	v := NewDashboardView(client, session.Identity{
		Token:  "tok",
		UserID: 1,
		Name:   "Alice",
		Role:   models.RoleAdmin,
	})

	epoch := v.entities.Begin()
	v.entities.Apply(epoch, store.Snapshot{
		Projects: []models.Project{
			{ID: 1, Title: "Alpha"},
			{ID: 2, Title: "Beta"},
		},
		Tasks: []models.Task{},
		Users: []models.User{},
	})
	return v
}

func TestMetricsDiscardedForDifferentProject(t *testing.T) {
	v := newTestDashboard(t)

	// Popup is open for Beta; a slow response for Alpha arrives late
	v.projCursor = 1
	v.showingMetrics = true
	v.metricsProjectID = 2

	v.Update(metricsLoadedMsg{projectID: 1, metrics: &models.ProjectMetrics{Total: 111}})
	if v.metrics != nil {
		t.Fatal("metrics for another project must be discarded")
	}

	v.Update(metricsLoadedMsg{projectID: 2, metrics: &models.ProjectMetrics{Total: 5, Done: 2}})
	if v.metrics == nil {
		t.Fatal("metrics for the shown project should commit")
	}
	if v.metrics.Total != 5 {
		t.Errorf("Total = %d, want 5", v.metrics.Total)
	}
}

func TestMetricsDiscardedWhenPopupClosed(t *testing.T) {
	v := newTestDashboard(t)
	v.metricsProjectID = 1

	v.Update(metricsLoadedMsg{projectID: 1, metrics: &models.ProjectMetrics{Total: 3}})
	if v.metrics != nil {
		t.Error("a response arriving after the popup closed must be discarded")
	}
}

func TestMetricsErrorScopedToShownProject(t *testing.T) {
	v := newTestDashboard(t)
	v.showingMetrics = true
	v.metricsProjectID = 2

	v.Update(metricsLoadedMsg{projectID: 1, err: &api.Error{Status: 500}})
	if v.metricsErr != "" {
		t.Errorf("stale error committed: %q", v.metricsErr)
	}
}
